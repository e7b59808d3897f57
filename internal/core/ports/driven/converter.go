package driven

import "context"

// ArtifactConverter invokes the external converter that derives the
// secondary artifact from the primary one. The process is opaque: it is
// handed a source path and an output directory and either produces a
// sibling file there or fails.
//
// Implementations classify failures as domain.ErrConverterNotFound,
// domain.ErrConverterFailed or domain.ErrConverterTimeout; callers treat
// all three as warnings, never as fatal errors.
type ArtifactConverter interface {
	Convert(ctx context.Context, srcPath, outDir string) error
}
