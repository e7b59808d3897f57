// Package pdf renders the assembled document model to PDF.
package pdf
