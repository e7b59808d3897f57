// Package driving defines the inbound interfaces through which the CLI
// and the interactive wizard drive the quotation engine.
package driving
