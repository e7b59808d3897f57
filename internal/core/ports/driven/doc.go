// Package driven defines the outbound interfaces the quotation engine
// depends on: document rendering and external format conversion.
// Adapters under internal/adapters/driven implement them.
package driven
