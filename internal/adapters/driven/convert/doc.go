// Package convert derives the secondary artifact through an external
// office converter process.
package convert
