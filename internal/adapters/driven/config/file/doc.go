// Package file provides the TOML-backed settings store.
package file
