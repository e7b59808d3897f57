// Package report writes the spreadsheet summary of a batch run.
package report
