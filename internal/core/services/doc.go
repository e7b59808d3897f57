// Package services implements the quotation pipeline: section splitting,
// header decoding, item/task grouping, cost calculation, document
// assembly and artifact generation.
package services
