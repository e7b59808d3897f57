// Package domain contains the core business entities for quotation
// generation: headers, items, tasks, the assembled document model,
// and the option tables offered by the interactive wizard.
package domain
