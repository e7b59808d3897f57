package domain

import "github.com/shopspring/decimal"

// OptionCustom marks the menu entry that switches to free-text entry.
const OptionCustom = "Custom"

// TaskTemplate is a predefined task the wizard offers with a default cost.
type TaskTemplate struct {
	Key  string
	Name string
	Cost decimal.Decimal
}

// OptionTables holds the enumerated choices presented during interactive
// generation. They are plain data passed into the wizard rather than
// ambient globals, so the engine is testable with alternate tables.
type OptionTables struct {
	Warranties    []string
	Payments      []string
	TaskTemplates []TaskTemplate
}

// DefaultOptionTables returns the standard option tables.
func DefaultOptionTables() OptionTables {
	return OptionTables{
		Warranties: []string{
			"None",
			"Ninety (90) days, excluding compressor and all spare parts",
			"Twelve (12) Months Only",
			OptionCustom,
		},
		Payments: []string{
			"COD (Cash on delivery)",
			"50% Down payment, 50% Upon completion",
			"70% Down Payment, 30% Cash Upon Completion",
			"Cash Upon Completion",
			"Cash Before Delivery + Installation",
			"Full Payment Before Repair + Cleaning",
			OptionCustom,
		},
		TaskTemplates: []TaskTemplate{
			{Key: "cleaning", Name: "General cleaning", Cost: decimal.NewFromInt(400)},
			{Key: "repair", Name: "Repair", Cost: decimal.NewFromInt(3550)},
			{Key: "installation", Name: "Installation", Cost: decimal.NewFromInt(7500)},
		},
	}
}

// DefaultCompanyInfo returns the configured letterhead fallback.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:        "Cebu Best Value Trading Corp.",
		Location:    "Cebu City",
		Phone:       "032-2670573",
		MobileSun:   "09325314857",
		MobileGlobe: "09154657503",
		Services:    "Sales    Installation    Service    Repair\nDuctworks",
	}
}

// DefaultManager is the signature-block name used when the record does
// not name a manager.
const DefaultManager = "J.B Yap Jr."
