package services

import "github.com/shopspring/decimal"

// Installation pricing: the base price includes the first ten feet of
// piping distance; every additional foot is billed at a flat rate.
const (
	IncludedDistanceFt = 10
	ExcessPerFootRate  = 350
)

// ExcessDistance returns the billable distance beyond the included base,
// never negative.
func ExcessDistance(distanceFt decimal.Decimal) decimal.Decimal {
	excess := distanceFt.Sub(decimal.NewFromInt(IncludedDistanceFt))
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess
}

// ExcessCharge returns the distance surcharge for an installation.
func ExcessCharge(distanceFt decimal.Decimal) decimal.Decimal {
	return ExcessDistance(distanceFt).Mul(decimal.NewFromInt(ExcessPerFootRate))
}

// InstallationCost computes the billable cost of an installation task:
// base cost plus the excess distance charge. The result becomes the
// task's effective unit cost; installation tasks always have quantity 1.
func InstallationCost(base, distanceFt decimal.Decimal) decimal.Decimal {
	return base.Add(ExcessCharge(distanceFt))
}
