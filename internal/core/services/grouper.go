package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// DecodeItems decodes the items block into ordered items. Rows with a
// blank item_name are skipped entirely. A row whose trimmed item_name
// differs from the currently open item closes that item and opens a new
// one; brand, model and warranty are read only at item-open time. The
// grouping key is plain string equality against the open item, so a
// name that reappears after a different item starts a fresh item.
func DecodeItems(block []string) ([]domain.Item, error) {
	rows, err := readTable(block)
	if err != nil {
		return nil, err
	}

	var items []domain.Item

	// Single-slot accumulator, flushed on every boundary and at EOF.
	var open *domain.Item
	flush := func() {
		if open != nil {
			items = append(items, *open)
			open = nil
		}
	}

	for _, row := range rows {
		name := row["item_name"]
		if name == "" {
			continue
		}

		if open == nil || open.Name != name {
			flush()
			open = &domain.Item{
				Name:     name,
				ACBrand:  row["ac_brand"],
				ACModel:  row["ac_model"],
				Warranty: row["item_warranty"],
			}
		}

		quantity, err := parseQuantity(row["quantity"])
		if err != nil {
			return nil, err
		}
		open.Tasks = append(open.Tasks, domain.Task{
			Name:     row["task_name"],
			UnitCost: parseCost(row["task_cost"]),
			Quantity: quantity,
		})
	}
	flush()

	return items, nil
}

// parseCost reads a task cost, defaulting to zero when the cell is blank
// or unparseable.
func parseCost(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	cost, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return cost
}

// parseQuantity reads a task quantity, defaulting to one when blank.
// A value that is present but unparseable or non-positive is a
// validation failure, not a silent default.
func parseQuantity(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.NewFromInt(1), nil
	}
	quantity, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: unparseable quantity %q", domain.ErrValidation, value)
	}
	if !quantity.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: quantity must be positive, got %q", domain.ErrValidation, value)
	}
	return quantity, nil
}
