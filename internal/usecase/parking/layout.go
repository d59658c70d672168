package parking

import (
	"fmt"
	"strings"

	"smart-parking/internal/pkg/config"
)

// SlotSpec is one entry of the initial inventory.
type SlotSpec struct {
	ID       int
	Location string
}

// DefaultLayout is the stock inventory: ids 1..10 labelled A1..A5, B1..B5.
func DefaultLayout() []SlotSpec {
	return RowLayout([]string{"A", "B"}, 5)
}

// RowLayout numbers slots from 1 in row order. Each label is the row name
// followed by the 1-based position in the row.
func RowLayout(rows []string, perRow int) []SlotSpec {
	specs := make([]SlotSpec, 0, len(rows)*max(perRow, 0))
	id := 1
	for _, row := range rows {
		row = strings.TrimSpace(row)
		for i := 1; i <= perRow; i++ {
			specs = append(specs, SlotSpec{ID: id, Location: fmt.Sprintf("%s%d", row, i)})
			id++
		}
	}
	return specs
}

func LayoutFromConfig(cfg config.ParkingConfig) []SlotSpec {
	return RowLayout(cfg.SeedRows, cfg.SlotsPerRow)
}
