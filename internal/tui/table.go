package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the verdict table from the current evaluation.
func (m *Model) refreshTable() {
	if len(m.verdicts) == 0 {
		m.showTable = false
		m.status = "no candidates evaluated"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "name", Width: 16},
		{Title: "lon", Width: 12},
		{Title: "lat", Width: 12},
		{Title: "verdict", Width: 8},
	}
	rows := make([]table.Row, 0, len(m.verdicts))
	for i, v := range m.verdicts {
		name := v.name
		if name == "" {
			name = fmt.Sprintf("candidate %d", i+1)
		}
		state := "outside"
		if v.inside {
			state = "inside"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			fmt.Sprintf("%.6f", v.pt.X),
			fmt.Sprintf("%.6f", v.pt.Y),
			state,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
