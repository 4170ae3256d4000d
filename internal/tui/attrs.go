package tui

import (
	"encoding/json"
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"

	"geopath/internal/geom"
)

// refreshAttrsFromCurrent rebuilds the table columns/rows from the loaded collection.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := buildAttributes(m.coll)
	// Without rows the table has nothing to show; leave it hidden.
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no features in current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols))
	maxColW := 24
	for _, c := range cols {
		w := min(len(c)+2, maxColW)
		if c == "#" {
			w = 4
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(tcols))
		copy(cells, r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns one row per feature: its index, shape kind, the
// number of outer rings it contributes to the path, then the union of
// property keys in sorted order.
func buildAttributes(c geom.Collection) ([]string, [][]string) {
	seen := map[string]bool{}
	var keys []string
	for _, f := range c.Features {
		for k := range f.Properties {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	cols := append([]string{"#", "kind", "rings"}, keys...)
	rows := make([][]string, 0, len(c.Features))
	for i, f := range c.Features {
		rings, _ := geom.OuterRings(f.Geometry())
		vals := []string{fmt.Sprintf("%d", i+1), string(f.Geometry().Kind()), fmt.Sprintf("%d", len(rings))}
		for _, k := range keys {
			vals = append(vals, formatProp(f.Properties[k]))
		}
		rows = append(rows, vals)
	}
	return cols, rows
}

func formatProp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
