// Package tableview is the shared tabular contract every list screen builds
// against: columns plus rows plus optional row actions in, one uniformly
// shaped table out.
package tableview

import "fmt"

// NoRecordsPlaceholder is the single full-width row shown instead of an empty
// table body.
const NoRecordsPlaceholder = "No records found"

// ActionsLabel heads the trailing column added when any row action exists.
const ActionsLabel = "Actions"

// Column describes one table column for rows of type T. Render, when set,
// overrides the raw Value accessor (status badges, composed cells).
type Column[T any] struct {
	ID     string
	Label  string
	Value  func(T) any
	Render func(T) string
}

// Actions are the per-row callbacks a screen offers. A nil callback means the
// action is omitted entirely, not disabled; the callbacks themselves are
// invoked by the consuming UI, never by Build.
type Actions[T any] struct {
	View   func(T)
	Edit   func(T)
	Delete func(T)
}

// Names lists the offered actions in display order.
func (a Actions[T]) Names() []string {
	var names []string
	if a.View != nil {
		names = append(names, "view")
	}
	if a.Edit != nil {
		names = append(names, "edit")
	}
	if a.Delete != nil {
		names = append(names, "delete")
	}
	return names
}

func (a Actions[T]) any() bool {
	return a.View != nil || a.Edit != nil || a.Delete != nil
}

// Table is the normalized result: headers in column order, stringified cell
// rows, and the action names applying to every row. When Placeholder is set
// the table has no records and renders that single full-width row instead.
type Table struct {
	Headers     []string `json:"headers"`
	Rows        [][]string `json:"rows"`
	Actions     []string `json:"actions,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Build normalizes columns, rows, and actions into a Table. Column order
// follows the slice, the Actions header appears iff at least one action is
// offered, and zero rows yield the placeholder instead of an empty body.
func Build[T any](columns []Column[T], rows []T, actions Actions[T]) Table {
	t := Table{Headers: make([]string, 0, len(columns)+1)}
	for _, c := range columns {
		t.Headers = append(t.Headers, c.Label)
	}
	if actions.any() {
		t.Headers = append(t.Headers, ActionsLabel)
		t.Actions = actions.Names()
	}

	if len(rows) == 0 {
		t.Placeholder = NoRecordsPlaceholder
		return t
	}

	t.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, cell(c, row))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func cell[T any](c Column[T], row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value != nil {
		return fmt.Sprint(c.Value(row))
	}
	return ""
}
