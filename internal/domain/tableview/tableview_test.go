package tableview

import (
	"reflect"
	"testing"
)

type account struct {
	Name   string
	Email  string
	Active bool
}

func testColumns() []Column[account] {
	return []Column[account]{
		{ID: "name", Label: "Name", Value: func(a account) any { return a.Name }},
		{ID: "email", Label: "Email", Value: func(a account) any { return a.Email }},
		{ID: "status", Label: "Status", Render: func(a account) string {
			if a.Active {
				return "active"
			}
			return "inactive"
		}},
	}
}

func TestBuild(t *testing.T) {
	t.Run("headers follow column order", func(t *testing.T) {
		table := Build(testColumns(), []account{{Name: "Ana", Email: "ana@example.com", Active: true}}, Actions[account]{})

		want := []string{"Name", "Email", "Status"}
		if !reflect.DeepEqual(table.Headers, want) {
			t.Fatalf("headers = %v, want %v", table.Headers, want)
		}
		if len(table.Actions) != 0 {
			t.Fatalf("expected no actions, got %v", table.Actions)
		}
	})

	t.Run("render overrides value", func(t *testing.T) {
		table := Build(testColumns(), []account{{Name: "Ana", Email: "ana@example.com", Active: false}}, Actions[account]{})

		if table.Rows[0][2] != "inactive" {
			t.Fatalf("rendered cell = %q, want inactive", table.Rows[0][2])
		}
	})

	t.Run("actions header appears iff any action offered", func(t *testing.T) {
		actions := Actions[account]{Edit: func(account) {}, Delete: func(account) {}}

		table := Build(testColumns(), []account{{Name: "Ana"}}, actions)

		if table.Headers[len(table.Headers)-1] != ActionsLabel {
			t.Fatalf("expected trailing %q header, got %v", ActionsLabel, table.Headers)
		}
		if !reflect.DeepEqual(table.Actions, []string{"edit", "delete"}) {
			t.Fatalf("actions = %v", table.Actions)
		}
	})

	t.Run("all actions listed in display order", func(t *testing.T) {
		actions := Actions[account]{
			View:   func(account) {},
			Edit:   func(account) {},
			Delete: func(account) {},
		}

		if got := actions.Names(); !reflect.DeepEqual(got, []string{"view", "edit", "delete"}) {
			t.Fatalf("names = %v", got)
		}
	})

	t.Run("zero rows yield placeholder", func(t *testing.T) {
		table := Build(testColumns(), nil, Actions[account]{View: func(account) {}})

		if table.Placeholder != NoRecordsPlaceholder {
			t.Fatalf("placeholder = %q, want %q", table.Placeholder, NoRecordsPlaceholder)
		}
		if len(table.Rows) != 0 {
			t.Fatalf("expected no rows, got %v", table.Rows)
		}
		// Headers, including Actions, still describe the empty table.
		if table.Headers[len(table.Headers)-1] != ActionsLabel {
			t.Fatalf("headers = %v", table.Headers)
		}
	})

	t.Run("column without accessor yields empty cell", func(t *testing.T) {
		cols := []Column[account]{{ID: "blank", Label: "Blank"}}
		table := Build(cols, []account{{Name: "Ana"}}, Actions[account]{})
		if table.Rows[0][0] != "" {
			t.Fatalf("cell = %q, want empty", table.Rows[0][0])
		}
	})

	t.Run("non-string values are stringified", func(t *testing.T) {
		cols := []Column[int]{{ID: "n", Label: "N", Value: func(v int) any { return v }}}
		table := Build(cols, []int{42}, Actions[int]{})
		if table.Rows[0][0] != "42" {
			t.Fatalf("cell = %q, want 42", table.Rows[0][0])
		}
	})
}
