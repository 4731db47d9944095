package response

import "advancedtech_backoffice/internal/domain/tableview"

// TableResponse carries the normalized tabular view model the shared
// DataTable component renders on every list screen.
type TableResponse struct {
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	Actions     []string   `json:"actions,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
}

func FromTable(t tableview.Table) TableResponse {
	return TableResponse{
		Headers:     t.Headers,
		Rows:        t.Rows,
		Actions:     t.Actions,
		Placeholder: t.Placeholder,
	}
}
