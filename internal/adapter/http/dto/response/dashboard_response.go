package response

import "advancedtech_backoffice/internal/usecase"

type DashboardResponse struct {
	TotalJobOrders      int     `json:"total_job_orders"`
	PendingJobOrders    int     `json:"pending_job_orders"`
	InProgressJobOrders int     `json:"in_progress_job_orders"`
	CompletedJobOrders  int     `json:"completed_job_orders"`
	Mechanics           int     `json:"mechanics"`
	CompletedRevenue    float64 `json:"completed_revenue"`

	CompletedRevenueDisplay string `json:"completed_revenue_display"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalJobOrders:          s.TotalJobOrders,
		PendingJobOrders:        s.PendingJobOrders,
		InProgressJobOrders:     s.InProgressJobOrders,
		CompletedJobOrders:      s.CompletedJobOrders,
		Mechanics:               s.Mechanics,
		CompletedRevenue:        s.CompletedRevenue.Float(),
		CompletedRevenueDisplay: s.CompletedRevenue.Format(),
	}
}
