package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advancedtech_backoffice/internal/adapter/http/handlers/mocks"
	"advancedtech_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc)

	uc.EXPECT().GetSummary(gomock.Any()).Return(usecase.DashboardSummary{
		TotalJobOrders:     3,
		CompletedJobOrders: 2,
		Mechanics:          4,
		CompletedRevenue:   400000,
	}, nil)

	r := gin.New()
	r.GET("/v1/dashboard/summary", h.GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if res["total_job_orders"] != float64(3) || res["mechanics"] != float64(4) {
		t.Fatalf("unexpected response: %v", res)
	}
	if res["completed_revenue_display"] != "4,000" {
		t.Fatalf("completed_revenue_display = %v", res["completed_revenue_display"])
	}
}
