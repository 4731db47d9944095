package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advancedtech_backoffice/internal/adapter/http/handlers/mocks"
	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrInvalidServiceAmount)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"title":"Tune up","amount":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{ID: "id-1", Title: "Tune up", Amount: 150000}, nil)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"title":"Tune up","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceHandler_ListServicesTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Service{
		{ID: "id-1", Title: "Tune up", Category: "Engine", Amount: 150000},
	}, nil)

	r := gin.New()
	r.GET("/v1/services/table", h.ListServicesTable)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/table", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res struct {
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
		Actions []string   `json:"actions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	// Catalog rows offer edit and delete, never view.
	if len(res.Actions) != 2 || res.Actions[0] != "edit" || res.Actions[1] != "delete" {
		t.Fatalf("actions = %v", res.Actions)
	}
	if res.Rows[0][3] != "1,500" {
		t.Fatalf("unexpected row: %v", res.Rows[0])
	}
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "id-404").Return(entities.Service{}, usecase.ErrServiceNotFound)

	r := gin.New()
	r.GET("/v1/services/:id", h.GetService)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/id-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
