package handlers

import (
	"errors"
	"net/http"

	request "advancedtech_backoffice/internal/adapter/http/dto/request"
	response "advancedtech_backoffice/internal/adapter/http/dto/response"
	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/tableview"
	"advancedtech_backoffice/internal/usecase"
	"advancedtech_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for the service catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary  Create a catalog service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    payload body request.ServiceRequest true "service"
// @Success  201 {object} response.ServiceResponse
// @Router   /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(s))
}

// GetService godoc
// @Summary  Get a catalog service by id
// @Tags     services
// @Produce  json
// @Param    id path string true "service id"
// @Success  200 {object} response.ServiceResponse
// @Router   /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(s))
}

// ListServices godoc
// @Summary  List catalog services
// @Tags     services
// @Produce  json
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

// ListServicesTable godoc
// @Summary  List catalog services as the shared data-table model
// @Tags     services
// @Produce  json
// @Success  200 {object} response.TableResponse
// @Router   /services/table [get]
func (h *ServiceHandler) ListServicesTable(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	columns := []tableview.Column[entities.Service]{
		{ID: "title", Label: "Title", Value: func(s entities.Service) any { return s.Title }},
		{ID: "description", Label: "Description", Value: func(s entities.Service) any { return s.Description }},
		{ID: "category", Label: "Category", Value: func(s entities.Service) any { return s.Category }},
		{ID: "amount", Label: "Amount", Render: func(s entities.Service) string { return s.Amount.Format() }},
	}
	actions := tableview.Actions[entities.Service]{
		Edit:   func(entities.Service) {},
		Delete: func(entities.Service) {},
	}

	c.JSON(http.StatusOK, response.FromTable(tableview.Build(columns, services, actions)))
}

// UpdateService godoc
// @Summary  Update a catalog service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id path string true "service id"
// @Param    payload body request.ServiceRequest true "service"
// @Success  200 {object} response.ServiceResponse
// @Router   /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(s))
}

// DeleteService godoc
// @Summary  Delete a catalog service
// @Tags     services
// @Param    id path string true "service id"
// @Success  204
// @Router   /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceTitle),
		errors.Is(err, usecase.ErrInvalidServiceAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
