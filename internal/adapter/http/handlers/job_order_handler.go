package handlers

import (
	"errors"
	"net/http"

	request "advancedtech_backoffice/internal/adapter/http/dto/request"
	response "advancedtech_backoffice/internal/adapter/http/dto/response"
	"advancedtech_backoffice/internal/adapter/render"
	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/tableview"
	"advancedtech_backoffice/internal/usecase"
	"advancedtech_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobOrderPayload = pkg.NewDomainErrorSimple("INVALID_JOB_ORDER_INPUT", "Invalid job order payload", http.StatusBadRequest)

// JobOrderHandler handles HTTP requests for job orders: CRUD, the explicit
// totals-preview action the editing screen calls, and the printable receipt
// in document, HTML, and PDF form.

type JobOrderHandler struct {
	usecase usecase.IJobOrderUseCase
}

func NewJobOrderHandler(uc usecase.IJobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{usecase: uc}
}

// CreateJobOrder godoc
// @Summary  Create a job order
// @Tags     job-orders
// @Accept   json
// @Produce  json
// @Param    payload body request.JobOrderRequest true "job order draft"
// @Success  201 {object} response.JobOrderResponse
// @Router   /job-orders [post]
func (h *JobOrderHandler) CreateJobOrder(c *gin.Context) {
	var payload request.JobOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobOrder(order))
}

// GetJobOrder godoc
// @Summary  Get a job order by id
// @Tags     job-orders
// @Produce  json
// @Param    id path string true "job order id"
// @Success  200 {object} response.JobOrderResponse
// @Router   /job-orders/{id} [get]
func (h *JobOrderHandler) GetJobOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(order))
}

// ListJobOrders godoc
// @Summary  List job orders
// @Tags     job-orders
// @Produce  json
// @Success  200 {array} response.JobOrderResponse
// @Router   /job-orders [get]
func (h *JobOrderHandler) ListJobOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrders(orders))
}

// ListJobOrdersTable godoc
// @Summary  List job orders as the shared data-table model
// @Tags     job-orders
// @Produce  json
// @Success  200 {object} response.TableResponse
// @Router   /job-orders/table [get]
func (h *JobOrderHandler) ListJobOrdersTable(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	columns := []tableview.Column[entities.JobOrder]{
		{ID: "id", Label: "Job Order #", Value: func(o entities.JobOrder) any { return o.ID }},
		{ID: "customer", Label: "Customer", Value: func(o entities.JobOrder) any { return o.Customer }},
		{ID: "make", Label: "Vehicle", Render: func(o entities.JobOrder) string { return o.Make + " — " + o.Plate }},
		{ID: "mechanic", Label: "Mechanic", Value: func(o entities.JobOrder) any { return o.Mechanic }},
		{ID: "status", Label: "Status", Value: func(o entities.JobOrder) any { return string(o.Status) }},
		{ID: "total", Label: "Total", Render: func(o entities.JobOrder) string { return o.Total.Format() }},
	}
	// Callbacks are bound by the consuming screen; their presence decides
	// which action buttons the table shows.
	actions := tableview.Actions[entities.JobOrder]{
		View:   func(entities.JobOrder) {},
		Edit:   func(entities.JobOrder) {},
		Delete: func(entities.JobOrder) {},
	}

	c.JSON(http.StatusOK, response.FromTable(tableview.Build(columns, orders, actions)))
}

// UpdateJobOrder godoc
// @Summary  Update a job order
// @Tags     job-orders
// @Accept   json
// @Produce  json
// @Param    id path string true "job order id"
// @Param    payload body request.JobOrderRequest true "job order draft"
// @Success  200 {object} response.JobOrderResponse
// @Router   /job-orders/{id} [put]
func (h *JobOrderHandler) UpdateJobOrder(c *gin.Context) {
	var payload request.JobOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(order))
}

// DeleteJobOrder godoc
// @Summary  Delete a job order
// @Tags     job-orders
// @Param    id path string true "job order id"
// @Success  204
// @Router   /job-orders/{id} [delete]
func (h *JobOrderHandler) DeleteJobOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewTotals godoc
// @Summary  Compute totals for an unsaved draft
// @Tags     job-orders
// @Accept   json
// @Produce  json
// @Param    payload body request.JobOrderRequest true "job order draft"
// @Success  200 {object} response.TotalsResponse
// @Router   /job-orders/totals [post]
func (h *JobOrderHandler) PreviewTotals(c *gin.Context) {
	var payload request.JobOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(h.usecase.PreviewTotals(payload.ToDraft())))
}

// GetReceipt godoc
// @Summary  Get the printable receipt document for a job order
// @Tags     job-orders
// @Produce  json
// @Param    id path string true "job order id"
// @Success  200 {object} receipt.Document
// @Router   /job-orders/{id}/receipt [get]
func (h *JobOrderHandler) GetReceipt(c *gin.Context) {
	doc, err := h.usecase.ComposeReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetReceiptHTML godoc
// @Summary  Render the receipt as a printable HTML page
// @Tags     job-orders
// @Produce  html
// @Param    id path string true "job order id"
// @Success  200 {string} string
// @Router   /job-orders/{id}/receipt.html [get]
func (h *JobOrderHandler) GetReceiptHTML(c *gin.Context) {
	doc, err := h.usecase.ComposeReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body, err := render.HTMLReceipt(doc)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// GetReceiptPDF godoc
// @Summary  Render the receipt as a PDF
// @Tags     job-orders
// @Produce  application/pdf
// @Param    id path string true "job order id"
// @Success  200 {string} binary
// @Router   /job-orders/{id}/receipt.pdf [get]
func (h *JobOrderHandler) GetReceiptPDF(c *gin.Context) {
	doc, err := h.usecase.ComposeReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body, err := render.PDFReceipt(doc)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", body)
}

func mapJobOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobOrderID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
