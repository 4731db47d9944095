package handlers

import (
	"errors"
	"net/http"

	request "advancedtech_backoffice/internal/adapter/http/dto/request"
	response "advancedtech_backoffice/internal/adapter/http/dto/response"
	"advancedtech_backoffice/internal/usecase"
	"advancedtech_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMechanicPayload = pkg.NewDomainErrorSimple("INVALID_MECHANIC_INPUT", "Invalid mechanic payload", http.StatusBadRequest)

// MechanicHandler handles HTTP requests for mechanics.

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

// CreateMechanic godoc
// @Summary  Create a mechanic
// @Tags     mechanics
// @Accept   json
// @Produce  json
// @Param    payload body request.MechanicRequest true "mechanic"
// @Success  201 {object} response.MechanicResponse
// @Router   /mechanics [post]
func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanic(m))
}

// GetMechanic godoc
// @Summary  Get a mechanic by id
// @Tags     mechanics
// @Produce  json
// @Param    id path string true "mechanic id"
// @Success  200 {object} response.MechanicResponse
// @Router   /mechanics/{id} [get]
func (h *MechanicHandler) GetMechanic(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(m))
}

// ListMechanics godoc
// @Summary  List mechanics
// @Tags     mechanics
// @Produce  json
// @Success  200 {array} response.MechanicResponse
// @Router   /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

// UpdateMechanic godoc
// @Summary  Update a mechanic
// @Tags     mechanics
// @Accept   json
// @Produce  json
// @Param    id path string true "mechanic id"
// @Param    payload body request.MechanicRequest true "mechanic"
// @Success  200 {object} response.MechanicResponse
// @Router   /mechanics/{id} [put]
func (h *MechanicHandler) UpdateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(m))
}

// DeleteMechanic godoc
// @Summary  Delete a mechanic
// @Tags     mechanics
// @Param    id path string true "mechanic id"
// @Success  204
// @Router   /mechanics/{id} [delete]
func (h *MechanicHandler) DeleteMechanic(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidMechanicName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
