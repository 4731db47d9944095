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

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler handles HTTP requests for back-office accounts.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser godoc
// @Summary  Create a back-office user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    payload body request.UserRequest true "user"
// @Success  201 {object} response.UserResponse
// @Router   /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	u, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(u))
}

// GetUser godoc
// @Summary  Get a back-office user by id
// @Tags     users
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {object} response.UserResponse
// @Router   /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(u))
}

// ListUsers godoc
// @Summary  List back-office users
// @Tags     users
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsers(users))
}

// UpdateUser godoc
// @Summary  Update a back-office user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id path string true "user id"
// @Param    payload body request.UserRequest true "user"
// @Success  200 {object} response.UserResponse
// @Router   /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	u, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(u))
}

// DeleteUser godoc
// @Summary  Delete a back-office user
// @Tags     users
// @Param    id path string true "user id"
// @Success  204
// @Router   /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidUserEmail),
		errors.Is(err, usecase.ErrInvalidUserStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
