package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/suppliers", h.list)
	e.POST("/suppliers", h.create)
	e.PUT("/suppliers/:id", h.update)
	e.DELETE("/suppliers/:id", h.delete)
}

type SupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *SupplierHandler) list(c echo.Context) error {
	out, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SupplierHandler) create(c echo.Context) error {
	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.CreateSupplier(c.Request().Context(), usecase.SupplierInput{Name: req.Name, Phone: req.Phone})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) update(c echo.Context) error {
	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateSupplier(c.Request().Context(), c.Param("id"), usecase.SupplierInput{Name: req.Name, Phone: req.Phone}); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SupplierHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteSupplier(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
