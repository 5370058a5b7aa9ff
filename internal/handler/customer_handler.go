package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 債務台帳（顧客と返済）のAPI
type CustomerHandler struct {
	uc *usecase.DebtUsecase
}

func NewCustomerHandler(uc *usecase.DebtUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/customers", h.list)
	e.GET("/customers/:id", h.detail)
	e.POST("/customers", h.create)
	e.PUT("/customers/:id", h.update)
	e.POST("/customers/:id/repay", h.repay)
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	out, err := h.uc.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddCustomer(c.Request().Context(), usecase.CustomerInput{Name: req.Name, Phone: req.Phone})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) update(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateCustomer(c.Request().Context(), c.Param("id"), usecase.CustomerInput{Name: req.Name, Phone: req.Phone}); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type RepayRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

func (h *CustomerHandler) repay(c echo.Context) error {
	var req RepayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Repay(c.Request().Context(), c.Param("id"), usecase.RepayInput{
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
