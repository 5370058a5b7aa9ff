package handler

import (
	"net/http"
	"strconv"
	"time"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	uc *usecase.SaleUsecase
}

func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sales", h.list)
	e.GET("/sales/:id", h.detail)
}

func (h *SaleHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	var from *time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
		}
		from = &t
	}

	var to *time.Time
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
		}
		to = &t
	}

	out, err := h.uc.ListSales(c.Request().Context(), usecase.ListSalesInput{
		Page:        page,
		Limit:       limit,
		From:        from,
		To:          to,
		PaymentType: c.QueryParam("payment_type"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) detail(c echo.Context) error {
	out, err := h.uc.GetSaleDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
