package handler

import (
	"net/http"
	"time"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/summary", h.summary)
	e.GET("/reports/low-stock", h.lowStock)
}

func (h *ReportHandler) summary(c echo.Context) error {
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

	out, err := h.uc.Summary(c.Request().Context(), usecase.SummaryInput{From: from, To: to})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) lowStock(c echo.Context) error {
	out, err := h.uc.LowStockProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
