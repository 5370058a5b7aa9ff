package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewSettingsHandler(uc *usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/settings", h.get)
	e.PUT("/settings", h.update)
}

type SettingsRequest struct {
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	VATNumber  string          `json:"vat_number"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	FooterText string          `json:"footer_text"`
	AutoPrint  bool            `json:"auto_print"`
}

func (h *SettingsHandler) get(c echo.Context) error {
	out, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) update(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateSettings(c.Request().Context(), usecase.SettingsInput{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		VATNumber:  req.VATNumber,
		TaxRate:    req.TaxRate,
		FooterText: req.FooterText,
		AutoPrint:  req.AutoPrint,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
