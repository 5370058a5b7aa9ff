package handler

import (
	"net/http"

	"pos/internal/domain/model"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.checkout)
}

type CheckoutItemRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type CheckoutRequest struct {
	Items       []CheckoutItemRequest `json:"items"`
	PaymentType string                `json:"payment_type"`
	CustomerID  string                `json:"customer_id"`
	Note        string                `json:"note"`
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.CheckoutItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		Items:       items,
		PaymentType: model.PaymentType(req.PaymentType),
		CustomerID:  req.CustomerID,
		Note:        req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
