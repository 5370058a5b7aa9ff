package handler

import (
	"net/http"
	"strconv"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/barcode/:code", h.byBarcode)
	e.GET("/products/:id", h.detail)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.delete)
	e.PUT("/products/:id/stock", h.setStock)
	e.GET("/products/:id/adjustments", h.adjustments)
}

type ProductRequest struct {
	Barcode           string          `json:"barcode"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int64           `json:"stock"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	SupplierID        *string         `json:"supplier_id"`
	ImageURL          string          `json:"image_url"`
}

func toCreateProductInput(req ProductRequest) usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Barcode:           req.Barcode,
		Name:              req.Name,
		Price:             req.Price,
		Cost:              req.Cost,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		SupplierID:        req.SupplierID,
		ImageURL:          req.ImageURL,
	}
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:  page,
		Limit: limit,
		Q:     c.QueryParam("q"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) byBarcode(c echo.Context) error {
	p, err := h.uc.GetProductByBarcode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), toCreateProductInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), toCreateProductInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type SetStockRequest struct {
	Stock  int64  `json:"stock"`
	Reason string `json:"reason"`
}

func (h *ProductHandler) setStock(c echo.Context) error {
	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetStock(c.Request().Context(), c.Param("id"), req.Stock, req.Reason); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) adjustments(c echo.Context) error {
	adjs, err := h.uc.ListAdjustments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, adjs)
}
