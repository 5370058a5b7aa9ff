package server

import (
	"pos/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers は起動時に登録する全ハンドラ。
type Handlers struct {
	Product  *handler.ProductHandler
	Supplier *handler.SupplierHandler
	Customer *handler.CustomerHandler
	Checkout *handler.CheckoutHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
}

func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h.Product.RegisterRoutes(e)
	h.Supplier.RegisterRoutes(e)
	h.Customer.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Sale.RegisterRoutes(e)
	h.Report.RegisterRoutes(e)
	h.Settings.RegisterRoutes(e)

	return e
}

func Start(addr string, h Handlers) error {
	return New(h).Start(addr)
}
