package main

import (
	"os"
	"time"

	"pos/internal/domain/model"
	"pos/internal/handler"
	"pos/internal/idgen"
	"pos/internal/infra/db"
	infraRepo "pos/internal/infra/repository"
	"pos/internal/server"
	"pos/internal/usecase"

	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.env は無ければ環境変数のみ
	_ = godotenv.Load()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Supplier{},
		&model.Customer{},
		&model.DebtTransaction{},
		&model.Sale{},
		&model.SaleItem{},
		&model.InventoryAdjustment{},
		&model.StoreSettings{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	debtTxRepo := infraRepo.NewDebtTransactionGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	saleItemRepo := infraRepo.NewSaleItemGormRepository(gormDB)
	settingsRepo := infraRepo.NewSettingsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := idgen.NewUUIDGenerator()
	clock := &realClock{}

	//Usecase生成
	productUC := usecase.NewProductUsecase(txManager, productRepo, inventoryRepo, idGen)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, idGen)
	debtUC := usecase.NewDebtUsecase(txManager, customerRepo, debtTxRepo, idGen, clock)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, idGen, clock)
	saleUC := usecase.NewSaleUsecase(saleRepo, saleItemRepo)
	reportUC := usecase.NewReportUsecase(saleRepo, saleItemRepo, productRepo, customerRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)

	//Handler生成
	handlers := server.Handlers{
		Product:  handler.NewProductHandler(productUC),
		Supplier: handler.NewSupplierHandler(supplierUC),
		Customer: handler.NewCustomerHandler(debtUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Sale:     handler.NewSaleHandler(saleUC),
		Report:   handler.NewReportHandler(reportUC),
		Settings: handler.NewSettingsHandler(settingsUC),
	}

	//Server起動
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		if v[0] != ':' {
			addr = ":" + v
		} else {
			addr = v
		}
	}

	if err := server.Start(addr, handlers); err != nil {
		panic(err)
	}
}
