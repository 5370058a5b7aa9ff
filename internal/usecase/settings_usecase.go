package usecase

import (
	"context"
	"net/http"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

type SettingsUsecase struct {
	settingsRepo repo.SettingsRepository
}

func NewSettingsUsecase(settingsRepo repo.SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{settingsRepo: settingsRepo}
}

type SettingsInput struct {
	Name       string
	Address    string
	Phone      string
	VATNumber  string
	TaxRate    decimal.Decimal
	FooterText string
	AutoPrint  bool
}

func (u *SettingsUsecase) GetSettings(ctx context.Context) (model.StoreSettings, error) {
	s, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return model.StoreSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *SettingsUsecase) UpdateSettings(ctx context.Context, in SettingsInput) (model.StoreSettings, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.StoreSettings{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.TaxRate.IsNegative() {
		return model.StoreSettings{}, NewHTTPError(http.StatusBadRequest, "tax_rate must be >= 0")
	}

	s := model.StoreSettings{
		Name:       strings.TrimSpace(in.Name),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
		VATNumber:  strings.TrimSpace(in.VATNumber),
		TaxRate:    in.TaxRate,
		FooterText: in.FooterText,
		AutoPrint:  in.AutoPrint,
	}
	if err := u.settingsRepo.Save(ctx, s); err != nil {
		return model.StoreSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
