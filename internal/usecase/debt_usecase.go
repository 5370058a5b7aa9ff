package usecase

import (
	"context"
	"net/http"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

// DebtUsecase は債務台帳（掛け売りと返済）の業務ロジック。
// 残高と取引履歴は必ず同一トランザクションで更新する。
type DebtUsecase struct {
	tx           repo.TransactionManager
	customerRepo repo.CustomerRepository
	debtTxRepo   repo.DebtTransactionRepository
	idGen        IDGenerator
	clock        Clock
}

func NewDebtUsecase(
	tx repo.TransactionManager,
	customerRepo repo.CustomerRepository,
	debtTxRepo repo.DebtTransactionRepository,
	idGen IDGenerator,
	clock Clock,
) *DebtUsecase {
	return &DebtUsecase{
		tx:           tx,
		customerRepo: customerRepo,
		debtTxRepo:   debtTxRepo,
		idGen:        idGen,
		clock:        clock,
	}
}

type CustomerInput struct {
	Name  string
	Phone string
}

type CustomerOutput struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Phone        string                  `json:"phone"`
	Balance      decimal.Decimal         `json:"balance"`
	Transactions []model.DebtTransaction `json:"transactions,omitempty"`
}

func toCustomerOutput(c model.Customer, txs []model.DebtTransaction) CustomerOutput {
	return CustomerOutput{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Balance:      c.Balance,
		Transactions: txs,
	}
}

// 顧客登録。残高0・履歴なしで始まる。
func (u *DebtUsecase) AddCustomer(ctx context.Context, in CustomerInput) (CustomerOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		ID:      u.idGen.NewID(model.IDPrefixCustomer),
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Balance: decimal.Zero,
	})
	if err != nil {
		return CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toCustomerOutput(c, nil), nil
}

// 残高が大きい順
func (u *DebtUsecase) ListCustomers(ctx context.Context, q string) ([]CustomerOutput, error) {
	if len(q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	customers, err := u.customerRepo.List(ctx, repo.CustomerListQuery{Q: strings.TrimSpace(q)})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		outs = append(outs, toCustomerOutput(c, nil))
	}
	return outs, nil
}

// 履歴付きで1件取得
func (u *DebtUsecase) GetCustomer(ctx context.Context, customerID string) (CustomerOutput, error) {
	if customerID == "" {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return CustomerOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	txs, err := u.debtTxRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toCustomerOutput(c, txs), nil
}

func (u *DebtUsecase) UpdateCustomer(ctx context.Context, customerID string, in CustomerInput) error {
	if customerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.customerRepo.Update(ctx, model.Customer{
		ID:    customerID,
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type RepayInput struct {
	Amount decimal.Decimal
	Note   string
}

// 返済。REPAYMENT を追記し、同一トランザクションで残高を減らす。
// 残高を超える返済は受け付けない（マイナス残高にしない）。
func (u *DebtUsecase) Repay(ctx context.Context, customerID string, in RepayInput) (CustomerOutput, error) {
	if customerID == "" {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	if !in.Amount.IsPositive() {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, "amount must be > 0")
	}

	var out CustomerOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Customers().FindByID(ctx, customerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if in.Amount.GreaterThan(c.Balance) {
			return NewHTTPError(http.StatusBadRequest, "over repayment")
		}

		t := model.DebtTransaction{
			ID:         u.idGen.NewID(model.IDPrefixDebtTransaction),
			CustomerID: customerID,
			Type:       model.DebtTransactionRepayment,
			Amount:     in.Amount,
			Note:       strings.TrimSpace(in.Note),
			CreatedAt:  u.clock.Now(),
		}
		if err := r.DebtTransactions().Create(ctx, t); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Customers().AddToBalance(ctx, customerID, in.Amount.Neg()); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		c.Balance = c.Balance.Sub(in.Amount)
		out = toCustomerOutput(c, nil)
		return nil
	})

	if err != nil {
		return CustomerOutput{}, err
	}
	return out, nil
}
