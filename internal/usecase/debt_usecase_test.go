package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
	"pos/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDebtFixture() (*TxManagerMock, *CustomerRepoMock, *DebtTxRepoMock, *usecase.DebtUsecase) {
	tx := new(TxManagerMock)
	customers := new(CustomerRepoMock)
	debtTxs := new(DebtTxRepoMock)

	tx.Repos = &TxReposMock{
		customers: customers,
		debtTxs:   debtTxs,
	}

	uc := usecase.NewDebtUsecase(tx, customers, debtTxs, &seqIDGen{}, &fixedClock{t: testNow})
	return tx, customers, debtTxs, uc
}

// =====================
// 顧客登録・取得
// =====================

func TestAddCustomer_StartsWithZeroBalance(t *testing.T) {
	_, customers, _, uc := newDebtFixture()

	customers.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.ID == "C001" && c.Name == "Alice" && c.Balance.IsZero()
	})).Return(model.Customer{ID: "C001", Name: "Alice", Balance: decimal.Zero}, nil)

	out, err := uc.AddCustomer(context.Background(), usecase.CustomerInput{Name: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, "C001", out.ID)
	assert.True(t, out.Balance.IsZero())
	assert.Empty(t, out.Transactions)

	customers.AssertExpectations(t)
}

func TestAddCustomer_NameRequired(t *testing.T) {
	_, _, _, uc := newDebtFixture()

	_, err := uc.AddCustomer(context.Background(), usecase.CustomerInput{Name: "   "})
	assertErrContains(t, err, "name required")
}

func TestGetCustomer_WithHistory(t *testing.T) {
	_, customers, debtTxs, uc := newDebtFixture()

	customers.On("FindByID", mock.Anything, "C1").
		Return(model.Customer{ID: "C1", Name: "Alice", Balance: decimal.NewFromInt(200)}, nil)
	debtTxs.On("ListByCustomerID", mock.Anything, "C1").Return([]model.DebtTransaction{
		{ID: "D2", CustomerID: "C1", Type: model.DebtTransactionRepayment, Amount: decimal.NewFromInt(100)},
		{ID: "D1", CustomerID: "C1", Type: model.DebtTransactionDebt, Amount: decimal.NewFromInt(300)},
	}, nil)

	out, err := uc.GetCustomer(context.Background(), "C1")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Transactions))

	//残高は常に Σ DEBT − Σ REPAYMENT と一致する
	sum := decimal.Zero
	for _, tr := range out.Transactions {
		if tr.Type == model.DebtTransactionDebt {
			sum = sum.Add(tr.Amount)
		} else {
			sum = sum.Sub(tr.Amount)
		}
	}
	assert.True(t, out.Balance.Equal(sum))
}

func TestGetCustomer_NotFound(t *testing.T) {
	_, customers, _, uc := newDebtFixture()

	customers.On("FindByID", mock.Anything, "C404").Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.GetCustomer(context.Background(), "C404")
	assertErrContains(t, err, "not found")
}

// =====================
// 返済
// =====================

func TestRepay_Success(t *testing.T) {
	tx, customers, debtTxs, uc := newDebtFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)

	customers.On("FindByID", mock.Anything, "C1").
		Return(model.Customer{ID: "C1", Name: "Alice", Balance: decimal.NewFromInt(500)}, nil)

	debtTxs.On("Create", mock.Anything, mock.MatchedBy(func(d model.DebtTransaction) bool {
		return d.CustomerID == "C1" &&
			d.Type == model.DebtTransactionRepayment &&
			d.Amount.Equal(decimal.NewFromInt(200)) &&
			d.SaleID == nil &&
			d.CreatedAt.Equal(testNow)
	})).Return(nil)

	//履歴の追記と同一トランザクションで残高を減らす
	customers.On("AddToBalance", mock.Anything, "C1", decimalEq(decimal.NewFromInt(-200))).Return(nil)

	out, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.NewFromInt(200)})
	assert.NoError(t, err)
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(300)))

	tx.AssertExpectations(t)
	customers.AssertExpectations(t)
	debtTxs.AssertExpectations(t)
}

func TestRepay_FullBalance(t *testing.T) {
	tx, customers, debtTxs, uc := newDebtFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)

	customers.On("FindByID", mock.Anything, "C1").
		Return(model.Customer{ID: "C1", Balance: decimal.NewFromInt(500)}, nil)
	debtTxs.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("AddToBalance", mock.Anything, "C1", decimalEq(decimal.NewFromInt(-500))).Return(nil)

	out, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.NewFromInt(500)})
	assert.NoError(t, err)
	assert.True(t, out.Balance.IsZero())
}

// 残高を超える返済は拒否。履歴も残高も変えない
func TestRepay_OverRepayment(t *testing.T) {
	tx, customers, debtTxs, uc := newDebtFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)

	customers.On("FindByID", mock.Anything, "C1").
		Return(model.Customer{ID: "C1", Balance: decimal.NewFromInt(100)}, nil)

	_, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.NewFromInt(101)})
	assertErrContains(t, err, "over repayment")

	debtTxs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	customers.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestRepay_ZeroAmount(t *testing.T) {
	_, _, _, uc := newDebtFixture()

	_, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.Zero})
	assertErrContains(t, err, "amount must be > 0")
}

func TestRepay_NegativeAmount(t *testing.T) {
	_, _, _, uc := newDebtFixture()

	_, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.NewFromInt(-50)})
	assertErrContains(t, err, "amount must be > 0")
}

func TestRepay_CustomerNotFound(t *testing.T) {
	tx, customers, debtTxs, uc := newDebtFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	customers.On("FindByID", mock.Anything, "C404").Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.Repay(context.Background(), "C404", usecase.RepayInput{Amount: decimal.NewFromInt(10)})
	assertErrContains(t, err, "not found")

	debtTxs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRepay_DBErrorOnHistory(t *testing.T) {
	tx, customers, debtTxs, uc := newDebtFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	customers.On("FindByID", mock.Anything, "C1").
		Return(model.Customer{ID: "C1", Balance: decimal.NewFromInt(100)}, nil)
	debtTxs.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := uc.Repay(context.Background(), "C1", usecase.RepayInput{Amount: decimal.NewFromInt(50)})
	assertErrContains(t, err, "db error")

	customers.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything)
}
