package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/mock"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

// newTestBankSvc: хелпер для создания bank с моками репозиториев
func newTestBankSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*bank,
	*mock.MockAccountRepository,
	*mock.MockClientRepository,
) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockClients := mock.NewMockClientRepository(ctrl)

	storages := &store.Storages{Accounts: mockAccounts, Clients: mockClients}
	svc := NewBank(storages, config.App{InterestRate: config.DefaultInterestRate}, logger.Nop()).(*bank)

	return svc, mockAccounts, mockClients
}

var errDBDown = fmt.Errorf("%w: connection refused", store.ErrRepository)

// ── Register ─────────────────────────────────────────────────────────────────

func TestBank_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewCheckingAccount("1", 100)

	gomock.InOrder(
		mockAccounts.EXPECT().Exists(ctx, "1").Return(false, nil),
		mockAccounts.EXPECT().Insert(ctx, account).Return(nil),
	)

	require.NoError(t, svc.Register(ctx, account))
}

func TestBank_Register_AlreadyRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	// Insert не должен вызываться
	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil)

	err := svc.Register(ctx, models.NewCheckingAccount("1", 999))
	require.ErrorIs(t, err, ErrAccountAlreadyRegistered)
}

func TestBank_Register_InsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "1").Return(false, nil)
	mockAccounts.EXPECT().Insert(ctx, gomock.Any()).Return(fmt.Errorf("%w: key %q", store.ErrAlreadyExists, "1"))

	err := svc.Register(ctx, models.NewCheckingAccount("1", 1))
	require.ErrorIs(t, err, ErrAccountAlreadyRegistered)
	require.ErrorIs(t, err, store.ErrRepository)
}

func TestBank_Register_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "1").Return(false, errDBDown)

	err := svc.Register(ctx, models.NewCheckingAccount("1", 1))
	require.ErrorIs(t, err, store.ErrRepository)
	assert.NotErrorIs(t, err, ErrAccountAlreadyRegistered)
}

func TestBank_Register_NilAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBankSvc(t, ctrl)

	err := svc.Register(context.Background(), nil)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// ── FindAccount ──────────────────────────────────────────────────────────────

func TestBank_FindAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewSavingsAccount("20", 100)

	mockAccounts.EXPECT().Find(ctx, "20").Return(account, nil)
	mockAccounts.EXPECT().Find(ctx, "404").Return(nil, nil)

	found, err := svc.FindAccount(ctx, "20")
	require.NoError(t, err)
	assert.Same(t, account, found)

	missing, err := svc.FindAccount(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// ── Credit / Debit ───────────────────────────────────────────────────────────

func TestBank_Credit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewCheckingAccount("1", 100)

	gomock.InOrder(
		mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil),
		mockAccounts.EXPECT().Update(ctx, account).DoAndReturn(
			func(_ context.Context, a models.Account) (bool, error) {
				assert.Equal(t, 200.0, a.Balance(), "в репозиторий уходит уже зачисленный баланс")
				return true, nil
			},
		),
	)

	require.NoError(t, svc.Credit(ctx, account, 100))
	assert.Equal(t, 200.0, account.Balance())
}

func TestBank_Credit_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewCheckingAccount("404", 100)

	mockAccounts.EXPECT().Exists(ctx, "404").Return(false, nil)

	// not found wins over the invalid amount
	err := svc.Credit(ctx, account, -1)
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, 100.0, account.Balance())
}

func TestBank_Credit_InvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -0.01, -100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		t.Run(fmt.Sprintf("amount %v", amount), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
			ctx := context.Background()
			account := models.NewSpecialAccount("30", 100)

			mockAccounts.EXPECT().Exists(ctx, "30").Return(true, nil)

			err := svc.Credit(ctx, account, amount)
			require.ErrorIs(t, err, ErrInvalidAmount)
			assert.Equal(t, 100.0, account.Balance())
			assert.Zero(t, account.PendingBonus())
		})
	}
}

func TestBank_Credit_UpdateNotApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, gomock.Any()).Return(false, nil)

	err := svc.Credit(ctx, models.NewCheckingAccount("1", 0), 10)
	require.ErrorIs(t, err, ErrUpdateNotApplied)
}

func TestBank_Debit_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewCheckingAccount("1", 100)

	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil).Times(3)
	mockAccounts.EXPECT().Update(ctx, account).Return(true, nil).Times(2)

	require.NoError(t, svc.Credit(ctx, account, 100))
	assert.Equal(t, 200.0, account.Balance())

	require.NoError(t, svc.Debit(ctx, account, 50))
	assert.Equal(t, 150.0, account.Balance())

	err := svc.Debit(ctx, account, 200)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 150.0, account.Balance())
}

func TestBank_Debit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewSavingsAccount("20", 10)

	mockAccounts.EXPECT().Exists(ctx, "20").Return(true, nil)

	// the amount check comes before the balance check
	err := svc.Debit(ctx, account, -500)
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 10.0, account.Balance())

	mockAccounts.EXPECT().Exists(ctx, "20").Return(true, nil)

	err = svc.Debit(ctx, account, math.NaN())
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 10.0, account.Balance())
}

func TestBank_Debit_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "404").Return(false, nil)

	err := svc.Debit(ctx, models.NewCheckingAccount("404", 10), 5)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestBank_Debit_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, gomock.Any()).Return(false, errDBDown)

	err := svc.Debit(ctx, models.NewCheckingAccount("1", 10), 5)
	require.ErrorIs(t, err, store.ErrRepository)
}

// ── Transfer ─────────────────────────────────────────────────────────────────

func TestBank_Transfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	src := models.NewCheckingAccount("1", 100)
	dst := models.NewSavingsAccount("2", 50)

	gomock.InOrder(
		mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil),
		mockAccounts.EXPECT().Exists(ctx, "2").Return(true, nil),
		mockAccounts.EXPECT().Update(ctx, src).Return(true, nil),
		mockAccounts.EXPECT().Update(ctx, dst).Return(true, nil),
	)

	require.NoError(t, svc.Transfer(ctx, src, dst, 30))
	assert.Equal(t, 70.0, src.Balance())
	assert.Equal(t, 80.0, dst.Balance())
	assert.Equal(t, 150.0, src.Balance()+dst.Balance())
}

func TestBank_Transfer_SourcePersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	src := models.NewCheckingAccount("1", 100)
	dst := models.NewCheckingAccount("2", 0)

	mockAccounts.EXPECT().Exists(ctx, gomock.Any()).Return(true, nil).Times(2)
	// Update для dst не ожидается: gomock упадёт на неожиданном вызове
	mockAccounts.EXPECT().Update(ctx, src).Return(false, errDBDown)

	err := svc.Transfer(ctx, src, dst, 10)
	require.ErrorIs(t, err, store.ErrRepository)
	// получатель не тронут, если списание не сохранилось
	assert.Equal(t, 0.0, dst.Balance())
}

func TestBank_Transfer_DestinationPersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	src := models.NewCheckingAccount("1", 100)
	dst := models.NewCheckingAccount("2", 0)

	mockAccounts.EXPECT().Exists(ctx, gomock.Any()).Return(true, nil).Times(2)
	gomock.InOrder(
		mockAccounts.EXPECT().Update(ctx, src).Return(true, nil),
		mockAccounts.EXPECT().Update(ctx, dst).Return(false, nil),
	)

	err := svc.Transfer(ctx, src, dst, 10)
	require.ErrorIs(t, err, ErrUpdateNotApplied)
}

func TestBank_Transfer_Preconditions(t *testing.T) {
	tests := []struct {
		name      string
		srcExists bool
		dstExists bool
		amount    float64
		wantErr   error
	}{
		{name: "source missing", srcExists: false, dstExists: true, amount: 10, wantErr: ErrAccountNotFound},
		{name: "destination missing", srcExists: true, dstExists: false, amount: 10, wantErr: ErrAccountNotFound},
		{name: "zero amount", srcExists: true, dstExists: true, amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", srcExists: true, dstExists: true, amount: -5, wantErr: ErrInvalidAmount},
		{name: "insufficient balance", srcExists: true, dstExists: true, amount: 100.01, wantErr: ErrInsufficientBalance},
		{name: "NaN amount", srcExists: true, dstExists: true, amount: math.NaN(), wantErr: ErrInvalidAmount},
		{name: "infinite amount", srcExists: true, dstExists: true, amount: math.Inf(1), wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
			ctx := context.Background()
			src := models.NewCheckingAccount("1", 100)
			dst := models.NewCheckingAccount("2", 0)

			mockAccounts.EXPECT().Exists(ctx, "1").Return(tt.srcExists, nil)
			if tt.srcExists {
				mockAccounts.EXPECT().Exists(ctx, "2").Return(tt.dstExists, nil)
			}

			err := svc.Transfer(ctx, src, dst, tt.amount)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 100.0, src.Balance())
			assert.Equal(t, 0.0, dst.Balance())
		})
	}
}

func TestBank_Transfer_SameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewCheckingAccount("1", 100)

	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil).Times(2)

	require.NoError(t, svc.Transfer(ctx, account, account, 40))
	assert.Equal(t, 100.0, account.Balance())

	// still validated
	mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil).Times(2)
	require.ErrorIs(t, svc.Transfer(ctx, account, account, 500), ErrInsufficientBalance)
}

// ── Accruals ─────────────────────────────────────────────────────────────────

func TestBank_AccrueInterest_Savings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewSavingsAccount("20", 100)

	mockAccounts.EXPECT().Exists(ctx, "20").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, account).Return(true, nil)

	require.NoError(t, svc.AccrueInterest(ctx, account))
	assert.InDelta(t, 150.0, account.Balance(), 0.01)
}

func TestBank_AccrueInterest_ConfiguredRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mock.NewMockAccountRepository(ctrl)
	svc := NewBank(&store.Storages{Accounts: mockAccounts}, config.App{InterestRate: 0.1}, logger.Nop())
	ctx := context.Background()
	account := models.NewSavingsAccount("20", 100)

	mockAccounts.EXPECT().Exists(ctx, "20").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, account).Return(true, nil)

	require.NoError(t, svc.AccrueInterest(ctx, account))
	assert.InDelta(t, 110.0, account.Balance(), 0.01)
}

func TestBank_AccrueInterest_NotSavings(t *testing.T) {
	for _, account := range []models.Account{
		models.NewCheckingAccount("1", 0),
		models.NewCheckingAccount("1", 1e6),
		models.NewSpecialAccount("1", 100),
	} {
		t.Run(string(account.Kind()), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
			ctx := context.Background()
			before := account.Balance()

			mockAccounts.EXPECT().Exists(ctx, "1").Return(true, nil)

			err := svc.AccrueInterest(ctx, account)
			require.ErrorIs(t, err, ErrNotASavingsAccount)
			assert.Equal(t, before, account.Balance())
		})
	}
}

func TestBank_AccrueInterest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	// not found wins over the kind check
	mockAccounts.EXPECT().Exists(ctx, "1").Return(false, nil)

	err := svc.AccrueInterest(ctx, models.NewCheckingAccount("1", 10))
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestBank_AccrueBonus_Special(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()
	account := models.NewSpecialAccount("30", 0)
	require.NoError(t, account.Credit(100))

	mockAccounts.EXPECT().Exists(ctx, "30").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, account).Return(true, nil)

	require.NoError(t, svc.AccrueBonus(ctx, account))
	assert.InDelta(t, 101.0, account.Balance(), 1e-9)
	assert.Zero(t, account.PendingBonus())
}

func TestBank_AccrueBonus_NotSpecial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "20").Return(true, nil)

	err := svc.AccrueBonus(ctx, models.NewSavingsAccount("20", 100))
	require.ErrorIs(t, err, ErrNotASpecialAccount)
}

func TestBank_AccrueBonus_UpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _ := newTestBankSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().Exists(ctx, "30").Return(true, nil)
	mockAccounts.EXPECT().Update(ctx, gomock.Any()).Return(false, errors.New("disk full"))

	err := svc.AccrueBonus(ctx, models.NewSpecialAccount("30", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
