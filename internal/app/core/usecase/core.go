package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	bank Bank
}

func NewCoreUseCase(bank Bank) *CoreUseCase {
	return &CoreUseCase{
		bank: bank,
	}
}

// CreateAccount 建立帳戶
func (c *CoreUseCase) CreateAccount(ctx context.Context, ownerID string, initialBalance int64) (int64, error) {
	return c.bank.CreateAccount(ctx, ownerID, initialBalance)
}

// CreateTransaction 登記交易
func (c *CoreUseCase) CreateTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64) (int64, error) {
	return c.bank.CreateTransaction(ctx, accountID, kind, amount)
}

// ExecuteTransaction 執行交易
func (c *CoreUseCase) ExecuteTransaction(ctx context.Context, transactionID int64) error {
	return c.bank.ExecuteTransaction(ctx, transactionID)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	return c.bank.GetAccountBalance(ctx, accountID)
}

// GetTransaction 取得單筆交易
func (c *CoreUseCase) GetTransaction(ctx context.Context, transactionID int64) (domain.Transaction, error) {
	return c.bank.GetTransaction(ctx, transactionID)
}

// ListTransactions 取得交易列表
func (c *CoreUseCase) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return c.bank.ListTransactions(ctx)
}
