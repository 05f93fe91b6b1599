package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Bank 是銀行模擬器的核心介面
type Bank interface {
	// CreateAccount 建立帳戶，回傳分配到的帳戶 ID
	CreateAccount(ctx context.Context, ownerID string, initialBalance int64) (int64, error)
	// CreateTransaction 登記一筆 Pending 交易，回傳交易 ID
	// 不在此驗證帳戶與金額，驗證延後到 ExecuteTransaction
	CreateTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64) (int64, error)
	// ExecuteTransaction 執行交易，結果反映在交易終態與回傳錯誤
	ExecuteTransaction(ctx context.Context, transactionID int64) error
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, accountID int64) (int64, error)
	// GetTransaction 取得單筆交易快照
	GetTransaction(ctx context.Context, transactionID int64) (domain.Transaction, error)
	// ListTransactions 依建立順序回傳所有交易快照
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
