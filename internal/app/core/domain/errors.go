package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數 (建立帳戶時允許為零)
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶 (不存在或已停用)
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound 找不到交易
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionFinalized 交易已是終態，不可重複執行
	ErrTransactionFinalized = errors.New("transaction already finalized")

	// ErrUnknownTransactionKind 未知的交易類型
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")

	// ErrCapacityExceeded 超出設定的容量上限
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
