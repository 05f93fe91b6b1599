package domain

import "github.com/google/uuid"

// TransactionKind 交易類型
// 為了極致節省記憶體，使用 uint8
type TransactionKind uint8

const (
	// 存款
	TransactionKindDeposit TransactionKind = 1
	// 提款
	TransactionKindWithdraw TransactionKind = 2
)

// ParseTransactionKind 由字串解析交易類型 (封閉枚舉，建立時即驗證)
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case "Deposit":
		return TransactionKindDeposit, nil
	case "Withdraw":
		return TransactionKindWithdraw, nil
	default:
		return 0, ErrUnknownTransactionKind
	}
}

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "Deposit"
	case TransactionKindWithdraw:
		return "Withdraw"
	default:
		return "Unknown"
	}
}

// TransactionStatus 交易狀態
// 狀態機: Pending -> {Completed, Failed}，離開 Pending 後即為終態，不再改變
type TransactionStatus uint8

const (
	// 已建立、尚未執行
	TransactionStatusPending TransactionStatus = 1
	// 執行成功，餘額已套用
	TransactionStatusCompleted TransactionStatus = 2
	// 執行失敗，餘額未變動
	TransactionStatusFailed TransactionStatus = 3
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusPending:
		return "Pending"
	case TransactionStatusCompleted:
		return "Completed"
	case TransactionStatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal 回報狀態是否已是終態
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Transaction 交易 注意欄位排序以避免 Padding
type Transaction struct {
	// ID: 全局唯一的流水號 (由核心引擎分配，1, 2, 3...)
	ID int64
	// AccountID: 目標帳戶 ID (弱引用，執行時才查找驗證)
	AccountID int64
	// Amount: 請求金額 (最小貨幣單位)
	Amount int64
	// CreatedAt: 交易建立時間 (Unix)
	CreatedAt int64
	// RefID: 外部追蹤號 (UUID)
	RefID uuid.UUID
	// Kind, Status: 放到最後面，利用 Padding 空間
	Kind   TransactionKind
	Status TransactionStatus
}

// NewTransaction 建立一筆 Pending 交易
// 不驗證 accountID 與 amount，驗證延後到執行階段
func NewTransaction(id int64, accountID int64, kind TransactionKind, amount int64, createdAt int64) *Transaction {
	return &Transaction{
		ID:        id,
		AccountID: accountID,
		Amount:    amount,
		CreatedAt: createdAt,
		RefID:     uuid.New(),
		Kind:      kind,
		Status:    TransactionStatusPending,
	}
}
