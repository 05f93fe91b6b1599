package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// accountEntry 帳戶槽位
// mu 只保護 acct.Balance；ID/OwnerID/Active 建立後不再變動，讀取無需鎖
type accountEntry struct {
	mu   sync.Mutex
	acct *domain.Account
}

// transactionEntry 交易槽位
// mu 保護 tx.Status 的終態轉換與快照讀取
type transactionEntry struct {
	mu sync.Mutex
	tx *domain.Transaction
}

// MutexBank 是一個使用細粒度 Mutex 實現的銀行引擎
//
// 鎖的層級 (由外而內，不可反向持有):
//
//	mu: registry 鎖，保護 ID 計數器與兩張 Map (建立與查找)
//	transactionEntry.mu: 單筆交易鎖，保證終態只寫入一次
//	accountEntry.mu: 單帳戶鎖，保證同帳戶的檢查與餘額變動互斥
//
// 不同帳戶的交易執行彼此完全平行；registry 鎖不跨越任何執行關鍵區
type MutexBank struct {
	cfg Config

	mu                sync.RWMutex
	nextAccountID     int64
	nextTransactionID int64
	accounts          map[int64]*accountEntry
	transactions      map[int64]*transactionEntry
	// 建立順序，供 ListTransactions 使用
	order []*transactionEntry
}

// NewMutexBank 建立一個新的 MutexBank 實例
//
// 參數:
//
//	cfg: 容量策略 (0 = 不設上限)
//
// 回傳:
//
//	*MutexBank: MutexBank 實例
func NewMutexBank(cfg Config) *MutexBank {
	return &MutexBank{
		cfg:               cfg,
		nextAccountID:     1,
		nextTransactionID: 1,
		accounts:          make(map[int64]*accountEntry),
		transactions:      make(map[int64]*transactionEntry),
	}
}

// CreateAccount 建立帳戶
//
// 參數:
//
//	ctx: 上下文
//	ownerID: 外部客戶識別
//	initialBalance: 初始餘額 (最小貨幣單位，不得為負)
//
// 回傳:
//
//	int64: 分配到的帳戶 ID
//	error: 建立錯誤 (如金額為負、超出容量)
//
// 任一錯誤都不改變任何狀態，ID 計數器也不前進
func (m *MutexBank) CreateAccount(ctx context.Context, ownerID string, initialBalance int64) (int64, error) {
	if initialBalance < 0 {
		return 0, domain.ErrInvalidAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.MaxAccounts > 0 && len(m.accounts) >= m.cfg.MaxAccounts {
		return 0, domain.ErrCapacityExceeded
	}

	id := m.nextAccountID
	m.nextAccountID++
	m.accounts[id] = &accountEntry{acct: domain.NewAccount(id, ownerID, initialBalance)}
	return id, nil
}

// CreateTransaction 登記一筆 Pending 交易
//
// 參數:
//
//	ctx: 上下文
//	accountID: 目標帳戶 ID (此時不驗證)
//	kind: 交易類型
//	amount: 請求金額 (此時不驗證)
//
// 回傳:
//
//	int64: 分配到的交易 ID
//	error: 登記錯誤 (如超出容量)
func (m *MutexBank) CreateTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.MaxTransactions > 0 && len(m.transactions) >= m.cfg.MaxTransactions {
		return 0, domain.ErrCapacityExceeded
	}

	id := m.nextTransactionID
	m.nextTransactionID++
	entry := &transactionEntry{tx: domain.NewTransaction(id, accountID, kind, amount, time.Now().Unix())}
	m.transactions[id] = entry
	m.order = append(m.order, entry)
	return id, nil
}

// findAccount 查找有效帳戶；不存在或已停用回傳 nil
func (m *MutexBank) findAccount(accountID int64) *accountEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.accounts[accountID]
	if !ok || !entry.acct.Active {
		return nil
	}
	return entry
}

// ExecuteTransaction 執行交易 (每筆交易恰好套用一次)
//
// 參數:
//
//	ctx: 上下文
//	transactionID: 交易 ID
//
// 回傳:
//
//	error: 執行錯誤；除 ErrTransactionNotFound/ErrTransactionFinalized 外，
//	       錯誤同時會把交易標記為 Failed
//
// 查找、檢查、變動餘額、寫入終態在帳戶鎖內是單一原子單位；
// 餘額變動是全有或全無，失敗路徑不留下部分更新
func (m *MutexBank) ExecuteTransaction(ctx context.Context, transactionID int64) error {
	m.mu.RLock()
	te, ok := m.transactions[transactionID]
	m.mu.RUnlock()
	if !ok {
		return domain.ErrTransactionNotFound
	}

	te.mu.Lock()
	defer te.mu.Unlock()

	// 終態不可重複執行，餘額不會被二次套用
	if te.tx.Status.Terminal() {
		return domain.ErrTransactionFinalized
	}

	ae := m.findAccount(te.tx.AccountID)
	if ae == nil {
		te.tx.Status = domain.TransactionStatusFailed
		return domain.ErrAccountNotFound
	}

	ae.mu.Lock()
	defer ae.mu.Unlock()

	var err error
	switch te.tx.Kind {
	case domain.TransactionKindDeposit:
		err = ae.acct.Deposit(te.tx.Amount)
	case domain.TransactionKindWithdraw:
		err = ae.acct.Withdraw(te.tx.Amount)
	default:
		// 公開建構路徑已驗證類型，此分支只是防禦
		err = domain.ErrUnknownTransactionKind
	}

	if err != nil {
		te.tx.Status = domain.TransactionStatusFailed
		return err
	}

	te.tx.Status = domain.TransactionStatusCompleted
	return nil
}

// GetAccountBalance 取得指定帳戶的當前餘額
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//
// 回傳:
//
//	int64: 帳戶餘額
//	error: 查詢錯誤 (如帳戶不存在)
//
// 只持有該帳戶的鎖，不阻塞其他帳戶的讀寫
func (m *MutexBank) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	ae := m.findAccount(accountID)
	if ae == nil {
		return 0, domain.ErrAccountNotFound
	}
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.acct.Balance, nil
}

// GetTransaction 取得單筆交易快照
//
// 參數:
//
//	ctx: 上下文
//	transactionID: 交易 ID
//
// 回傳:
//
//	domain.Transaction: 交易快照 (值拷貝，呼叫端無法改寫內部狀態)
//	error: 查詢錯誤
func (m *MutexBank) GetTransaction(ctx context.Context, transactionID int64) (domain.Transaction, error) {
	m.mu.RLock()
	te, ok := m.transactions[transactionID]
	m.mu.RUnlock()
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	te.mu.Lock()
	defer te.mu.Unlock()
	return *te.tx, nil
}

// ListTransactions 依建立順序回傳所有交易快照
//
// 參數:
//
//	ctx: 上下文
//
// 回傳:
//
//	[]domain.Transaction: 交易快照列表 (建立順序)
//	error: 查詢錯誤
func (m *MutexBank) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	m.mu.RLock()
	entries := make([]*transactionEntry, len(m.order))
	copy(entries, m.order)
	m.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(entries))
	for _, te := range entries {
		te.mu.Lock()
		out = append(out, *te.tx)
		te.mu.Unlock()
	}
	return out, nil
}

var _ usecase.Bank = (*MutexBank)(nil)
