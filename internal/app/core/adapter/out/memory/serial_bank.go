package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// opKind 請求種類，所有操作都經過單一 Run Loop
type opKind uint8

const (
	opCreateAccount opKind = iota + 1
	opCreateTransaction
	opExecuteTransaction
	opGetAccountBalance
	opGetTransaction
	opListTransactions
)

// bankRequest 請求包裝channel，讓呼叫端可以等待結果
type bankRequest struct {
	op opKind

	ownerID       string
	accountID     int64
	transactionID int64
	kind          domain.TransactionKind
	amount        int64

	Result chan bankResponse // 呼叫端等這個 channel
}

// bankResponse 單一請求的執行結果
type bankResponse struct {
	id      int64
	balance int64
	tx      domain.Transaction
	list    []domain.Transaction
	err     error
}

// SerialBank 是單一寫入者 (Single Writer) 實現的銀行引擎
// 所有操作經由輸送帶送進 Run Loop 逐筆處理，狀態完全不需要鎖；
// 互斥保證由「全序列化」天然成立 (代價是放棄跨帳戶的平行度)
type SerialBank struct {
	cfg Config

	nextAccountID     int64
	nextTransactionID int64
	accounts          map[int64]*domain.Account
	transactions      map[int64]*domain.Transaction
	order             []*domain.Transaction

	// 輸送帶 負責接收請求
	requestChan chan *bankRequest
	// Pool 減少 GC 壓力
	requestPool sync.Pool
}

// NewSerialBank 建立一個新的 SerialBank 實例
// 呼叫端必須接著呼叫 Start，Run Loop 啟動前送入的請求會阻塞
//
// 參數:
//
//	cfg: 容量策略 (0 = 不設上限)
//
// 回傳:
//
//	*SerialBank: SerialBank 實例
func NewSerialBank(cfg Config) *SerialBank {
	return &SerialBank{
		cfg:               cfg,
		nextAccountID:     1,
		nextTransactionID: 1,
		accounts:          make(map[int64]*domain.Account),
		transactions:      make(map[int64]*domain.Transaction),
		requestChan:       make(chan *bankRequest, 1000), // Buffer 1000
		requestPool: sync.Pool{
			New: func() interface{} {
				return &bankRequest{
					Result: make(chan bankResponse, 1),
				}
			},
		},
	}
}

// Start 啟動核心引擎 (非同步)
func (s *SerialBank) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *SerialBank) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			s.drain()
			return
		case req := <-s.requestChan:
			s.process(req)
		}
	}
}

func (s *SerialBank) drain() {
	for {
		select {
		case req := <-s.requestChan:
			s.process(req)
		default:
			return
		}
	}
}

// submit 把請求放入輸送帶並等待結果 (使用 sync.Pool 減少 GC)
func (s *SerialBank) submit(fill func(req *bankRequest)) bankResponse {
	req := s.requestPool.Get().(*bankRequest)
	*req = bankRequest{Result: req.Result}
	fill(req)
	// 清空 Channel (雖然理論上應該是空的，但保險起見)
	select {
	case <-req.Result:
	default:
	}

	s.requestChan <- req
	resp := <-req.Result
	s.requestPool.Put(req)
	return resp
}

// process 處理單筆請求並回傳結果 (只在 Run Loop 內執行，天然 Thread Safe)
func (s *SerialBank) process(req *bankRequest) {
	var resp bankResponse
	switch req.op {
	case opCreateAccount:
		resp.id, resp.err = s.createAccount(req.ownerID, req.amount)
	case opCreateTransaction:
		resp.id, resp.err = s.createTransaction(req.accountID, req.kind, req.amount)
	case opExecuteTransaction:
		resp.err = s.executeTransaction(req.transactionID)
	case opGetAccountBalance:
		resp.balance, resp.err = s.getAccountBalance(req.accountID)
	case opGetTransaction:
		resp.tx, resp.err = s.getTransaction(req.transactionID)
	case opListTransactions:
		resp.list = s.listTransactions()
	}
	req.Result <- resp
}

func (s *SerialBank) createAccount(ownerID string, initialBalance int64) (int64, error) {
	if initialBalance < 0 {
		return 0, domain.ErrInvalidAmount
	}
	if s.cfg.MaxAccounts > 0 && len(s.accounts) >= s.cfg.MaxAccounts {
		return 0, domain.ErrCapacityExceeded
	}
	id := s.nextAccountID
	s.nextAccountID++
	s.accounts[id] = domain.NewAccount(id, ownerID, initialBalance)
	return id, nil
}

func (s *SerialBank) createTransaction(accountID int64, kind domain.TransactionKind, amount int64) (int64, error) {
	if s.cfg.MaxTransactions > 0 && len(s.transactions) >= s.cfg.MaxTransactions {
		return 0, domain.ErrCapacityExceeded
	}
	id := s.nextTransactionID
	s.nextTransactionID++
	tx := domain.NewTransaction(id, accountID, kind, amount, time.Now().Unix())
	s.transactions[id] = tx
	s.order = append(s.order, tx)
	return id, nil
}

func (s *SerialBank) executeTransaction(transactionID int64) error {
	tx, ok := s.transactions[transactionID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if tx.Status.Terminal() {
		return domain.ErrTransactionFinalized
	}

	acct, ok := s.accounts[tx.AccountID]
	if !ok || !acct.Active {
		tx.Status = domain.TransactionStatusFailed
		return domain.ErrAccountNotFound
	}

	var err error
	switch tx.Kind {
	case domain.TransactionKindDeposit:
		err = acct.Deposit(tx.Amount)
	case domain.TransactionKindWithdraw:
		err = acct.Withdraw(tx.Amount)
	default:
		err = domain.ErrUnknownTransactionKind
	}

	if err != nil {
		tx.Status = domain.TransactionStatusFailed
		return err
	}
	tx.Status = domain.TransactionStatusCompleted
	return nil
}

func (s *SerialBank) getAccountBalance(accountID int64) (int64, error) {
	acct, ok := s.accounts[accountID]
	if !ok || !acct.Active {
		return 0, domain.ErrAccountNotFound
	}
	return acct.Balance, nil
}

func (s *SerialBank) getTransaction(transactionID int64) (domain.Transaction, error) {
	tx, ok := s.transactions[transactionID]
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return *tx, nil
}

func (s *SerialBank) listTransactions() []domain.Transaction {
	out := make([]domain.Transaction, 0, len(s.order))
	for _, tx := range s.order {
		out = append(out, *tx)
	}
	return out
}

// CreateAccount 建立帳戶 (經由 Run Loop)
func (s *SerialBank) CreateAccount(ctx context.Context, ownerID string, initialBalance int64) (int64, error) {
	resp := s.submit(func(req *bankRequest) {
		req.op = opCreateAccount
		req.ownerID = ownerID
		req.amount = initialBalance
	})
	return resp.id, resp.err
}

// CreateTransaction 登記一筆 Pending 交易 (經由 Run Loop)
func (s *SerialBank) CreateTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64) (int64, error) {
	resp := s.submit(func(req *bankRequest) {
		req.op = opCreateTransaction
		req.accountID = accountID
		req.kind = kind
		req.amount = amount
	})
	return resp.id, resp.err
}

// ExecuteTransaction 執行交易 (經由 Run Loop)
func (s *SerialBank) ExecuteTransaction(ctx context.Context, transactionID int64) error {
	resp := s.submit(func(req *bankRequest) {
		req.op = opExecuteTransaction
		req.transactionID = transactionID
	})
	return resp.err
}

// GetAccountBalance 取得帳戶餘額 (經由 Run Loop)
func (s *SerialBank) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	resp := s.submit(func(req *bankRequest) {
		req.op = opGetAccountBalance
		req.accountID = accountID
	})
	return resp.balance, resp.err
}

// GetTransaction 取得單筆交易快照 (經由 Run Loop)
func (s *SerialBank) GetTransaction(ctx context.Context, transactionID int64) (domain.Transaction, error) {
	resp := s.submit(func(req *bankRequest) {
		req.op = opGetTransaction
		req.transactionID = transactionID
	})
	return resp.tx, resp.err
}

// ListTransactions 依建立順序回傳所有交易快照 (經由 Run Loop)
func (s *SerialBank) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	resp := s.submit(func(req *bankRequest) {
		req.op = opListTransactions
	})
	return resp.list, resp.err
}

var _ usecase.Bank = (*SerialBank)(nil)
