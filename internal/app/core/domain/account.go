package domain

// Account 帳戶
// 餘額以最小貨幣單位 (int64) 儲存，精度定義在 pkg/money，避免浮點誤差
type Account struct {
	// ID: 由核心引擎分配的流水號 (1, 2, 3...)，建立後不可變
	ID int64
	// OwnerID: 外部客戶識別 (不透明字串，核心不解讀)
	OwnerID string
	// Balance: 餘額，恆為非負
	Balance int64
	// Active: 帳戶是否有效；目前生命週期只有建立，沒有任何操作會停用帳戶
	Active bool
}

func NewAccount(id int64, ownerID string, balance int64) *Account {
	return &Account{
		ID:      id,
		OwnerID: ownerID,
		Balance: balance,
		Active:  true,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if a.Balance < amount {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance - amount
	return nil
}
