package memory

// Config 定義記憶體引擎的容量策略
// 0 代表不設上限；設定正數則恢復有界容量 (超出時回傳 ErrCapacityExceeded)
type Config struct {
	MaxAccounts     int `yaml:"max_accounts"`
	MaxTransactions int `yaml:"max_transactions"`
}
