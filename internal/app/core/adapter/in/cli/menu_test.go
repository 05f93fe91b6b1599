package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

func runMenu(t *testing.T, script string) string {
	t.Helper()
	bank := memory_adapter.NewMutexBank(memory_adapter.Config{})
	core := usecase.NewCoreUseCase(bank)

	var out bytes.Buffer
	menu := NewMenu(core, strings.NewReader(script), &out)
	menu.Run(context.Background())
	return out.String()
}

// 完整走一輪: 開戶 → 存款 → 超額提款 → 查餘額 → 列表 → 離開
func TestMenuHappyPath(t *testing.T) {
	out := runMenu(t, `
		1 alice 100
		2 1 50
		3 1 200
		4 1
		5
		6
	`)

	assert.Contains(t, out, "Account created successfully! Account ID: 1")
	assert.Contains(t, out, "Transaction 1: Deposit successful! New balance: 150.00")
	assert.Contains(t, out, "Error: Insufficient funds or invalid withdrawal amount.")
	assert.Contains(t, out, "Balance for Account ID 1: 150.00")
	assert.Contains(t, out, "TID")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Failed")
}

func TestMenuNegativeInitialBalance(t *testing.T) {
	out := runMenu(t, "1 bob -5 6")
	assert.Contains(t, out, "Error: Initial balance cannot be negative.")
	assert.NotContains(t, out, "Account created successfully")
}

func TestMenuUnknownAccount(t *testing.T) {
	out := runMenu(t, "2 99 10 4 99 6")
	assert.Contains(t, out, "Error: Account not found for transaction 1")
	assert.Contains(t, out, "Error: Invalid account ID.")
}

func TestMenuInvalidChoice(t *testing.T) {
	out := runMenu(t, "9 6")
	assert.Contains(t, out, "Invalid choice. Please try again.")
}

// 輸入結束 (EOF) 時選單應直接結束，不會卡住
func TestMenuStopsOnEOF(t *testing.T) {
	out := runMenu(t, "1 alice")
	assert.Contains(t, out, "Enter initial balance: ")
}
