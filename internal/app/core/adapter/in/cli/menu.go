// Package cli 提供互動式選單介面
// 選單只是薄薄的 I/O 包裝：讀取選項、呼叫核心、列印結果，
// 所有業務規則都在核心引擎裡
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/money"
)

// Menu 互動式選單
type Menu struct {
	core *usecase.CoreUseCase
	in   *bufio.Scanner
	out  io.Writer
}

// NewMenu 建立選單；in/out 可注入，方便測試
func NewMenu(core *usecase.CoreUseCase, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Menu{
		core: core,
		in:   scanner,
		out:  out,
	}
}

// Run 執行選單主迴圈，直到使用者選擇離開或輸入結束
func (m *Menu) Run(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\n------ Banking System ------")
		fmt.Fprintln(m.out, "1. Create Account")
		fmt.Fprintln(m.out, "2. Deposit")
		fmt.Fprintln(m.out, "3. Withdraw")
		fmt.Fprintln(m.out, "4. Check Balance")
		fmt.Fprintln(m.out, "5. Display All Transactions")
		fmt.Fprintln(m.out, "6. Exit")
		fmt.Fprint(m.out, "Enter your choice: ")

		choice, ok := m.next()
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.createAccount(ctx)
		case "2":
			m.transact(ctx, domain.TransactionKindDeposit)
		case "3":
			m.transact(ctx, domain.TransactionKindWithdraw)
		case "4":
			m.checkBalance(ctx)
		case "5":
			m.printTransactions(ctx)
		case "6":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// next 讀取下一個輸入 token；輸入結束回傳 false
func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) readInt64(prompt string) (int64, bool) {
	fmt.Fprint(m.out, prompt)
	tok, ok := m.next()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid number.")
		return 0, false
	}
	return v, true
}

func (m *Menu) readAmount(prompt string) (int64, bool) {
	fmt.Fprint(m.out, prompt)
	tok, ok := m.next()
	if !ok {
		return 0, false
	}
	v, err := money.Parse(tok)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid amount.")
		return 0, false
	}
	return v, true
}

func (m *Menu) createAccount(ctx context.Context) {
	fmt.Fprint(m.out, "Enter customer ID: ")
	ownerID, ok := m.next()
	if !ok {
		return
	}
	balance, ok := m.readAmount("Enter initial balance: ")
	if !ok {
		return
	}

	id, err := m.core.CreateAccount(ctx, ownerID, balance)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			fmt.Fprintln(m.out, "Error: Initial balance cannot be negative.")
		} else if errors.Is(err, domain.ErrCapacityExceeded) {
			fmt.Fprintln(m.out, "Error: Maximum account limit reached.")
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return
	}
	fmt.Fprintf(m.out, "Account created successfully! Account ID: %d\n", id)
}

// transact 登記並立即執行一筆交易
func (m *Menu) transact(ctx context.Context, kind domain.TransactionKind) {
	accountID, ok := m.readInt64("Enter account ID: ")
	if !ok {
		return
	}
	amount, ok := m.readAmount(fmt.Sprintf("Enter amount to %s: ", verb(kind)))
	if !ok {
		return
	}

	tid, err := m.core.CreateTransaction(ctx, accountID, kind, amount)
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			fmt.Fprintln(m.out, "Error: Maximum transaction limit reached.")
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return
	}
	fmt.Fprintf(m.out, "Transaction created successfully! Transaction ID: %d\n", tid)

	if err := m.core.ExecuteTransaction(ctx, tid); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			fmt.Fprintf(m.out, "Error: Account not found for transaction %d\n", tid)
		case kind == domain.TransactionKindDeposit:
			fmt.Fprintln(m.out, "Error: Invalid deposit amount.")
		default:
			fmt.Fprintln(m.out, "Error: Insufficient funds or invalid withdrawal amount.")
		}
		return
	}

	balance, err := m.core.GetAccountBalance(ctx, accountID)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	if kind == domain.TransactionKindDeposit {
		fmt.Fprintf(m.out, "Transaction %d: Deposit successful! New balance: %s\n", tid, money.Format(balance))
	} else {
		fmt.Fprintf(m.out, "Transaction %d: Withdrawal successful! New balance: %s\n", tid, money.Format(balance))
	}
}

func (m *Menu) checkBalance(ctx context.Context) {
	accountID, ok := m.readInt64("Enter account ID: ")
	if !ok {
		return
	}

	balance, err := m.core.GetAccountBalance(ctx, accountID)
	if err != nil {
		fmt.Fprintln(m.out, "Error: Invalid account ID.")
		return
	}
	fmt.Fprintf(m.out, "Balance for Account ID %d: %s\n", accountID, money.Format(balance))
}

func (m *Menu) printTransactions(ctx context.Context) {
	list, err := m.core.ListTransactions(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(m.out, "\nTransaction Table:")
	tw := tabwriter.NewWriter(m.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "TID\tAID\tType\tAmount\tStatus")
	for _, tx := range list {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
			tx.ID, tx.AccountID, tx.Kind, money.Format(tx.Amount), tx.Status)
	}
	tw.Flush()
}

func verb(kind domain.TransactionKind) string {
	if kind == domain.TransactionKindDeposit {
		return "deposit"
	}
	return "withdraw"
}
