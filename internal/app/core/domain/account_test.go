package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDeposit(t *testing.T) {
	a := NewAccount(1, "alice", 100)
	require.True(t, a.Active)

	require.NoError(t, a.Deposit(50))
	assert.Equal(t, int64(150), a.Balance)

	// 非正數金額一律拒絕，餘額不變
	assert.ErrorIs(t, a.Deposit(0), ErrInvalidAmount)
	assert.ErrorIs(t, a.Deposit(-10), ErrInvalidAmount)
	assert.Equal(t, int64(150), a.Balance)
}

func TestAccountWithdraw(t *testing.T) {
	a := NewAccount(1, "alice", 100)

	require.NoError(t, a.Withdraw(40))
	assert.Equal(t, int64(60), a.Balance)

	assert.ErrorIs(t, a.Withdraw(0), ErrInvalidAmount)
	assert.ErrorIs(t, a.Withdraw(-5), ErrInvalidAmount)
	assert.ErrorIs(t, a.Withdraw(61), ErrInsufficientBalance)
	// 餘額恆為非負
	assert.Equal(t, int64(60), a.Balance)

	require.NoError(t, a.Withdraw(60))
	assert.Equal(t, int64(0), a.Balance)
}
