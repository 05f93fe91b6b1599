package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

func newTestServer() http.Handler {
	bank := memory_adapter.NewMutexBank(memory_adapter.Config{})
	return NewServer(usecase.NewCoreUseCase(bank)).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestAccountEndpoints(t *testing.T) {
	h := newTestServer()

	t.Run("create account", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/accounts", map[string]string{
			"owner_id":        "alice",
			"initial_balance": "100",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var resp createAccountResponse
		decode(t, rec, &resp)
		assert.Equal(t, int64(1), resp.AccountID)
	})

	t.Run("negative initial balance", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/accounts", map[string]string{
			"owner_id":        "mallory",
			"initial_balance": "-5",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing owner id", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/accounts", map[string]string{
			"initial_balance": "10",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/accounts", map[string]string{
			"owner_id":        "alice",
			"initial_balance": "10",
			"currency":        "TWD",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("balance of unknown account", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/accounts/999/balance", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("balance", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/accounts/1/balance", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp balanceResponse
		decode(t, rec, &resp)
		assert.Equal(t, "100.00", resp.Balance)
	})
}

func TestTransactionEndpoints(t *testing.T) {
	h := newTestServer()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/accounts", map[string]string{
		"owner_id":        "alice",
		"initial_balance": "100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("deposit lifecycle", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions", map[string]any{
			"account_id": 1,
			"kind":       "Deposit",
			"amount":     "50",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created createTransactionResponse
		decode(t, rec, &created)
		assert.Equal(t, int64(1), created.TransactionID)
		assert.Equal(t, "Pending", created.Status)

		rec = doJSON(t, h, http.MethodPost, "/api/v1/transactions/1/execute", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var executed executeTransactionResponse
		decode(t, rec, &executed)
		assert.Equal(t, "Completed", executed.Status)

		rec = doJSON(t, h, http.MethodGet, "/api/v1/accounts/1/balance", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var bal balanceResponse
		decode(t, rec, &bal)
		assert.Equal(t, "150.00", bal.Balance)
	})

	t.Run("overdraft withdraw fails with conflict", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions", map[string]any{
			"account_id": 1,
			"kind":       "Withdraw",
			"amount":     "200",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/api/v1/transactions/2/execute", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		// 交易終態 Failed，餘額不變
		rec = doJSON(t, h, http.MethodGet, "/api/v1/transactions/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var tx transactionResponse
		decode(t, rec, &tx)
		assert.Equal(t, "Failed", tx.Status)

		rec = doJSON(t, h, http.MethodGet, "/api/v1/accounts/1/balance", nil)
		var bal balanceResponse
		decode(t, rec, &bal)
		assert.Equal(t, "150.00", bal.Balance)
	})

	t.Run("re-execution rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions/1/execute", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown transaction kind", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions", map[string]any{
			"account_id": 1,
			"kind":       "Transfer",
			"amount":     "10",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sub-cent precision rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions", map[string]any{
			"account_id": 1,
			"kind":       "Deposit",
			"amount":     "0.005",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("execute unknown transaction", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/transactions/99/execute", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/transactions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []transactionResponse
		decode(t, rec, &list)
		require.Len(t, list, 2)
		assert.Equal(t, int64(1), list[0].TransactionID)
		assert.Equal(t, "Completed", list[0].Status)
		assert.Equal(t, "50.00", list[0].Amount)
		assert.Equal(t, int64(2), list[1].TransactionID)
		assert.Equal(t, "Failed", list[1].Status)
	})
}
