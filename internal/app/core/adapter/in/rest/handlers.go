package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/pkg/money"
)

// 金額在 JSON 介面上一律以十進位字串傳遞 (如 "100.50")，
// 由 pkg/money 轉換為最小貨幣單位，避免 JSON number 的浮點問題

type createAccountRequest struct {
	OwnerID        string `json:"owner_id" validate:"required"`
	InitialBalance string `json:"initial_balance" validate:"required"`
}

type createAccountResponse struct {
	AccountID int64 `json:"account_id"`
}

type createTransactionRequest struct {
	AccountID int64  `json:"account_id" validate:"required"`
	Kind      string `json:"kind" validate:"required,oneof=Deposit Withdraw"`
	Amount    string `json:"amount" validate:"required"`
}

type createTransactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Status        string `json:"status"`
}

type executeTransactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Status        string `json:"status"`
}

type balanceResponse struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
}

type transactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	AccountID     int64  `json:"account_id"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	RefID         string `json:"ref_id"`
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
		Kind:          tx.Kind.String(),
		Amount:        money.Format(tx.Amount),
		Status:        tx.Status.String(),
		RefID:         tx.RefID.String(),
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	balance, err := money.Parse(req.InitialBalance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.core.CreateAccount(r.Context(), req.OwnerID, balance)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, createAccountResponse{AccountID: id})
}

func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	balance, err := s.core.GetAccountBalance(r.Context(), id)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{AccountID: id, Balance: money.Format(balance)})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	amount, err := money.Parse(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tid, err := s.core.CreateTransaction(r.Context(), req.AccountID, kind, amount)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, createTransactionResponse{
		TransactionID: tid,
		Status:        domain.TransactionStatusPending.String(),
	})
}

func (s *Server) handleExecuteTransaction(w http.ResponseWriter, r *http.Request) {
	tid, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.core.ExecuteTransaction(r.Context(), tid); err != nil {
		writeError(w, httpStatus(err), err)
		return
	}

	tx, err := s.core.GetTransaction(r.Context(), tid)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, executeTransactionResponse{
		TransactionID: tx.ID,
		Status:        tx.Status.String(),
	})
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tid, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tx, err := s.core.GetTransaction(r.Context(), tid)
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	list, err := s.core.ListTransactions(r.Context())
	if err != nil {
		writeError(w, httpStatus(err), err)
		return
	}

	out := make([]transactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, toTransactionResponse(tx))
	}
	writeJSON(w, http.StatusOK, out)
}
