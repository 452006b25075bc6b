package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"solpay/internal/http/handler/middleware"
	"solpay/internal/http/payload"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var (
	CreateUser              = "POST /v1/users"
	ListUsers               = "GET /v1/users"
	GetUser                 = "GET /v1/users/{id}"
	UpdateUser              = "PATCH /v1/users/{id}"
	ListUserTransactions    = "GET /v1/users/{id}/transactions"
	ResolveIdentifier       = "GET /v1/resolve/{identifier}"
	CreateLedgerEntry       = "POST /v1/transactions"
	GetTransactions         = "GET /v1/transactions"
	GetTransaction          = "GET /v1/transactions/{hash}"
	UpdateTransactionStatus = "PATCH /v1/transactions/{hash}"
	SubmitTransfer          = "POST /v1/transfers"
)

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           LedgerService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           ledgerService,
	}
}

func (h *LedgerHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.CreateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, "Could not create user", err, CreateUser, requestId)
		return
	}

	user, err := h.ledger.CreateUser(r.Context(), req.PhoneNumber)
	if err != nil {
		h.fail(w, "Could not create user", err, CreateUser, requestId)
		return
	}

	h.logs.Infow("user created",
		"user_id", user.ID,
		"handler", CreateUser,
		"request_id", requestId)

	h.respond(w, Response{Message: "User created", Data: user}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	page, err := payload.ParsePageRequest(r.URL.Query())
	if err != nil {
		h.invalidRequest(w, "Could not list users", err, ListUsers, requestId)
		return
	}

	users, err := h.ledger.ListUsers(r.Context(), page.Offset, page.Limit)
	if err != nil {
		h.fail(w, "Could not list users", err, ListUsers, requestId)
		return
	}

	h.respond(w, Response{Data: users}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	user, err := h.ledger.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, "Could not get user", err, GetUser, requestId)
		return
	}

	h.respond(w, Response{Data: user}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	id := mux.Vars(r)["id"]

	var req payload.UpdateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, "Could not update user", err, UpdateUser, requestId)
		return
	}

	user, err := h.ledger.UpdateUser(r.Context(), id, req.ToPatch())
	if err != nil {
		h.fail(w, "Could not update user", err, UpdateUser, requestId)
		return
	}

	h.logs.Infow("user updated",
		"user_id", id,
		"handler", UpdateUser,
		"request_id", requestId)

	h.respond(w, Response{Message: "User updated", Data: user}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleResolveIdentifier(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	id, err := h.ledger.ResolveIdentifier(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		h.fail(w, "Could not resolve identifier", err, ResolveIdentifier, requestId)
		return
	}

	h.respond(w, Response{Data: map[string]string{"id": id}}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleCreateLedgerEntry(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.LedgerEntryRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, "Could not create transaction", err, CreateLedgerEntry, requestId)
		return
	}

	result, err := h.ledger.CreateLedgerEntry(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Could not create transaction", err, CreateLedgerEntry, requestId)
		return
	}

	if !result.Success {
		h.respond(w, Response{Message: result.Message, Error: result.Reason.Error()}, statusForError(result.Reason), requestId)
		h.logs.Infow("transaction rejected",
			"transaction_hash", req.TransactionHash,
			"reason", result.Message,
			"handler", CreateLedgerEntry,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: result.Message, Data: result.Entry}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	hashes := r.URL.Query()["hash"]
	if len(hashes) == 0 || len(hashes) > payload.MaxLimit {
		h.invalidRequest(w, "Could not retrieve transactions",
			fmt.Errorf("between 1 and %d hash parameters are required", payload.MaxLimit), GetTransactions, requestId)
		return
	}

	transactions, err := h.ledger.GetTransactions(r.Context(), hashes)
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	h.respond(w, Response{Data: transactions}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	transaction, err := h.ledger.GetTransaction(r.Context(), mux.Vars(r)["hash"])
	if err != nil {
		h.fail(w, "Could not retrieve transaction", err, GetTransaction, requestId)
		return
	}

	h.respond(w, Response{Data: transaction}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleUpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	hash := mux.Vars(r)["hash"]

	var req payload.StatusRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, "Could not update transaction", err, UpdateTransactionStatus, requestId)
		return
	}

	transaction, err := h.ledger.UpdateTransactionStatus(r.Context(), hash, req.Status)
	if err != nil {
		h.fail(w, "Could not update transaction", err, UpdateTransactionStatus, requestId)
		return
	}

	h.logs.Infow("transaction status updated",
		"transaction_hash", hash,
		"status", req.Status,
		"handler", UpdateTransactionStatus,
		"request_id", requestId)

	h.respond(w, Response{Message: "Transaction updated", Data: transaction}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleListUserTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	page, err := payload.ParsePageRequest(r.URL.Query())
	if err != nil {
		h.invalidRequest(w, "Could not list transactions", err, ListUserTransactions, requestId)
		return
	}

	transactions, err := h.ledger.ListUserTransactions(r.Context(), mux.Vars(r)["id"], page.Offset, page.Limit)
	if err != nil {
		h.fail(w, "Could not list transactions", err, ListUserTransactions, requestId)
		return
	}

	h.respond(w, Response{Data: transactions}, http.StatusOK, requestId)
}

// HandleSubmitTransfer runs one transfer for the authenticated sender. The request blocks until
// the transaction is finalized or the confirmation budget runs out.
func (h *LedgerHandler) HandleSubmitTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.TransferRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.invalidRequest(w, "Could not submit transfer", err, SubmitTransfer, requestId)
		return
	}

	if subject := middleware.Subject(r.Context()); subject != req.SenderID {
		h.respond(w, Response{
			Message: "Could not submit transfer",
			Error:   "token subject does not match the sender",
		}, http.StatusForbidden, requestId)
		h.logs.Errorw("transfer sender does not match token subject",
			"sender_id", req.SenderID,
			"subject", subject,
			"handler", SubmitTransfer,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transfer request received",
		"sender_id", req.SenderID,
		"receiver_id", req.ReceiverID,
		"encoding", req.Encoding,
		"handler", SubmitTransfer,
		"request_id", requestId)

	result, err := h.ledger.SubmitTransfer(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Could not submit transfer", err, SubmitTransfer, requestId)
		return
	}

	resp := Response{Message: result.Message, Data: result}
	if result.Reason != nil {
		resp.Error = result.Reason.Error()
	}

	h.logs.Infow("transfer finished",
		"outcome", result.Outcome,
		"signature", result.Signature,
		"handler", SubmitTransfer,
		"request_id", requestId)

	h.respond(w, resp, statusForTransfer(result), requestId)
}

func (h *LedgerHandler) invalidRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// fail responds with the status mapped from err. Internal errors are hidden behind the generic message.
func (h *LedgerHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code := statusForError(err)

	resp := Response{Message: message, Error: err.Error()}
	if code == http.StatusInternalServerError {
		resp.Error = oopsErr
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *LedgerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
