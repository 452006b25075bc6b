package handler

import (
	"context"
	"net/http"
	"solpay/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	CreateUser(ctx context.Context, phoneNumber string) (core.UserRecord, error)
	GetUser(ctx context.Context, id string) (core.UserRecord, error)
	UpdateUser(ctx context.Context, id string, patch core.UserPatch) (core.UserRecord, error)
	ListUsers(ctx context.Context, offset, limit int) (core.Page[core.UserRecord], error)
	ResolveIdentifier(ctx context.Context, identifier string) (string, error)
	CreateLedgerEntry(ctx context.Context, msg core.LedgerEntryMessage) (core.LedgerResult, error)
	GetTransaction(ctx context.Context, hash string) (core.TransactionRecord, error)
	GetTransactions(ctx context.Context, hashes []string) ([]core.TransactionRecord, error)
	ListUserTransactions(ctx context.Context, userID string, offset, limit int) (core.Page[core.TransactionRecord], error)
	UpdateTransactionStatus(ctx context.Context, hash, status string) (core.TransactionRecord, error)
	SubmitTransfer(ctx context.Context, msg core.TransferMessage) (core.TransferResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
