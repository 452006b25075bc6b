package core

import (
	"context"
	"solpay/internal/repository"
	"solpay/internal/solana"
	"time"

	solanago "github.com/gagliardetto/solana-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetUserByPhone(ctx context.Context, phone string) (repository.User, error)
	GetUserByHandle(ctx context.Context, handle string) (repository.User, error)
	UserExists(ctx context.Context, id string) (bool, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) error
	ListUsers(ctx context.Context, offset, limit int) ([]repository.User, int64, error)
	SaveTransaction(ctx context.Context, transaction repository.Transaction) error
	TransactionExists(ctx context.Context, hash string) (bool, error)
	GetTransactionByHash(ctx context.Context, hash string) (repository.Transaction, error)
	GetTransactionsByHash(ctx context.Context, txHashes []string) ([]repository.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string, offset, limit int) ([]repository.Transaction, int64, error)
	UpdateTransactionStatus(ctx context.Context, hash, from, to string, completedAt *time.Time) error
}

//counterfeiter:generate -o fake -fake-name SolanaService . SolanaService
type SolanaService interface {
	Submit(ctx context.Context, encoded string, encoding solana.Encoding) (solanago.Signature, error)
	AwaitFinalized(ctx context.Context, signature solanago.Signature) (solana.Confirmation, error)
}
