package core

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound         error = errors.New("user not found")
	ErrUserExists           error = errors.New("user already exists")
	ErrTransactionNotFound  error = errors.New("transaction not found")
	ErrInvalidStatus        error = errors.New("invalid transaction status transition")
	ErrSenderNotFound       error = errors.New("sender user not found")
	ErrReceiverNotFound     error = errors.New("receiver user not found")
	ErrDuplicateTransaction error = errors.New("transaction already exists")
	ErrOnChainFailure       error = errors.New("transaction failed on chain")
)

// Ledger resolves accounts, drives transfers through the Solana network and records them in the ledger.
type Ledger struct {
	logs    *zap.SugaredLogger
	repo    Repository
	solana  SolanaService
	chainID string
}

// NewLedger is a constructor function for the Ledger type.
func NewLedger(logger *zap.SugaredLogger, repo Repository, solanaService SolanaService, chainID string) *Ledger {
	return &Ledger{
		logs:    logger,
		repo:    repo,
		solana:  solanaService,
		chainID: chainID,
	}
}

// CreateUser registers an account for a phone number seen for the first time.
func (l *Ledger) CreateUser(ctx context.Context, phoneNumber string) (UserRecord, error) {
	now := time.Now().UTC()
	user := repository.User{
		ID:              uuid.NewString(),
		PhoneNumber:     phoneNumber,
		WalletAddresses: []string{},
		Currencies:      []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := l.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	l.logs.Infow("user created", "user_id", user.ID)

	return userToRecord(user), nil
}

func (l *Ledger) GetUser(ctx context.Context, id string) (UserRecord, error) {
	user, err := l.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	return userToRecord(user), nil
}

// UpdateUser applies an onboarding patch and returns the account as stored afterwards.
func (l *Ledger) UpdateUser(ctx context.Context, id string, patch UserPatch) (UserRecord, error) {
	err := l.repo.UpdateUser(ctx, id, repository.UserUpdate{
		Handle:          patch.Handle,
		WalletAddresses: patch.WalletAddresses,
		Currencies:      patch.Currencies,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return UserRecord{}, ErrUserNotFound
		case errors.Is(err, repository.ErrUserExists):
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	return l.GetUser(ctx, id)
}

func (l *Ledger) ListUsers(ctx context.Context, offset, limit int) (Page[UserRecord], error) {
	users, total, err := l.repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return Page[UserRecord]{}, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = userToRecord(u)
	}

	return Page[UserRecord]{Items: records, Total: total, Offset: offset, Limit: limit}, nil
}

func (l *Ledger) GetTransaction(ctx context.Context, hash string) (TransactionRecord, error) {
	tx, err := l.repo.GetTransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionRecord{}, ErrTransactionNotFound
		}
		return TransactionRecord{}, fmt.Errorf("get transaction: %w", err)
	}

	return transactionToRecord(tx), nil
}

// GetTransactions returns the stored entries among the given hashes. Unknown hashes are skipped.
func (l *Ledger) GetTransactions(ctx context.Context, hashes []string) ([]TransactionRecord, error) {
	if len(hashes) == 0 {
		return []TransactionRecord{}, nil
	}

	transactions, err := l.repo.GetTransactionsByHash(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	l.logs.Infow("transactions fetched from db", "requested", len(hashes), "found", len(transactions))

	return transactionsToRecords(transactions), nil
}

func (l *Ledger) ListUserTransactions(ctx context.Context, userID string, offset, limit int) (Page[TransactionRecord], error) {
	exists, err := l.repo.UserExists(ctx, userID)
	if err != nil {
		return Page[TransactionRecord]{}, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return Page[TransactionRecord]{}, ErrUserNotFound
	}

	transactions, total, err := l.repo.ListUserTransactions(ctx, userID, offset, limit)
	if err != nil {
		return Page[TransactionRecord]{}, fmt.Errorf("list user transactions: %w", err)
	}

	return Page[TransactionRecord]{
		Items:  transactionsToRecords(transactions),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

// UpdateTransactionStatus settles a pending entry as completed or failed.
// Terminal entries never change again.
func (l *Ledger) UpdateTransactionStatus(ctx context.Context, hash, status string) (TransactionRecord, error) {
	if status != repository.StatusCompleted && status != repository.StatusFailed {
		return TransactionRecord{}, fmt.Errorf("%w: to %q", ErrInvalidStatus, status)
	}

	current, err := l.GetTransaction(ctx, hash)
	if err != nil {
		return TransactionRecord{}, err
	}
	if current.Status != repository.StatusPending {
		return TransactionRecord{}, fmt.Errorf("%w: %s to %s", ErrInvalidStatus, current.Status, status)
	}

	completedAt := time.Now().UTC()
	err = l.repo.UpdateTransactionStatus(ctx, hash, repository.StatusPending, status, &completedAt)
	if err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return TransactionRecord{}, fmt.Errorf("%w: %s changed concurrently", ErrInvalidStatus, hash)
		}
		return TransactionRecord{}, fmt.Errorf("update transaction status: %w", err)
	}

	l.logs.Infow("transaction status updated", "transaction_hash", hash, "status", status)

	current.Status = status
	current.CompletedAt = &completedAt
	return current, nil
}
