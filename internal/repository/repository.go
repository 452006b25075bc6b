package repository

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/db"
	"time"
)

var (
	ErrUserNotFound         error = errors.New("user not found")
	ErrUserExists           error = errors.New("user already exists")
	ErrTransactionNotFound  error = errors.New("transaction not found")
	ErrDuplicateTransaction error = errors.New("transaction already exists")
	ErrStaleStatus          error = errors.New("transaction status changed concurrently")
)

type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *LedgerRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *LedgerRepository) GetUserByPhone(ctx context.Context, phone string) (User, error) {
	return r.getUserBy(ctx, "phone_number", phone)
}

func (r *LedgerRepository) GetUserByHandle(ctx context.Context, handle string) (User, error) {
	return r.getUserBy(ctx, "handle", handle)
}

func (r *LedgerRepository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *LedgerRepository) UserExists(ctx context.Context, id string) (bool, error) {
	exists, err := r.db.Exists(ctx, &User{}, "id", id)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

// UpdateUser applies the set fields of update to the user with the given id.
func (r *LedgerRepository) UpdateUser(ctx context.Context, id string, update UserUpdate) error {
	updates, err := update.columns()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if len(updates) == 0 {
		return nil
	}

	rows, err := r.db.UpdateWhere(ctx, &User{}, map[string]any{"id": id}, updates)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *LedgerRepository) ListUsers(ctx context.Context, offset, limit int) ([]User, int64, error) {
	users := []User{}
	total, err := r.db.Page(ctx, db.PageQuery{
		Order:  "created_at, id",
		Offset: offset,
		Limit:  limit,
	}, &users)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

// SaveTransaction inserts a ledger entry. The unique constraint on the hash decides duplicates,
// so two concurrent writers of the same hash yield exactly one row and one ErrDuplicateTransaction.
func (r *LedgerRepository) SaveTransaction(ctx context.Context, transaction Transaction) error {
	err := r.db.Insert(ctx, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("save transaction: %w", err)
	}

	return nil
}

func (r *LedgerRepository) TransactionExists(ctx context.Context, hash string) (bool, error) {
	exists, err := r.db.Exists(ctx, &Transaction{}, "transaction_hash", hash)
	if err != nil {
		return false, fmt.Errorf("check transaction exists: %w", err)
	}

	return exists, nil
}

func (r *LedgerRepository) GetTransactionByHash(ctx context.Context, hash string) (Transaction, error) {
	var transaction Transaction

	err := r.db.GetOneBy(ctx, "transaction_hash", hash, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by hash: %w", err)
	}

	return transaction, nil
}

func (r *LedgerRepository) GetTransactionsByHash(ctx context.Context, txHashes []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "transaction_hash", txHashes, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by hash: %w", err)
	}

	return transactions, nil
}

// ListUserTransactions pages through the entries where the user is either the sender or the receiver, newest first.
func (r *LedgerRepository) ListUserTransactions(ctx context.Context, userID string, offset, limit int) ([]Transaction, int64, error) {
	transactions := []Transaction{}
	total, err := r.db.Page(ctx, db.PageQuery{
		Where:  "sender_id = ? OR receiver_id = ?",
		Args:   []any{userID, userID},
		Order:  "created_at DESC, transaction_hash",
		Offset: offset,
		Limit:  limit,
	}, &transactions)
	if err != nil {
		return nil, 0, fmt.Errorf("list user transactions: %w", err)
	}

	return transactions, total, nil
}

// UpdateTransactionStatus moves an entry from one status to another. The current status is part of the
// update condition, so a concurrent transition makes this call fail with ErrStaleStatus instead of overwriting it.
func (r *LedgerRepository) UpdateTransactionStatus(ctx context.Context, hash, from, to string, completedAt *time.Time) error {
	rows, err := r.db.UpdateWhere(ctx, &Transaction{},
		map[string]any{"transaction_hash": hash, "status": from},
		map[string]any{"status": to, "completed_at": completedAt})
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}

	if rows == 0 {
		return ErrStaleStatus
	}

	return nil
}
