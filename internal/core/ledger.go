package core

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/repository"
	"time"
)

const (
	msgSenderNotFound    = "Sender user not found"
	msgReceiverNotFound  = "Receiver user not found"
	msgDuplicate         = "Transaction already exists"
	msgInvalidStatus     = "Invalid transaction status"
	msgTransactionStored = "Transaction recorded"
)

// CreateLedgerEntry records one transaction between two existing accounts.
// Missing accounts and already recorded hashes are reported in the result, not as errors.
func (l *Ledger) CreateLedgerEntry(ctx context.Context, msg LedgerEntryMessage) (LedgerResult, error) {
	exists, err := l.repo.UserExists(ctx, msg.SenderID)
	if err != nil {
		return LedgerResult{}, fmt.Errorf("check sender: %w", err)
	}
	if !exists {
		return rejectEntry(msgSenderNotFound, ErrSenderNotFound), nil
	}

	exists, err = l.repo.UserExists(ctx, msg.ReceiverID)
	if err != nil {
		return LedgerResult{}, fmt.Errorf("check receiver: %w", err)
	}
	if !exists {
		return rejectEntry(msgReceiverNotFound, ErrReceiverNotFound), nil
	}

	// early exit only; the unique constraint on the hash decides concurrent writers
	exists, err = l.repo.TransactionExists(ctx, msg.TransactionHash)
	if err != nil {
		return LedgerResult{}, fmt.Errorf("check transaction: %w", err)
	}
	if exists {
		return rejectEntry(msgDuplicate, ErrDuplicateTransaction), nil
	}

	status := msg.Status
	if status == "" {
		status = repository.StatusPending
	}

	now := time.Now().UTC()
	completedAt := msg.CompletedAt
	switch status {
	case repository.StatusPending:
		completedAt = nil
	case repository.StatusCompleted, repository.StatusFailed:
		if completedAt == nil {
			completedAt = &now
		}
	default:
		return rejectEntry(msgInvalidStatus, fmt.Errorf("%w: %q", ErrInvalidStatus, status)), nil
	}

	tokens := make([]repository.TokenMovement, len(msg.Tokens))
	for i, t := range msg.Tokens {
		tokens[i] = repository.TokenMovement{Amount: t.Amount, TokenAddress: t.TokenAddress}
	}

	tx := repository.Transaction{
		TransactionHash: msg.TransactionHash,
		SenderID:        msg.SenderID,
		ReceiverID:      msg.ReceiverID,
		Amount:          msg.Amount,
		Tokens:          tokens,
		Chain:           l.chainID,
		Status:          status,
		CreatedAt:       now,
		CompletedAt:     completedAt,
	}

	if err := l.repo.SaveTransaction(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return rejectEntry(msgDuplicate, ErrDuplicateTransaction), nil
		}
		ledgerWritesTotal.WithLabelValues("error").Inc()
		return LedgerResult{}, fmt.Errorf("save transaction: %w", err)
	}

	ledgerWritesTotal.WithLabelValues("created").Inc()
	l.logs.Infow("ledger entry created",
		"transaction_hash", tx.TransactionHash,
		"status", tx.Status)

	record := transactionToRecord(tx)
	return LedgerResult{
		Success: true,
		Message: msgTransactionStored,
		Entry:   &record,
	}, nil
}

func rejectEntry(message string, reason error) LedgerResult {
	ledgerWritesTotal.WithLabelValues("rejected").Inc()
	return LedgerResult{
		Success: false,
		Message: message,
		Reason:  reason,
	}
}
