package core

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/repository"
	"solpay/internal/solana"
	"time"
)

const (
	msgTransferCompleted = "Transfer completed"
	msgTransferFailed    = "Transfer failed"
	msgTransferUnknown   = "Transfer outcome unknown, check the signature before retrying"
	msgLedgerNotRecorded = "Transfer completed but the ledger entry was not recorded"
)

// SubmitTransfer co-signs and broadcasts the sender's transaction, waits until it is finalized
// and writes a completed ledger entry for it. No entry is written unless the transaction
// finalized without an on-chain error. Once the transaction is broadcast, cancelling ctx no
// longer stops the transfer.
func (l *Ledger) SubmitTransfer(ctx context.Context, msg TransferMessage) (TransferResult, error) {
	start := time.Now()
	logs := l.logs.With("sender_id", msg.SenderID, "receiver_id", msg.ReceiverID)

	// accounts are checked before anything is broadcast so a finalized transfer always has a ledger entry to go to
	for _, account := range []struct {
		id      string
		message string
		reason  error
	}{
		{msg.SenderID, msgSenderNotFound, ErrSenderNotFound},
		{msg.ReceiverID, msgReceiverNotFound, ErrReceiverNotFound},
	} {
		exists, err := l.repo.UserExists(ctx, account.id)
		if err != nil {
			return TransferResult{}, fmt.Errorf("check account: %w", err)
		}
		if !exists {
			return l.finish(start, TransferResult{
				Message: account.message,
				Outcome: OutcomeRejected,
				Reason:  account.reason,
			}), nil
		}
	}

	signature, err := l.solana.Submit(ctx, msg.Transaction, msg.Encoding)
	if err != nil {
		result, ok := rejection(err)
		if !ok {
			return TransferResult{}, fmt.Errorf("submit transaction: %w", err)
		}
		logs.Infow("transfer rejected", "error", err)
		return l.finish(start, result), nil
	}

	logs = logs.With("signature", signature.String())

	// the transaction is on its way; a caller going away must not stop the poll or the ledger write.
	// The poll budget still bounds the rest of the transfer.
	ctx = context.WithoutCancel(ctx)

	confirmation, err := l.solana.AwaitFinalized(ctx, signature)
	if err != nil {
		if !errors.Is(err, solana.ErrConfirmationTimeout) {
			return TransferResult{}, fmt.Errorf("await finalization: %w", err)
		}
		logs.Warnw("transfer outcome unknown", "error", err)
		return l.finish(start, TransferResult{
			Message:   msgTransferUnknown,
			Outcome:   OutcomeUnknown,
			Signature: signature.String(),
			Reason:    err,
		}), nil
	}

	if confirmation.Failed() {
		logs.Infow("transfer failed on chain", "slot", confirmation.Slot, "error", confirmation.Err)
		return l.finish(start, TransferResult{
			Message:   msgTransferFailed,
			Outcome:   OutcomeFailed,
			Signature: signature.String(),
			Reason:    fmt.Errorf("%w: %v", ErrOnChainFailure, confirmation.Err),
		}), nil
	}

	completedAt := time.Now().UTC()
	ledger, err := l.CreateLedgerEntry(ctx, LedgerEntryMessage{
		TransactionHash: signature.String(),
		SenderID:        msg.SenderID,
		ReceiverID:      msg.ReceiverID,
		Amount:          msg.Amount,
		Tokens:          msg.Tokens,
		Status:          repository.StatusCompleted,
		CompletedAt:     &completedAt,
	})

	result := TransferResult{
		Success:   true,
		Message:   msgTransferCompleted,
		Outcome:   OutcomeCompleted,
		Signature: signature.String(),
	}

	switch {
	case err != nil:
		logs.Errorw("ledger write failed for finalized transfer", "slot", confirmation.Slot, "error", err)
		result.Message = msgLedgerNotRecorded
		result.Reason = err
	case !ledger.Success:
		logs.Errorw("ledger entry rejected for finalized transfer", "slot", confirmation.Slot, "reason", ledger.Message)
		result.Message = ledger.Message
		result.Reason = ledger.Reason
	default:
		logs.Infow("transfer completed", "slot", confirmation.Slot)
		result.Entry = ledger.Entry
	}

	return l.finish(start, result), nil
}

func (l *Ledger) finish(start time.Time, result TransferResult) TransferResult {
	transfersTotal.WithLabelValues(string(result.Outcome)).Inc()
	transferDuration.WithLabelValues(string(result.Outcome)).Observe(time.Since(start).Seconds())
	return result
}

// rejection turns a submit error that means the transaction never reached the chain
// into a result. Anything else is an infrastructure failure.
func rejection(err error) (TransferResult, bool) {
	result := TransferResult{
		Outcome: OutcomeRejected,
		Reason:  err,
	}

	var broadcastErr *solana.BroadcastError
	switch {
	case errors.Is(err, solana.ErrDecode):
		result.Message = "Invalid transaction encoding"
	case errors.Is(err, solana.ErrFormat):
		result.Message = "Unrecognized transaction format"
	case errors.Is(err, solana.ErrFeePayerMismatch):
		result.Message = "Transaction fee payer does not match the server fee payer"
	case errors.As(err, &broadcastErr):
		result.Message = "Transaction rejected by the network"
		result.Logs = broadcastErr.Logs
	default:
		return TransferResult{}, false
	}

	return result, true
}
