package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultPollAttempts = 120
)

// Service co-signs client transactions as the fee payer, broadcasts them and waits for finalization.
type Service struct {
	logs         *zap.SugaredLogger
	client       RPCClient
	feePayer     solanago.PrivateKey
	pollInterval time.Duration
	pollAttempts int
}

// NewService is a constructor function for the Service type. Non-positive poll settings fall back to the defaults.
func NewService(logger *zap.SugaredLogger, client RPCClient, feePayer solanago.PrivateKey, pollInterval time.Duration, pollAttempts int) *Service {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if pollAttempts <= 0 {
		pollAttempts = DefaultPollAttempts
	}

	return &Service{
		logs:         logger,
		client:       client,
		feePayer:     feePayer,
		pollInterval: pollInterval,
		pollAttempts: pollAttempts,
	}
}

// FeePayer returns the public key every submitted transaction must name as its fee payer.
func (s *Service) FeePayer() solanago.PublicKey {
	return s.feePayer.PublicKey()
}

// Submit decodes a partially signed transaction, adds the fee payer signature and broadcasts it.
// The returned signature identifies the transaction on chain; it does not imply finalization.
func (s *Service) Submit(ctx context.Context, encoded string, encoding Encoding) (solanago.Signature, error) {
	raw, err := DecodeTransaction(encoded, encoding)
	if err != nil {
		return solanago.Signature{}, err
	}

	tx, err := parseTransaction(raw)
	if err != nil {
		return solanago.Signature{}, err
	}

	feePayer := tx.Message.AccountKeys[0]
	if !feePayer.Equals(s.FeePayer()) {
		return solanago.Signature{}, fmt.Errorf("%w: got %s", ErrFeePayerMismatch, feePayer)
	}

	// a versioned message is signed as is; recompiling it would reorder accounts and void the client signatures
	if !tx.Message.IsVersioned() {
		latest, err := s.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
		if err != nil {
			return solanago.Signature{}, fmt.Errorf("get latest blockhash: %w", err)
		}
		if latest == nil || latest.Value == nil {
			return solanago.Signature{}, errors.New("get latest blockhash: empty response")
		}
		tx.Message.RecentBlockhash = latest.Value.Blockhash
	}

	if err := s.coSign(tx); err != nil {
		return solanago.Signature{}, err
	}

	signed, err := tx.MarshalBinary()
	if err != nil {
		return solanago.Signature{}, fmt.Errorf("serialize transaction: %w", err)
	}

	signature, err := s.client.SendRawTransactionWithOpts(ctx, signed, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return solanago.Signature{}, &BroadcastError{Err: err, Logs: simulationLogs(rpcErr)}
		}
		return solanago.Signature{}, fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transaction broadcast",
		"signature", signature.String(),
		"versioned", tx.Message.IsVersioned())

	return signature, nil
}

// parseTransaction reads a wire transaction. A message whose first byte carries the version
// prefix is read as a versioned message, anything else as a legacy message.
func parseTransaction(raw []byte) (*solanago.Transaction, error) {
	decoder := bin.NewBinDecoder(raw)
	tx, err := solanago.TransactionFromDecoder(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	if decoder.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrFormat, decoder.Remaining())
	}

	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Message.AccountKeys) == 0 || required == 0 {
		return nil, fmt.Errorf("%w: transaction has no fee payer", ErrFormat)
	}

	if len(tx.Signatures) != 0 && len(tx.Signatures) != required {
		return nil, fmt.Errorf("%w: %d signatures for %d required signers", ErrFormat, len(tx.Signatures), required)
	}

	return tx, nil
}

// coSign writes the fee payer signature into slot 0 and leaves every other slot untouched.
func (s *Service) coSign(tx *solanago.Transaction) error {
	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return fmt.Errorf("serialize message: %w", err)
	}

	signature, err := s.feePayer.Sign(message)
	if err != nil {
		return fmt.Errorf("sign message: %w", err)
	}

	if len(tx.Signatures) == 0 {
		tx.Signatures = make([]solanago.Signature, tx.Message.Header.NumRequiredSignatures)
	}
	tx.Signatures[0] = signature

	return nil
}

func simulationLogs(rpcErr *jsonrpc.RPCError) []string {
	data, ok := rpcErr.Data.(map[string]interface{})
	if !ok {
		return nil
	}

	rawLogs, ok := data["logs"].([]interface{})
	if !ok {
		return nil
	}

	logs := make([]string, 0, len(rawLogs))
	for _, line := range rawLogs {
		if s, ok := line.(string); ok {
			logs = append(logs, s)
		}
	}
	return logs
}
