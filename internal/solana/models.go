package solana

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
)

var (
	ErrDecode              = errors.New("malformed transaction encoding")
	ErrFormat              = errors.New("unrecognized transaction format")
	ErrFeePayerMismatch    = errors.New("transaction fee payer does not match the server fee payer")
	ErrBroadcast           = errors.New("transaction rejected by the network")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
)

type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
	EncodingBase58 Encoding = "base58"
)

// BroadcastError is returned when the RPC node refuses a transaction during submission.
// Logs holds the preflight simulation logs when the node reported them.
type BroadcastError struct {
	Err  error
	Logs []string
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBroadcast, e.Err)
}

func (e *BroadcastError) Unwrap() []error {
	return []error{ErrBroadcast, e.Err}
}

// Confirmation is the terminal status of a finalized transaction.
type Confirmation struct {
	Signature solanago.Signature
	Slot      uint64
	Err       any
}

// Failed reports whether the transaction was finalized with an on-chain error.
func (c Confirmation) Failed() bool {
	return c.Err != nil
}
