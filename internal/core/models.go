package core

import (
	"solpay/internal/repository"
	"solpay/internal/solana"
	"time"
)

type UserRecord struct {
	ID              string    `json:"id"`
	PhoneNumber     string    `json:"phone_number"`
	Handle          *string   `json:"handle"`
	WalletAddresses []string  `json:"wallet_addresses"`
	Currencies      []string  `json:"currencies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPatch carries the onboarding fields a caller may change. Nil fields are left as they are.
type UserPatch struct {
	Handle          *string
	WalletAddresses []string
	Currencies      []string
}

type TokenMovement struct {
	Amount       string `json:"amount"`
	TokenAddress string `json:"token_address"`
}

type TransactionRecord struct {
	TransactionHash string          `json:"transaction_hash"`
	SenderID        string          `json:"sender_id"`
	ReceiverID      string          `json:"receiver_id"`
	Amount          string          `json:"amount"`
	Tokens          []TokenMovement `json:"tokens"`
	Chain           string          `json:"chain"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

// LedgerEntryMessage is the input of CreateLedgerEntry. An empty Status means pending.
type LedgerEntryMessage struct {
	TransactionHash string
	SenderID        string
	ReceiverID      string
	Amount          string
	Tokens          []TokenMovement
	Status          string
	CompletedAt     *time.Time
}

// LedgerResult reports a ledger write. Validation failures set Success to false and explain why in Message.
type LedgerResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Entry   *TransactionRecord `json:"entry,omitempty"`
	Reason  error              `json:"-"`
}

// TransferMessage is one pending transfer: a transaction partially signed by the sender
// together with the ledger fields recorded once it is finalized.
type TransferMessage struct {
	Transaction string
	Encoding    solana.Encoding
	SenderID    string
	ReceiverID  string
	Amount      string
	Tokens      []TokenMovement
}

type TransferOutcome string

const (
	// OutcomeRejected means nothing reached the chain.
	OutcomeRejected TransferOutcome = "rejected"
	// OutcomeFailed means the transaction was finalized with an on-chain error. Funds did not move.
	OutcomeFailed TransferOutcome = "failed"
	// OutcomeCompleted means the transaction was finalized without error.
	OutcomeCompleted TransferOutcome = "completed"
	// OutcomeUnknown means the transaction was broadcast but never seen finalized.
	OutcomeUnknown TransferOutcome = "unknown"
)

type TransferResult struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Outcome   TransferOutcome    `json:"outcome"`
	Signature string             `json:"signature,omitempty"`
	Logs      []string           `json:"logs,omitempty"`
	Entry     *TransactionRecord `json:"entry,omitempty"`
	Reason    error              `json:"-"`
}

// Page is one range of a listing together with the total number of matching rows.
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:              user.ID,
		PhoneNumber:     user.PhoneNumber,
		Handle:          user.Handle,
		WalletAddresses: user.WalletAddresses,
		Currencies:      user.Currencies,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func transactionToRecord(tx repository.Transaction) TransactionRecord {
	tokens := make([]TokenMovement, len(tx.Tokens))
	for i, t := range tx.Tokens {
		tokens[i] = TokenMovement{Amount: t.Amount, TokenAddress: t.TokenAddress}
	}

	return TransactionRecord{
		TransactionHash: tx.TransactionHash,
		SenderID:        tx.SenderID,
		ReceiverID:      tx.ReceiverID,
		Amount:          tx.Amount,
		Tokens:          tokens,
		Chain:           tx.Chain,
		Status:          tx.Status,
		CreatedAt:       tx.CreatedAt,
		CompletedAt:     tx.CompletedAt,
	}
}

func transactionsToRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = transactionToRecord(tx)
	}
	return records
}
