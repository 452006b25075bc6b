package payload

import (
	"solpay/internal/core"
	"solpay/internal/repository"
	"solpay/internal/solana"

	"github.com/jellydator/validation"
)

type TokenRequest struct {
	Amount       string `json:"amount"`
	TokenAddress string `json:"token_address"`
}

func (t TokenRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&t.TokenAddress, validation.Required, isPublicKey),
	)
}

type LedgerEntryRequest struct {
	TransactionHash string         `json:"transaction_hash"`
	SenderID        string         `json:"sender_id"`
	ReceiverID      string         `json:"receiver_id"`
	Amount          string         `json:"amount"`
	Tokens          []TokenRequest `json:"tokens"`
	Status          string         `json:"status"`
}

func (l LedgerEntryRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.TransactionHash, validation.Required, isSignature),
		validation.Field(&l.SenderID, validation.Required, isCanonicalID),
		validation.Field(&l.ReceiverID, validation.Required, isCanonicalID),
		validation.Field(&l.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&l.Tokens, validation.Required),
		validation.Field(&l.Status, validation.In(repository.StatusPending, repository.StatusCompleted, repository.StatusFailed)),
	)
}

func (l LedgerEntryRequest) ToMessage() core.LedgerEntryMessage {
	return core.LedgerEntryMessage{
		TransactionHash: l.TransactionHash,
		SenderID:        l.SenderID,
		ReceiverID:      l.ReceiverID,
		Amount:          l.Amount,
		Tokens:          toTokenMovements(l.Tokens),
		Status:          l.Status,
	}
}

type TransferRequest struct {
	Transaction string         `json:"transaction"`
	Encoding    string         `json:"encoding"`
	SenderID    string         `json:"sender_id"`
	ReceiverID  string         `json:"receiver_id"`
	Amount      string         `json:"amount"`
	Tokens      []TokenRequest `json:"tokens"`
}

func (t TransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transaction, validation.Required),
		validation.Field(&t.Encoding, validation.Required,
			validation.In(string(solana.EncodingHex), string(solana.EncodingBase64), string(solana.EncodingBase58))),
		validation.Field(&t.SenderID, validation.Required, isCanonicalID),
		validation.Field(&t.ReceiverID, validation.Required, isCanonicalID,
			validation.NotIn(t.SenderID).Error("must differ from the sender")),
		validation.Field(&t.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&t.Tokens, validation.Required),
	)
}

func (t TransferRequest) ToMessage() core.TransferMessage {
	return core.TransferMessage{
		Transaction: t.Transaction,
		Encoding:    solana.Encoding(t.Encoding),
		SenderID:    t.SenderID,
		ReceiverID:  t.ReceiverID,
		Amount:      t.Amount,
		Tokens:      toTokenMovements(t.Tokens),
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (s StatusRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.Required, validation.In(repository.StatusCompleted, repository.StatusFailed)),
	)
}

func toTokenMovements(tokens []TokenRequest) []core.TokenMovement {
	movements := make([]core.TokenMovement, len(tokens))
	for i, t := range tokens {
		movements[i] = core.TokenMovement{Amount: t.Amount, TokenAddress: t.TokenAddress}
	}
	return movements
}
