package repository

import (
	"encoding/json"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type User struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	PhoneNumber     string    `gorm:"size:20;uniqueIndex;not null"`
	Handle          *string   `gorm:"size:32;uniqueIndex"`
	WalletAddresses []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	Currencies      []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// Transaction is one ledger entry. The hash is the base58 signature of the on-chain transaction.
type Transaction struct {
	TransactionHash string          `gorm:"primaryKey;size:88"`
	SenderID        string          `gorm:"size:36;not null;index"`
	ReceiverID      string          `gorm:"size:36;not null;index"`
	Amount          string          `gorm:"size:100;not null"` // decimal text, no float rounding
	Tokens          []TokenMovement `gorm:"serializer:json;type:jsonb;not null"`
	Chain           string          `gorm:"size:32;not null"`
	Status          string          `gorm:"size:16;not null;default:pending;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	CompletedAt     *time.Time
}

type TokenMovement struct {
	Amount       string `json:"amount"`
	TokenAddress string `json:"token_address"`
}

// UserUpdate holds the mutable user fields. Nil fields are left unchanged.
type UserUpdate struct {
	Handle          *string
	WalletAddresses []string
	Currencies      []string
}

// columns maps the set fields to column updates. Map updates bypass the gorm serializer,
// so the jsonb columns are encoded here.
func (u UserUpdate) columns() (map[string]any, error) {
	updates := map[string]any{}
	if u.Handle != nil {
		updates["handle"] = *u.Handle
	}
	if u.WalletAddresses != nil {
		encoded, err := json.Marshal(u.WalletAddresses)
		if err != nil {
			return nil, err
		}
		updates["wallet_addresses"] = string(encoded)
	}
	if u.Currencies != nil {
		encoded, err := json.Marshal(u.Currencies)
		if err != nil {
			return nil, err
		}
		updates["currencies"] = string(encoded)
	}

	return updates, nil
}
