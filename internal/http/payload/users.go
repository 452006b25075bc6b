package payload

import (
	"solpay/internal/core"

	"github.com/jellydator/validation"
)

type CreateUserRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PhoneNumber, validation.Required, validation.Match(phoneRegex)),
	)
}

// UpdateUserRequest is a partial update; omitted fields keep their stored value.
type UpdateUserRequest struct {
	Handle          *string  `json:"handle"`
	WalletAddresses []string `json:"wallet_addresses"`
	Currencies      []string `json:"currencies"`
}

func (u UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Handle, validation.NilOrNotEmpty, validation.Match(handleRegex)),
		validation.Field(&u.WalletAddresses, validation.Each(validation.Required, isPublicKey)),
		validation.Field(&u.Currencies, validation.Each(validation.Required, validation.Match(currencyRegex))),
	)
}

func (u UpdateUserRequest) ToPatch() core.UserPatch {
	return core.UserPatch{
		Handle:          u.Handle,
		WalletAddresses: u.WalletAddresses,
		Currencies:      u.Currencies,
	}
}
