package payload

import (
	"errors"
	"regexp"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
	handleRegex   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{2,31}$`)
	amountRegex   = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	currencyRegex = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)
)

var (
	isCanonicalID = validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if len(s) != 36 || uuid.Validate(s) != nil {
			return errors.New("must be a canonical id")
		}
		return nil
	})

	isPublicKey = validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := solanago.PublicKeyFromBase58(s); err != nil {
			return errors.New("must be a base58 encoded public key")
		}
		return nil
	})

	isSignature = validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := solanago.SignatureFromBase58(s); err != nil {
			return errors.New("must be a base58 encoded transaction signature")
		}
		return nil
	})
)
