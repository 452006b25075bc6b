package core

import (
	"context"
	"errors"
	"fmt"
	"solpay/internal/repository"
	"strings"

	"github.com/google/uuid"
)

// ResolveIdentifier maps a free-form identifier to a canonical account id.
// The shape of the identifier picks exactly one lookup: canonical id, phone number or handle.
func (l *Ledger) ResolveIdentifier(ctx context.Context, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", ErrUserNotFound
	}

	var (
		user repository.User
		err  error
	)
	if id, ok := canonicalID(identifier); ok {
		user, err = l.repo.GetUserByID(ctx, id)
	} else if isPhoneNumber(identifier) {
		user, err = l.repo.GetUserByPhone(ctx, identifier)
	} else {
		user, err = l.repo.GetUserByHandle(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("resolve identifier: %w", err)
	}

	return user.ID, nil
}

// canonicalID accepts only the hyphenated 36 character form of a versioned RFC 4122 uuid
// and returns it in the lower case form ids are stored in.
func canonicalID(s string) (string, bool) {
	if len(s) != 36 {
		return "", false
	}

	id, err := uuid.Parse(s)
	if err != nil || id.Version() == 0 || id.Variant() != uuid.RFC4122 {
		return "", false
	}

	return id.String(), true
}

func isPhoneNumber(s string) bool {
	if strings.HasPrefix(s, "+") {
		return true
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
