package payload

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type PageRequest struct {
	Offset int
	Limit  int
}

// ParsePageRequest reads offset and limit from the query string, defaulting missing values.
func ParsePageRequest(values url.Values) (PageRequest, error) {
	page := PageRequest{Offset: 0, Limit: DefaultLimit}

	var err error
	if v := values.Get("offset"); v != "" {
		if page.Offset, err = strconv.Atoi(v); err != nil {
			return PageRequest{}, fmt.Errorf("parse offset: %w", err)
		}
	}
	if v := values.Get("limit"); v != "" {
		if page.Limit, err = strconv.Atoi(v); err != nil {
			return PageRequest{}, fmt.Errorf("parse limit: %w", err)
		}
	}

	return page, page.Validate()
}

func (p PageRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Required, validation.Min(1), validation.Max(MaxLimit)),
	)
}
