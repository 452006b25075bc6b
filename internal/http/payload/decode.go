package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// maxBodyBytes bounds request bodies; encoded transactions are at most a few kilobytes.
const maxBodyBytes = 1 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and validates it when object is validatable.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	defer r.Body.Close()

	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
