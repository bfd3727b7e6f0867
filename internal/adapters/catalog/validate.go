package catalog

import (
	"fmt"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRecord checks a seed record against its validate tags.
func validateRecord(kind, key string, record any) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: invalid %s %q: %v", apperrors.ErrValidation, kind, key, err)
	}
	return nil
}
