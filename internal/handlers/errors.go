package handlers

import (
	"errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// errorIsValidation reports whether the error is one of the semantic
// validation failures raised below the HTTP layer.
func errorIsValidation(err error) bool {
	return errors.Is(err, models.ErrInvalidCategory) ||
		errors.Is(err, models.ErrInvalidHolder) ||
		errors.Is(err, models.ErrInvalidDate) ||
		errors.Is(err, models.ErrEmptyShips) ||
		errors.Is(err, models.ErrInvalidDuration)
}
