package service

import (
	"errors"

	"github.com/oneclicktag/oneclicktag/internal/domain"
)

// asValidationError normalizes a request validation failure so the HTTP
// layer can map it to a 400 without inspecting message text.
func asValidationError(err error) error {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	return domain.NewValidationError(err.Error())
}
