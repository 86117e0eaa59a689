package handlers

import (
	"github.com/lawfirm/site-api/internal/validation"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

func malformedBody() error {
	return apperrors.NewValidationError("Validation failed", validation.MalformedBody())
}
