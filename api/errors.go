package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/halstrom/app-registry/models"
	"github.com/halstrom/app-registry/service"
)

// Stable error catalog. Codes are contract: clients branch on them, never on
// message wording.
const (
	codeNotFound      = "001"
	codeAlreadyExist  = "002"
	codeValidation    = "003"
	codeInternalError = "004"
)

// Classify translates any failure into the ErrorDTO returned to clients.
// Each domain failure carries a distinct type and maps to exactly one row;
// everything else falls through to the generic internal failure, which is
// logged in full server-side and never leaks detail into the body.
func Classify(err error) models.ErrorDTO {
	now := time.Now()

	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return models.ErrorDTO{
			Code:       codeNotFound,
			Message:    "Resource not found",
			Time:       now,
			HTTPStatus: http.StatusNotFound,
		}
	}

	var ae *service.AlreadyExistsError
	if errors.As(err, &ae) {
		return models.ErrorDTO{
			Code:       codeAlreadyExist,
			Message:    "Resource already exist",
			Time:       now,
			HTTPStatus: http.StatusConflict,
		}
	}

	var ve models.ValidationErrors
	if errors.As(err, &ve) {
		return models.ErrorDTO{
			Code:       codeValidation,
			Message:    "Input validation failed",
			Time:       now,
			Details:    ve.Details(),
			HTTPStatus: http.StatusBadRequest,
		}
	}

	slog.Error("unclassified failure", "error", err)
	return models.ErrorDTO{
		Code:       codeInternalError,
		Message:    "Internal server failure",
		Time:       now,
		HTTPStatus: http.StatusInternalServerError,
	}
}
