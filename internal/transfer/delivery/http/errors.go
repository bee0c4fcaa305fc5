package http

import (
	"errors"
	"net/http"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/internal/transfer/repository"
	pkgErrors "fastbound-gateway/pkg/errors"
	"fastbound-gateway/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transfer.ErrSubmissionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, transfer.ErrSubmissionNotFound.Error())
	case isValidationError(err):
		return err // rendered as 400 with the domain message
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

// mapSubmitError additionally turns upstream delivery failures into 502 —
// the gateway did its part but FastBound could not be reached.
func (h *handler) mapSubmitError(err error) error {
	switch {
	case isValidationError(err):
		return err
	case errors.Is(err, repository.ErrFailedToGet), errors.Is(err, repository.ErrFailedToSave):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "transfer could not be delivered to FastBound")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, transfer.ErrMissingShipmentDate) ||
		errors.Is(err, transfer.ErrInvalidShipmentDate) ||
		errors.Is(err, transfer.ErrMissingParty) ||
		errors.Is(err, transfer.ErrMissingSerial) ||
		errors.Is(err, transfer.ErrDuplicateSerial)
}
