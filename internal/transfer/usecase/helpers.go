package usecase

import (
	"net/http"
	"time"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/pkg/fastbound"
)

const shipmentDateLayout = "2006-01-02"

// validateSubmitInput enforces the submission invariants before any key is
// derived: a parseable shipment date, both parties, and non-empty, unique
// serial numbers. A bad serial would silently corrupt the idempotency key.
func validateSubmitInput(input transfer.SubmitInput) error {
	if input.ShipmentDate == "" {
		return transfer.ErrMissingShipmentDate
	}
	if _, err := time.Parse(shipmentDateLayout, input.ShipmentDate); err != nil {
		return transfer.ErrInvalidShipmentDate
	}
	if input.Transferor == "" || input.Transferee == "" {
		return transfer.ErrMissingParty
	}

	seen := make(map[string]struct{}, len(input.Items))
	for _, item := range input.Items {
		if item.Serial == "" {
			return transfer.ErrMissingSerial
		}
		if _, dup := seen[item.Serial]; dup {
			return transfer.ErrDuplicateSerial
		}
		seen[item.Serial] = struct{}{}
	}
	return nil
}

// buildPayload assembles the wire payload for one submission.
func buildPayload(idempotencyKey string, input transfer.SubmitInput) fastbound.TransferPayload {
	items := make([]fastbound.Item, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, fastbound.Item{
			Manufacturer:  item.Manufacturer,
			Importer:      item.Importer,
			Country:       item.Country,
			Model:         item.Model,
			Caliber:       item.Caliber,
			Type:          item.Type,
			Serial:        item.Serial,
			SKU:           item.SKU,
			MPN:           item.MPN,
			UPC:           item.UPC,
			BarrelLength:  item.BarrelLength,
			OverallLength: item.OverallLength,
			Cost:          item.Cost,
			Price:         item.Price,
			Condition:     item.Condition,
			Note:          item.Note,
		})
	}

	return fastbound.TransferPayload{
		Schema:           fastbound.SchemaTransfersPushV1,
		IdempotencyKey:   idempotencyKey,
		Transferor:       input.Transferor,
		Transferee:       input.Transferee,
		TransfereeEmails: input.TransfereeEmails,
		TrackingNumber:   input.TrackingNumber,
		PoNumber:         input.PoNumber,
		InvoiceNumber:    input.InvoiceNumber,
		AcquireType:      input.AcquireType,
		Note:             input.Note,
		Items:            items,
	}
}

// classifyStatus maps a final HTTP status to a journal status. A 409 means
// FastBound already holds this idempotency key — the transfer exists, so the
// submission counts as accepted rather than an error.
func classifyStatus(statusCode int) transfer.Status {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return transfer.StatusAccepted
	case statusCode == http.StatusConflict:
		return transfer.StatusAccepted
	case statusCode >= 400 && statusCode < 500:
		return transfer.StatusRejected
	default:
		return transfer.StatusFailed
	}
}

// retryableStatus reports whether a status is worth retrying.
func retryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= 500
}
