package transfer

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// IdempotencyKey derives the deterministic key identifying one logical
// shipment: the six scalar fields followed by the item serial numbers, each
// on its own line, hashed with SHA-256 and rendered as lowercase hex.
//
// The serial order is part of the hash input, so callers must keep a stable
// ordering when recomputing the key for the same logical transfer.
func IdempotencyKey(shipmentDate, transferor, transferee, trackingNumber, poNumber, invoiceNumber string, serials []string) string {
	parts := append([]string{
		shipmentDate,
		transferor,
		transferee,
		trackingNumber,
		poNumber,
		invoiceNumber,
	}, serials...)

	hash := sha256.Sum256([]byte(strings.Join(parts, "\n")))
	return fmt.Sprintf("%x", hash)
}

// SerialNumbers extracts the serials from items, preserving item order.
func SerialNumbers(items []Item) []string {
	serials := make([]string, 0, len(items))
	for _, item := range items {
		serials = append(serials, item.Serial)
	}
	return serials
}
