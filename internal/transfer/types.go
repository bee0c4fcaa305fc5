package transfer

import "time"

// --- Transfer Domain Model ---

// Item is one transferred unit. Serial is the unique identifier within a
// submission and feeds the idempotency key.
type Item struct {
	Manufacturer  string  `json:"manufacturer"`
	Importer      *string `json:"importer"`
	Country       string  `json:"country"`
	Model         string  `json:"model"`
	Caliber       string  `json:"caliber"`
	Type          string  `json:"type"`
	Serial        string  `json:"serial"`
	SKU           string  `json:"sku"`
	MPN           string  `json:"mpn"`
	UPC           string  `json:"upc"`
	BarrelLength  float64 `json:"barrelLength"`
	OverallLength float64 `json:"overallLength"`
	Cost          float64 `json:"cost"`
	Price         float64 `json:"price"`
	Condition     string  `json:"condition"`
	Note          string  `json:"note"`
}

// Status classifies the recorded outcome of a submission.
type Status string

const (
	// StatusAccepted — FastBound took the transfer (or already had it).
	StatusAccepted Status = "accepted"
	// StatusRejected — FastBound refused the payload; retrying won't help.
	StatusRejected Status = "rejected"
	// StatusFailed — the exchange never completed cleanly (transport failure
	// or server errors through all retries).
	StatusFailed Status = "failed"
)

// Record is one journaled submission outcome, keyed by idempotency key.
type Record struct {
	ID             string    `json:"id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Transferor     string    `json:"transferor"`
	Transferee     string    `json:"transferee"`
	Status         Status    `json:"status"`
	HTTPStatus     int       `json:"http_status"`
	ResponseBody   string    `json:"response_body"`
	Attempts       int       `json:"attempts"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// --- UseCase Inputs ---

// SubmitInput is a caller-supplied transfer submission. The shape doubles as
// the external JSON document accepted by the HTTP API and the CLI.
type SubmitInput struct {
	ShipmentDate     string   `json:"shipment_date"`
	Transferor       string   `json:"transferor"`
	Transferee       string   `json:"transferee"`
	TransfereeEmails []string `json:"transferee_emails"`
	TrackingNumber   string   `json:"tracking_number"`
	PoNumber         string   `json:"po_number"`
	InvoiceNumber    string   `json:"invoice_number"`
	AcquireType      string   `json:"acquire_type"`
	Note             string   `json:"note"`
	Items            []Item   `json:"items"`
}

type ListInput struct {
	Status string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Record Record
	// Replayed is true when the journal already held an accepted outcome for
	// this idempotency key and no network call was made.
	Replayed bool
}

type DetailOutput struct {
	Record Record
}

type ListOutput struct {
	Records []Record
	Total   int
	Limit   int
	Offset  int
}
