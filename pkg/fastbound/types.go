package fastbound

// SchemaTransfersPushV1 identifies the transfers-push payload version.
const SchemaTransfersPushV1 = "https://schemas.fastbound.org/transfers-push-v1.json"

// Item is one transferred unit in a transfers-push payload.
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

// TransferPayload is the transfers-push wire shape. Field naming is the
// FastBound contract: snake_case at the top level and camelCase inside items.
type TransferPayload struct {
	Schema           string   `json:"$schema"`
	IdempotencyKey   string   `json:"idempotency_key"`
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

// SubmitResult is the raw outcome of a transfers-push call. Non-2xx statuses
// are reported here, not turned into errors; classification is the caller's
// concern.
type SubmitResult struct {
	StatusCode int
	Body       string
}
