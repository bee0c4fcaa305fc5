package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"fastbound-gateway/internal/transfer"
	transferHTTP "fastbound-gateway/internal/transfer/delivery/http"
	"fastbound-gateway/pkg/log"
)

type fakeUC struct {
	submitOut transfer.SubmitOutput
	submitErr error
	detailOut transfer.DetailOutput
	detailErr error
	listOut   transfer.ListOutput
	listErr   error

	gotSubmit transfer.SubmitInput
}

func (f *fakeUC) Submit(_ context.Context, input transfer.SubmitInput) (transfer.SubmitOutput, error) {
	f.gotSubmit = input
	return f.submitOut, f.submitErr
}

func (f *fakeUC) Detail(_ context.Context, _ string) (transfer.DetailOutput, error) {
	return f.detailOut, f.detailErr
}

func (f *fakeUC) List(_ context.Context, _ transfer.ListInput) (transfer.ListOutput, error) {
	return f.listOut, f.listErr
}

func newRouter(uc transfer.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := transferHTTP.New(log.Init(log.ZapConfig{Level: "error"}), uc)
	transferHTTP.MapRoutes(r.Group("/api/v1"), h)
	return r
}

const submitBody = `{
	"shipment_date": "2024-01-01",
	"transferor": "1-23-456-78-9A-12345",
	"transferee": "1-23-456-78-9B-54321",
	"tracking_number": "1Z999AA10123456784",
	"po_number": "PO123456",
	"invoice_number": "INV98765",
	"acquire_type": "Purchase",
	"items": [
		{"manufacturer": "Glock", "importer": null, "country": "Austria",
		 "model": "G17", "caliber": "9mm", "type": "Pistol",
		 "serial": "ABC123456", "sku": "GLK-G17", "mpn": "G17MPN",
		 "upc": "123456789012", "barrelLength": 4.48, "overallLength": 8.03,
		 "cost": 500.00, "price": 650.00, "condition": "New", "note": ""}
	]
}`

func TestSubmitHandler(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		uc := &fakeUC{submitOut: transfer.SubmitOutput{
			Record: transfer.Record{
				ID:             "rec-1",
				IdempotencyKey: "deadbeef",
				Status:         transfer.StatusAccepted,
				HTTPStatus:     200,
			},
		}}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(submitBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"idempotency_key":"deadbeef"`) {
			t.Errorf("response missing key: %s", w.Body.String())
		}
		if uc.gotSubmit.Items[0].Serial != "ABC123456" {
			t.Errorf("input not bound: %+v", uc.gotSubmit)
		}
		if uc.gotSubmit.Items[0].Importer != nil {
			t.Errorf("null importer must bind to nil, got %v", *uc.gotSubmit.Items[0].Importer)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		r := newRouter(&fakeUC{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Validation Error", func(t *testing.T) {
		r := newRouter(&fakeUC{submitErr: transfer.ErrMissingSerial})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(submitBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "serial") {
			t.Errorf("expected domain message, got %s", w.Body.String())
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		r := newRouter(&fakeUC{submitErr: errors.New("transfer submission failed after 3 attempt(s): connection refused")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(submitBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		r := newRouter(&fakeUC{detailOut: transfer.DetailOutput{
			Record: transfer.Record{ID: "rec-1", IdempotencyKey: "deadbeef"},
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transfers/deadbeef", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		r := newRouter(&fakeUC{detailErr: transfer.ErrSubmissionNotFound})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transfers/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestListHandler(t *testing.T) {
	t.Run("Empty List Serializes As Array", func(t *testing.T) {
		r := newRouter(&fakeUC{listOut: transfer.ListOutput{Records: []transfer.Record{}, Limit: 20}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"records":[]`) {
			t.Errorf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("Bad Status Filter", func(t *testing.T) {
		r := newRouter(&fakeUC{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transfers?status=bogus", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
