package http

import (
	"fmt"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/pkg/response"
)

// --- Requests ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error {
	switch r.Status {
	case "", string(transfer.StatusAccepted), string(transfer.StatusRejected), string(transfer.StatusFailed):
		return nil
	}
	return fmt.Errorf("unknown status %q", r.Status)
}

func (r listReq) toInput() transfer.ListInput {
	return transfer.ListInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Responses ---

type recordResp struct {
	ID             string            `json:"id"`
	IdempotencyKey string            `json:"idempotency_key"`
	Transferor     string            `json:"transferor"`
	Transferee     string            `json:"transferee"`
	Status         string            `json:"status"`
	HTTPStatus     int               `json:"http_status"`
	ResponseBody   string            `json:"response_body"`
	Attempts       int               `json:"attempts"`
	CreatedAt      response.DateTime `json:"created_at"`
	UpdatedAt      response.DateTime `json:"updated_at"`
}

type submitResp struct {
	Record   recordResp `json:"record"`
	Replayed bool       `json:"replayed"`
}

type detailResp struct {
	Record recordResp `json:"record"`
}

type listResp struct {
	Records []recordResp `json:"records"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func newRecordResp(rec transfer.Record) recordResp {
	return recordResp{
		ID:             rec.ID,
		IdempotencyKey: rec.IdempotencyKey,
		Transferor:     rec.Transferor,
		Transferee:     rec.Transferee,
		Status:         string(rec.Status),
		HTTPStatus:     rec.HTTPStatus,
		ResponseBody:   rec.ResponseBody,
		Attempts:       rec.Attempts,
		CreatedAt:      response.DateTime(rec.CreatedAt),
		UpdatedAt:      response.DateTime(rec.UpdatedAt),
	}
}

func (h *handler) newSubmitResp(output transfer.SubmitOutput) submitResp {
	return submitResp{
		Record:   newRecordResp(output.Record),
		Replayed: output.Replayed,
	}
}

func (h *handler) newDetailResp(output transfer.DetailOutput) detailResp {
	return detailResp{Record: newRecordResp(output.Record)}
}

func (h *handler) newListResp(output transfer.ListOutput) listResp {
	records := make([]recordResp, 0, len(output.Records))
	for _, rec := range output.Records {
		records = append(records, newRecordResp(rec))
	}
	return listResp{
		Records: records,
		Total:   output.Total,
		Limit:   output.Limit,
		Offset:  output.Offset,
	}
}
