package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/pkg/fastbound"
)

// Submit derives the idempotency key, pushes the transfer to FastBound with
// bounded retries, and journals the outcome.
func (uc *implUseCase) Submit(ctx context.Context, input transfer.SubmitInput) (transfer.SubmitOutput, error) {
	if err := validateSubmitInput(input); err != nil {
		return transfer.SubmitOutput{}, err
	}

	key := transfer.IdempotencyKey(
		input.ShipmentDate,
		input.Transferor,
		input.Transferee,
		input.TrackingNumber,
		input.PoNumber,
		input.InvoiceNumber,
		transfer.SerialNumbers(input.Items),
	)

	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return transfer.SubmitOutput{}, err
	}
	if existing.ID != "" && existing.Status == transfer.StatusAccepted {
		uc.l.Infof(ctx, "transfer %s already accepted, replaying journaled outcome", key)
		return transfer.SubmitOutput{Record: existing, Replayed: true}, nil
	}

	payload := buildPayload(key, input)

	res, attempts, submitErr := uc.submitWithRetry(ctx, payload)

	rec := transfer.Record{
		ID:             uuid.NewString(),
		IdempotencyKey: key,
		Transferor:     input.Transferor,
		Transferee:     input.Transferee,
		Attempts:       attempts,
	}
	if existing.ID != "" {
		rec.ID = existing.ID
	}

	if submitErr != nil {
		rec.Status = transfer.StatusFailed
		if _, saveErr := uc.repo.Save(ctx, rec); saveErr != nil {
			uc.l.Errorf(ctx, "failed to journal failed submission %s: %v", key, saveErr)
		}
		return transfer.SubmitOutput{}, fmt.Errorf("transfer submission failed after %d attempt(s): %w", attempts, submitErr)
	}

	rec.HTTPStatus = res.StatusCode
	rec.ResponseBody = res.Body
	rec.Status = classifyStatus(res.StatusCode)

	saved, err := uc.repo.Save(ctx, rec)
	if err != nil {
		return transfer.SubmitOutput{}, err
	}

	uc.l.Infof(ctx, "transfer %s submitted: status=%s http=%d attempts=%d",
		key, saved.Status, saved.HTTPStatus, saved.Attempts)

	return transfer.SubmitOutput{Record: saved}, nil
}

// submitWithRetry pushes the payload up to cfg.RetryAttempts times, backing
// off linearly between attempts and respecting the caller's context plus an
// optional total timeout. Transport failures and retryable statuses (408,
// 429, 5xx) are retried; every other completed exchange is final.
func (uc *implUseCase) submitWithRetry(ctx context.Context, payload fastbound.TransferPayload) (*fastbound.SubmitResult, int, error) {
	if uc.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.MaxTotalTimeout)
		defer cancel()
	}

	attempts := 0
	var lastRes *fastbound.SubmitResult
	var lastErr error

	for attempt := 0; attempt < uc.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * uc.cfg.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				if lastRes != nil {
					return lastRes, attempts, nil
				}
				return nil, attempts, ctx.Err()
			}
		}

		attempts++
		res, err := uc.api.SubmitTransfer(ctx, payload)
		if err != nil {
			lastRes = nil
			lastErr = err
			uc.l.Warnf(ctx, "transfer push attempt %d failed: %v", attempts, err)
			continue
		}
		if !retryableStatus(res.StatusCode) {
			return res, attempts, nil
		}

		lastRes = res
		lastErr = nil
		uc.l.Warnf(ctx, "transfer push attempt %d got retryable status %d", attempts, res.StatusCode)
	}

	if lastRes != nil {
		return lastRes, attempts, nil
	}
	return nil, attempts, lastErr
}
