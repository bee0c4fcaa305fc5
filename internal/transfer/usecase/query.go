package usecase

import (
	"context"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/internal/transfer/repository"
)

// Detail returns the journaled outcome for one idempotency key.
func (uc *implUseCase) Detail(ctx context.Context, idempotencyKey string) (transfer.DetailOutput, error) {
	rec, err := uc.repo.GetByKey(ctx, idempotencyKey)
	if err != nil {
		return transfer.DetailOutput{}, err
	}
	if rec.ID == "" {
		return transfer.DetailOutput{}, transfer.ErrSubmissionNotFound
	}
	return transfer.DetailOutput{Record: rec}, nil
}

// List returns journaled submissions, newest first.
func (uc *implUseCase) List(ctx context.Context, input transfer.ListInput) (transfer.ListOutput, error) {
	records, total, err := uc.repo.List(ctx, repository.ListOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return transfer.ListOutput{}, err
	}

	return transfer.ListOutput{
		Records: records,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}
