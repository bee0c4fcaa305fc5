package transfer

import "context"

// UseCase defines the business logic interface for the transfer domain.
type UseCase interface {
	// Submit derives the idempotency key, pushes the transfer to FastBound
	// with bounded retries, and journals the outcome. A key the journal
	// already holds as accepted is replayed without a network call.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// Detail returns the journaled outcome for one idempotency key.
	Detail(ctx context.Context, idempotencyKey string) (DetailOutput, error)

	// List returns journaled submissions, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
