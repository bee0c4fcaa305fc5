package usecase

import (
	"context"
	"time"

	"fastbound-gateway/internal/transfer"
	"fastbound-gateway/internal/transfer/repository"
	"fastbound-gateway/pkg/fastbound"
	pkgLog "fastbound-gateway/pkg/log"
)

// TransferAPI is the slice of the FastBound client the use case needs.
type TransferAPI interface {
	SubmitTransfer(ctx context.Context, payload fastbound.TransferPayload) (*fastbound.SubmitResult, error)
}

// Config bounds the retry behavior of Submit.
type Config struct {
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

type implUseCase struct {
	l    pkgLog.Logger
	api  TransferAPI
	repo repository.Repository
	cfg  Config
}

// New creates a new transfer UseCase instance.
func New(l pkgLog.Logger, api TransferAPI, repo repository.Repository, cfg Config) *implUseCase {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &implUseCase{
		l:    l,
		api:  api,
		repo: repo,
		cfg:  cfg,
	}
}

var _ transfer.UseCase = (*implUseCase)(nil)
