package usecase

import (
	"webhook-receiver/internal/webhook/repository"
	pkgLog "webhook-receiver/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Registry
}

// New creates a new webhook UseCase instance.
func New(l pkgLog.Logger, repo repository.Registry) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
