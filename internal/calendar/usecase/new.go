package usecase

import (
	"calendar-webhook/internal/calendar"
	"calendar-webhook/internal/calendar/repository"
	"calendar-webhook/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
