package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, input DeleteEventInput) error
}
