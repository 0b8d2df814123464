package usecase

import (
	"context"

	"calendar-webhook/internal/calendar"
	repo "calendar-webhook/internal/calendar/repository"
)

// Create validates input, maps it to an event resource and inserts it.
// Created events never block availability.
func (uc *implUseCase) Create(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	if input.Title == "" {
		return calendar.CreateEventOutput{}, calendar.ErrMissingTitle
	}

	start, end, err := uc.eventTimes(input)
	if err != nil {
		return calendar.CreateEventOutput{}, err
	}

	event, err := uc.repo.InsertEvent(ctx, repo.InsertEventOptions{
		Summary:      input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Transparency: calendar.TransparencyTransparent,
		PrivateProps: input.Tags,
		Start:        start,
		End:          end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertEvent: %v", err)
		return calendar.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: created event %s", event.ID)
	return calendar.CreateEventOutput{Event: event}, nil
}

// eventTimes picks the all-day date pair or the timestamp pair.
func (uc *implUseCase) eventTimes(input calendar.CreateEventInput) (calendar.EventTime, calendar.EventTime, error) {
	if input.AllDay {
		if input.Date == "" {
			return calendar.EventTime{}, calendar.EventTime{}, calendar.ErrMissingDate
		}

		endDate := input.EndDate
		if endDate == "" {
			next, err := nextDate(input.Date)
			if err != nil {
				return calendar.EventTime{}, calendar.EventTime{}, err
			}
			endDate = next
		}
		return calendar.EventTime{Date: input.Date}, calendar.EventTime{Date: endDate}, nil
	}

	if input.Start == "" || input.End == "" {
		return calendar.EventTime{}, calendar.EventTime{}, calendar.ErrMissingStartEnd
	}
	return calendar.EventTime{DateTime: input.Start}, calendar.EventTime{DateTime: input.End}, nil
}
