package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/pkg/log"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		input     calendar.CreateEventInput
		wantErr   error
		wantStart calendar.EventTime
		wantEnd   calendar.EventTime
	}{
		{
			name:    "missing title",
			input:   calendar.CreateEventInput{AllDay: true, Date: "2024-06-01"},
			wantErr: calendar.ErrMissingTitle,
		},
		{
			name:    "all-day missing date",
			input:   calendar.CreateEventInput{Title: "Standup", AllDay: true},
			wantErr: calendar.ErrMissingDate,
		},
		{
			name:    "timed missing end",
			input:   calendar.CreateEventInput{Title: "Standup", Start: "2024-06-01T09:00:00Z"},
			wantErr: calendar.ErrMissingStartEnd,
		},
		{
			name:    "neither pair",
			input:   calendar.CreateEventInput{Title: "Standup"},
			wantErr: calendar.ErrMissingStartEnd,
		},
		{
			name:    "all-day bad date",
			input:   calendar.CreateEventInput{Title: "Standup", AllDay: true, Date: "June 1st"},
			wantErr: calendar.ErrInvalidDate,
		},
		{
			name:      "all-day default end",
			input:     calendar.CreateEventInput{Title: "Standup", AllDay: true, Date: "2024-06-01"},
			wantStart: calendar.EventTime{Date: "2024-06-01"},
			wantEnd:   calendar.EventTime{Date: "2024-06-02"},
		},
		{
			name:      "all-day explicit end",
			input:     calendar.CreateEventInput{Title: "Offsite", AllDay: true, Date: "2024-06-01", EndDate: "2024-06-04"},
			wantStart: calendar.EventTime{Date: "2024-06-01"},
			wantEnd:   calendar.EventTime{Date: "2024-06-04"},
		},
		{
			name: "all-day wins over timestamps",
			input: calendar.CreateEventInput{
				Title: "Holiday", AllDay: true, Date: "2024-01-31",
				Start: "2024-01-31T09:00:00Z", End: "2024-01-31T10:00:00Z",
			},
			wantStart: calendar.EventTime{Date: "2024-01-31"},
			wantEnd:   calendar.EventTime{Date: "2024-02-01"},
		},
		{
			name:      "timed passes through",
			input:     calendar.CreateEventInput{Title: "Call", Start: "2024-06-01T09:00:00+02:00", End: "2024-06-01T09:30:00+02:00"},
			wantStart: calendar.EventTime{DateTime: "2024-06-01T09:00:00+02:00"},
			wantEnd:   calendar.EventTime{DateTime: "2024-06-01T09:30:00+02:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{event: calendar.Event{ID: "evt1", HTMLLink: "https://calendar/evt1"}}
			uc := New(repo, log.NewNop())

			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.insertOpts, "invalid input must not reach the repository")
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "evt1", out.Event.ID)
			require.Len(t, repo.insertOpts, 1)
			opt := repo.insertOpts[0]
			assert.Equal(t, tt.input.Title, opt.Summary)
			assert.Equal(t, calendar.TransparencyTransparent, opt.Transparency, "events must be transparent")
			assert.Equal(t, tt.wantStart, opt.Start)
			assert.Equal(t, tt.wantEnd, opt.End)
		})
	}
}

func TestCreateMapsOptionalFields(t *testing.T) {
	repo := &mockRepo{}
	uc := New(repo, log.NewNop())

	_, err := uc.Create(context.Background(), calendar.CreateEventInput{
		Title:       "Review",
		Description: "Q2 numbers",
		Location:    "Room 4",
		Tags:        map[string]string{"source": "crm", "dealId": "42"},
		Start:       "2024-06-01T09:00:00Z",
		End:         "2024-06-01T10:00:00Z",
	})
	require.NoError(t, err)

	require.Len(t, repo.insertOpts, 1)
	opt := repo.insertOpts[0]
	assert.Equal(t, "Q2 numbers", opt.Description)
	assert.Equal(t, "Room 4", opt.Location)
	assert.Equal(t, map[string]string{"source": "crm", "dealId": "42"}, opt.PrivateProps)
}

func TestCreateUpstreamError(t *testing.T) {
	upstream := &calendar.UpstreamError{Err: errors.New("googleapi: Error 403: forbidden")}
	repo := &mockRepo{insertErr: upstream}
	uc := New(repo, log.NewNop())

	_, err := uc.Create(context.Background(), calendar.CreateEventInput{Title: "x", AllDay: true, Date: "2024-06-01"})
	assert.ErrorIs(t, err, upstream)
}

func TestUpdate(t *testing.T) {
	t.Run("missing eventId", func(t *testing.T) {
		repo := &mockRepo{}
		_, err := New(repo, log.NewNop()).Update(context.Background(), calendar.UpdateEventInput{
			Patch: json.RawMessage(`{"summary":"New"}`),
		})
		assert.ErrorIs(t, err, calendar.ErrMissingEventID)
		assert.Empty(t, repo.patchOpts)
	})

	t.Run("patch forwarded untouched", func(t *testing.T) {
		repo := &mockRepo{event: calendar.Event{ID: "abc"}}
		out, err := New(repo, log.NewNop()).Update(context.Background(), calendar.UpdateEventInput{
			EventID: "abc",
			Patch:   json.RawMessage(`{"summary":"New", "extra":{"x":null}}`),
		})
		require.NoError(t, err)
		assert.Equal(t, "abc", out.Event.ID)
		require.Len(t, repo.patchOpts, 1)
		assert.Equal(t, `{"summary":"New", "extra":{"x":null}}`, string(repo.patchOpts[0].Patch))
		assert.Equal(t, "abc", repo.patchOpts[0].EventID)
	})

	t.Run("missing patch becomes empty object", func(t *testing.T) {
		repo := &mockRepo{}
		_, err := New(repo, log.NewNop()).Update(context.Background(), calendar.UpdateEventInput{EventID: "abc"})
		require.NoError(t, err)
		require.Len(t, repo.patchOpts, 1)
		assert.JSONEq(t, `{}`, string(repo.patchOpts[0].Patch))
	})

	t.Run("non-object patch", func(t *testing.T) {
		for _, raw := range []string{`"summary"`, `[1]`, `42`, `{"summary":`} {
			repo := &mockRepo{}
			_, err := New(repo, log.NewNop()).Update(context.Background(), calendar.UpdateEventInput{
				EventID: "abc",
				Patch:   json.RawMessage(raw),
			})
			assert.ErrorIs(t, err, calendar.ErrInvalidPatch, raw)
			assert.Empty(t, repo.patchOpts, raw)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing eventId", func(t *testing.T) {
		repo := &mockRepo{}
		err := New(repo, log.NewNop()).Delete(context.Background(), calendar.DeleteEventInput{})
		assert.ErrorIs(t, err, calendar.ErrMissingEventID)
		assert.Empty(t, repo.deletedIDs, "repository must not be called")
	})

	t.Run("deletes", func(t *testing.T) {
		repo := &mockRepo{}
		err := New(repo, log.NewNop()).Delete(context.Background(), calendar.DeleteEventInput{EventID: "abc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"abc"}, repo.deletedIDs)
	})
}
