package manager

import (
	"context"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/show"
)

// invalidateTimers drops the cached timer listings so the next guide or
// series load reflects the mutation immediately.
func (m Manager) invalidateTimers() {
	m.responses.Invalidate("timers:")
	m.responses.Invalidate("series_timers:")
}

// Record schedules a recording for a program; when isSeries is set a
// standing series rule is created instead.
func (m Manager) Record(ctx context.Context, programID string, isSeries bool, userID, token string) (jellyfin.ScheduleOutcome, error) {
	outcome, err := m.broadcast.ScheduleRecording(ctx, token, programID, isSeries)
	if err != nil {
		return "", err
	}
	m.invalidateTimers()
	logger.FromCtx(ctx).Infow("recording scheduled", "programID", programID, "series", isSeries, "outcome", outcome)
	return outcome, nil
}

// RecordSeriesByName finds an upcoming program for the named series and
// schedules a series recording through it. Returns ErrNotFound when the
// guide has no program for the name.
func (m Manager) RecordSeriesByName(ctx context.Context, name, userID, token string) (jellyfin.ScheduleOutcome, error) {
	programs, err := m.broadcast.Programs(ctx, token, jellyfin.ProgramsRequest{SearchTerm: name})
	if err != nil {
		return "", err
	}
	for _, p := range programs {
		candidate := p.SeriesName
		if candidate == "" {
			candidate = p.Name
		}
		if show.SameName(candidate, name) {
			return m.Record(ctx, p.ID, true, userID, token)
		}
	}
	return "", ErrNotFound
}

// CancelTimer cancels one pending recording.
func (m Manager) CancelTimer(ctx context.Context, timerID, token string) error {
	if err := m.broadcast.CancelTimer(ctx, token, timerID); err != nil {
		return err
	}
	m.invalidateTimers()
	return nil
}

// CancelSeriesTimer removes a standing series-recording rule.
func (m Manager) CancelSeriesTimer(ctx context.Context, seriesTimerID, token string) error {
	if err := m.broadcast.CancelSeriesTimer(ctx, token, seriesTimerID); err != nil {
		return err
	}
	m.invalidateTimers()
	return nil
}

// DeleteRecording removes a finished recording from the library.
func (m Manager) DeleteRecording(ctx context.Context, recordingID, token string) error {
	return m.broadcast.DeleteRecording(ctx, token, recordingID)
}
