package manager

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/show"
)

// GuideProgram is a guide entry annotated with its scheduling state.
type GuideProgram struct {
	jellyfin.Program
	IsRecording       bool   `json:"isRecording"`
	RecordingTimerID  string `json:"timerId,omitempty"`
	IsSeriesRecording bool   `json:"isSeriesRecording"`
	SeriesRecordingID string `json:"seriesTimerId,omitempty"`
}

// GuideChannel is one channel with its programs in air order.
type GuideChannel struct {
	jellyfin.Channel
	Programs []GuideProgram `json:"programs"`
}

// GuideResponse is the channel/time grid the user schedules from.
type GuideResponse struct {
	Channels []GuideChannel `json:"channels"`
	// MaxDate is the latest program end in the grid, so a caller knows
	// how far the fetched horizon reaches.
	MaxDate string `json:"maxDate,omitempty"`
}

// guideWindow computes the program fetch window: the current quarter hour
// minus one hour through twelve hours out. Rounding keeps the cache key
// stable across nearby page loads.
func (m Manager) guideWindow() (minEnd, maxStart string) {
	rounded := m.now().UTC().Truncate(15 * time.Minute)
	return rounded.Add(-time.Hour).Format(isoMillis), rounded.Add(12 * time.Hour).Format(isoMillis)
}

// Guide assembles the reconciled guide grid: channels joined to their
// programs, each program annotated with whether a timer or series-timer
// already covers it.
func (m Manager) Guide(ctx context.Context, userID, token string) (*GuideResponse, error) {
	log := logger.FromCtx(ctx)

	minEnd, maxStart := m.guideWindow()

	var (
		channels     []jellyfin.Channel
		programs     []jellyfin.Program
		timers       []jellyfin.Timer
		seriesTimers []jellyfin.SeriesTimer
		errs         [4]error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		channels, errs[0] = cached(m.responses, channelsKey(token), channelsTTL, func() ([]jellyfin.Channel, error) {
			return m.broadcast.Channels(ctx, token)
		})
	}()
	go func() {
		defer wg.Done()
		programs, errs[1] = cached(m.responses, programsKey(token, minEnd), programsTTL, func() ([]jellyfin.Program, error) {
			return m.broadcast.Programs(ctx, token, jellyfin.ProgramsRequest{
				Limit:        25000,
				MinEndDate:   minEnd,
				MaxStartDate: maxStart,
			})
		})
	}()
	go func() {
		defer wg.Done()
		timers, errs[2] = cached(m.responses, timersKey(token), timersTTL, func() ([]jellyfin.Timer, error) {
			return m.broadcast.Timers(ctx, token)
		})
	}()
	go func() {
		defer wg.Done()
		seriesTimers, errs[3] = cached(m.responses, seriesTimersKey(token), seriesTimersTTL, func() ([]jellyfin.SeriesTimer, error) {
			return m.broadcast.SeriesTimers(ctx, token)
		})
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	programs = m.injectTimerPrograms(ctx, token, programs, timers)

	timerByProgram := make(map[string]jellyfin.Timer, len(timers))
	for _, t := range timers {
		if t.ProgramID != "" {
			timerByProgram[t.ProgramID] = t
		}
	}
	seriesTimerByID := make(map[string]jellyfin.SeriesTimer, len(seriesTimers))
	seriesTimerByName := make(map[string]jellyfin.SeriesTimer, len(seriesTimers))
	for _, st := range seriesTimers {
		if st.SeriesID != "" {
			seriesTimerByID[st.SeriesID] = st
		}
		name := st.SeriesName
		if name == "" {
			name = st.Name
		}
		if key := show.Key(name); key != "" {
			seriesTimerByName[key] = st
		}
	}

	byChannel := make(map[string][]GuideProgram)
	var maxDate string
	for _, p := range programs {
		gp := GuideProgram{Program: p}
		if t, ok := timerByProgram[p.ID]; ok {
			gp.IsRecording = true
			gp.RecordingTimerID = t.ID
		}
		// An id match always wins over a name match.
		if st, ok := seriesTimerByID[p.SeriesID]; ok && p.SeriesID != "" {
			gp.IsSeriesRecording = true
			gp.SeriesRecordingID = st.ID
		} else {
			name := p.SeriesName
			if name == "" {
				name = p.Name
			}
			if st, ok := seriesTimerByName[show.Key(name)]; ok && show.Key(name) != "" {
				gp.IsSeriesRecording = true
				gp.SeriesRecordingID = st.ID
			}
		}
		byChannel[p.ChannelID] = append(byChannel[p.ChannelID], gp)
		// The horizon reaches to the end of the last program, not its start.
		if p.EndDate > maxDate {
			maxDate = p.EndDate
		}
	}

	out := &GuideResponse{MaxDate: maxDate, Channels: make([]GuideChannel, 0, len(channels))}
	for _, ch := range channels {
		progs := byChannel[ch.ID]
		// ISO-8601 strings sort chronologically; cheaper than parsing at
		// guide scale and monotonic by construction.
		sort.SliceStable(progs, func(i, j int) bool {
			return progs[i].StartDate < progs[j].StartDate
		})
		if progs == nil {
			progs = []GuideProgram{}
		}
		out.Channels = append(out.Channels, GuideChannel{Channel: ch, Programs: progs})
	}

	log.Debugw("guide assembled", "channels", len(out.Channels), "programs", len(programs), "timers", len(timers))
	return out, nil
}

// injectTimerPrograms appends the programs that existing timers point at
// but that fell outside the fetched window, so scheduled content near the
// horizon edge is never invisible. Individual detail failures only drop
// that one injection.
func (m Manager) injectTimerPrograms(ctx context.Context, token string, programs []jellyfin.Program, timers []jellyfin.Timer) []jellyfin.Program {
	seen := make(map[string]struct{}, len(programs))
	for _, p := range programs {
		seen[p.ID] = struct{}{}
	}

	var missing []string
	for _, t := range timers {
		if t.ProgramID == "" {
			continue
		}
		if _, ok := seen[t.ProgramID]; !ok {
			missing = append(missing, t.ProgramID)
		}
	}
	if len(missing) == 0 {
		return programs
	}

	log := logger.FromCtx(ctx)
	var mu sync.Mutex
	p := pool.New().WithContext(ctx)
	for _, id := range missing {
		id := id
		p.Go(func(ctx context.Context) error {
			prog, err := m.broadcast.Program(ctx, token, id)
			if err != nil {
				log.Warnw("could not fetch timer program", "programID", id, "error", err)
				return nil
			}
			mu.Lock()
			programs = append(programs, *prog)
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Warnw("timer program injection incomplete", "error", err)
	}
	return programs
}
