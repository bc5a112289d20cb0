package manager

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/show"
)

// MonitoredSeries is one row of the dashboard aggregation: a series the
// user is recording or has recorded, with counts and the best-known poster.
type MonitoredSeries struct {
	Name           string `json:"name"`
	SeriesID       string `json:"seriesId,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	TimerCount     int    `json:"timerCount"`
	RecordingCount int    `json:"recordingCount"`
	NextStart      string `json:"nextStart,omitempty"`
}

// Monitored aggregates timers and recordings into per-series rows. Timers
// with neither a series name nor their own name are excluded from the
// aggregation; they remain visible in raw timer listings.
func (m Manager) Monitored(ctx context.Context, userID, token string) ([]MonitoredSeries, error) {
	var (
		timers     []jellyfin.Timer
		recordings []jellyfin.Recording
		errs       [2]error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		timers, errs[0] = cached(m.responses, timersKey(token), timersTTL, func() ([]jellyfin.Timer, error) {
			return m.broadcast.Timers(ctx, token)
		})
	}()
	go func() {
		defer wg.Done()
		recordings, errs[1] = m.broadcast.Recordings(ctx, token)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	groups := make(map[string]*MonitoredSeries)

	keyFor := func(seriesID, seriesName, name string) (string, string) {
		display := seriesName
		if display == "" {
			display = name
		}
		if seriesID != "" {
			return "id:" + seriesID, display
		}
		if k := show.Key(display); k != "" {
			return "name:" + k, display
		}
		return "", ""
	}

	for _, t := range timers {
		key, display := keyFor(t.SeriesID, t.SeriesName, t.Name)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &MonitoredSeries{Name: display, SeriesID: t.SeriesID}
			groups[key] = g
		}
		g.TimerCount++
		if g.NextStart == "" || (t.StartDate != "" && t.StartDate < g.NextStart) {
			g.NextStart = t.StartDate
		}
	}

	for _, r := range recordings {
		key, display := keyFor(r.SeriesID, r.SeriesName, r.Name)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			// Recordings grouped by name can still merge with an id-keyed
			// timer group for the same series.
			if byName, found := findByName(groups, display); found {
				byName.RecordingCount++
				continue
			}
			g = &MonitoredSeries{Name: display, SeriesID: r.SeriesID}
			groups[key] = g
		}
		g.RecordingCount++
	}

	out := make([]MonitoredSeries, 0, len(groups))
	for _, g := range groups {
		g.ImageURL = m.seriesImage(ctx, g.Name)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func findByName(groups map[string]*MonitoredSeries, name string) (*MonitoredSeries, bool) {
	key := show.Key(name)
	if key == "" {
		return nil, false
	}
	for _, g := range groups {
		if show.Key(g.Name) == key {
			return g, true
		}
	}
	return nil, false
}

// seriesImage resolves a poster for a series name: the durable image cache
// first, the catalog second. A resolved catalog image is written back so
// the next load skips the search.
func (m Manager) seriesImage(ctx context.Context, name string) string {
	if name == "" {
		return ""
	}
	if url, err := m.storage.GetSeriesImage(ctx, name); err == nil && url != "" {
		return url
	}

	tvShow := m.searchCatalog(ctx, name)
	if tvShow == nil || tvShow.Image == nil {
		return ""
	}
	url := tvShow.Image.Medium
	if url == "" {
		url = tvShow.Image.Original
	}
	if url == "" {
		return ""
	}
	if err := m.storage.SaveSeriesImage(ctx, name, url); err != nil {
		logger.FromCtx(ctx).Warnw("could not persist series image", "show", name, "error", err)
	}
	return url
}

// Lookup resolves a show by display name: the catalog first, the media
// server's library second. Returns ErrNotFound when neither source knows
// the name.
func (m Manager) Lookup(ctx context.Context, name, userID, token string) (*show.Show, error) {
	if tvShow := m.searchCatalog(ctx, name); tvShow != nil {
		full, err := m.catalog.GetShow(ctx, strconv.Itoa(tvShow.ID))
		if err == nil && full != nil {
			return show.FromTVMaze(full), nil
		}
		return show.FromTVMaze(tvShow), nil
	}

	items, err := m.broadcast.SearchItems(ctx, token, name, "Series", "Movie", "Recording")
	if err != nil {
		return nil, err
	}
	var first *jellyfin.Item
	for i := range items {
		if show.SameName(items[i].Name, name) {
			return show.FromJellyfinItem(&items[i], m.imageHost(ctx)), nil
		}
		if first == nil {
			first = &items[i]
		}
	}
	if first != nil {
		return show.FromJellyfinItem(first, m.imageHost(ctx)), nil
	}
	return nil, ErrNotFound
}
