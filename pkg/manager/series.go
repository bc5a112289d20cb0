package manager

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/show"
	"github.com/dvrz/dvrz/pkg/tvmaze"
)

// numericID distinguishes a catalog id from a media-server GUID.
var numericID = regexp.MustCompile(`^[0-9]+$`)

// EpisodeState is a canonical episode annotated with the per-request
// derived flags reconciliation computes.
type EpisodeState struct {
	show.Episode
	Owned          bool   `json:"owned"`
	MediaServerID  string `json:"mediaServerId,omitempty"`
	Upcoming       bool   `json:"upcoming"`
	GuideProgramID string `json:"guideProgramId,omitempty"`
	IsRecording    bool   `json:"isRecording"`
	TimerID        string `json:"timerId,omitempty"`
}

// SeriesResponse is the reconciled per-series view.
type SeriesResponse struct {
	Show        *show.Show             `json:"show"`
	Seasons     map[int][]EpisodeState `json:"seasons"`
	IsMonitored bool                   `json:"isMonitored"`
	// UnmappedRecordings are timers for this series that matched no known
	// episode; surfaced so scheduled content never silently vanishes.
	UnmappedRecordings []jellyfin.Timer `json:"unmappedRecordings"`
}

// Series computes the reconciled view of one show: its canonical episode
// list annotated with ownership and scheduling state, plus any timers that
// could not be mapped to an episode. The id is either a catalog numeric id
// or a media-server GUID.
func (m Manager) Series(ctx context.Context, id, userID, token string) (*SeriesResponse, error) {
	log := logger.FromCtx(ctx)

	s, jfSeriesID, displayName, err := m.resolveShow(ctx, id, userID, token)
	if err != nil {
		return nil, err
	}

	m.enrichImage(ctx, s)

	var (
		owned        []jellyfin.Item
		libName      string
		programs     []jellyfin.Program
		timers       []jellyfin.Timer
		seriesTimers []jellyfin.SeriesTimer
		errs         [4]error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		sid := jfSeriesID
		if sid == "" {
			sid, libName, errs[0] = m.findLibrarySeries(ctx, token, s.Name)
			if errs[0] != nil || sid == "" {
				return
			}
		}
		owned, errs[0] = m.broadcast.Episodes(ctx, token, sid)
	}()
	go func() {
		defer wg.Done()
		programs, errs[1] = m.broadcast.Programs(ctx, token, jellyfin.ProgramsRequest{SearchTerm: s.Name})
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

	// Library episodes carry the authoritative media-server series id for
	// the timer guard when the show was resolved from the catalog.
	if jfSeriesID == "" && len(owned) > 0 {
		jfSeriesID = owned[0].SeriesID
	}

	// The durable image row keys by the name the library actually shows,
	// so later library-named lookups hit it.
	if displayName == "" {
		displayName = libName
	}
	m.persistImage(ctx, s, displayName)

	seriesTimers = filterSeriesTimers(seriesTimers, s, jfSeriesID)
	timers = m.enrichTimers(ctx, token, filterTimers(timers, s, jfSeriesID))
	programs = filterPrograms(programs, s, jfSeriesID)

	episodes := s.Episodes
	if len(episodes) == 0 && len(timers) > 0 {
		episodes = virtualEpisodes(timers)
		s.Episodes = episodes
	}

	matched := make(map[string]struct{}, len(timers))
	states := make([]EpisodeState, 0, len(episodes))
	for _, ep := range episodes {
		st := EpisodeState{Episode: ep, Upcoming: m.upcoming(ep)}
		if it := findOwnedItem(ep, owned); it != nil {
			st.Owned = true
			st.MediaServerID = it.ID
		}
		if p := findProgram(ep, programs); p != nil {
			st.GuideProgramID = p.ID
		}
		if t := findTimer(ep, timers); t != nil {
			st.IsRecording = true
			st.TimerID = t.ID
			matched[t.ID] = struct{}{}
		}
		states = append(states, st)
	}

	unmapped := make([]jellyfin.Timer, 0)
	for _, t := range timers {
		if _, ok := matched[t.ID]; !ok {
			unmapped = append(unmapped, t)
		}
	}

	seasons := make(map[int][]EpisodeState)
	for _, st := range states {
		seasons[st.Season] = append(seasons[st.Season], st)
	}
	for _, eps := range seasons {
		sort.SliceStable(eps, func(i, j int) bool { return eps[i].Number < eps[j].Number })
	}

	log.Debugw("series reconciled",
		"show", s.Name, "episodes", len(states), "owned", len(owned),
		"timers", len(timers), "unmapped", len(unmapped))

	return &SeriesResponse{
		Show:               s,
		Seasons:            seasons,
		IsMonitored:        len(seriesTimers) > 0,
		UnmappedRecordings: unmapped,
	}, nil
}

// resolveShow turns an identifier into a canonical show. A numeric id is a
// catalog id; anything else is treated as a media-server GUID, resolved
// through the library and upgraded to catalog metadata when a match can be
// found by external id or name.
func (m Manager) resolveShow(ctx context.Context, id, userID, token string) (*show.Show, string, string, error) {
	log := logger.FromCtx(ctx)

	if numericID.MatchString(id) {
		tvShow, err := m.catalog.GetShow(ctx, id)
		if err != nil {
			return nil, "", "", err
		}
		if tvShow == nil {
			return nil, "", "", ErrNotFound
		}
		return show.FromTVMaze(tvShow), "", "", nil
	}

	item, err := m.broadcast.Item(ctx, token, userID, id)
	if err != nil {
		return nil, "", "", err
	}
	if item == nil || item.ID == "" {
		return nil, "", "", ErrNotFound
	}

	fallback := show.FromJellyfinItem(item, m.imageHost(ctx))

	var tvShow *tvmaze.Show
	if fallback.ExternalIDs.IMDB != "" || fallback.ExternalIDs.TheTVDB != 0 {
		tvShow, err = m.catalog.Lookup(ctx, fallback.ExternalIDs.IMDB, fallback.ExternalIDs.TheTVDB)
		if err != nil {
			log.Warnw("catalog lookup failed", "show", item.Name, "error", err)
		}
	}
	if tvShow == nil {
		tvShow = m.searchCatalog(ctx, item.Name)
	}
	if tvShow == nil {
		return fallback, item.ID, item.Name, nil
	}

	full, err := m.catalog.GetShow(ctx, strconv.Itoa(tvShow.ID))
	if err != nil || full == nil {
		log.Warnw("catalog upgrade failed, using library metadata", "show", item.Name, "error", err)
		return fallback, item.ID, item.Name, nil
	}

	// Future name searches for the library's display name hit cache.
	m.catalog.SeedSearch(ctx, item.Name, full)

	upgraded := show.FromTVMaze(full)
	if upgraded.Image == nil {
		upgraded.Image = fallback.Image
	}
	return upgraded, item.ID, item.Name, nil
}

// searchCatalog returns the first structurally valid hit whose name
// normalizes to the query, or the first valid hit when none does.
func (m Manager) searchCatalog(ctx context.Context, name string) *tvmaze.Show {
	results, err := m.catalog.Search(ctx, name)
	if err != nil {
		logger.FromCtx(ctx).Warnw("catalog search failed", "query", name, "error", err)
		return nil
	}
	var first *tvmaze.Show
	for _, r := range results {
		if r.Show == nil || r.Show.ID <= 0 {
			continue
		}
		if show.SameName(r.Show.Name, name) {
			return r.Show
		}
		if first == nil {
			first = r.Show
		}
	}
	return first
}

// findLibrarySeries locates the media server's own series item for a show
// name, so owned episodes can be listed. Returns the item's id and display
// name.
func (m Manager) findLibrarySeries(ctx context.Context, token, name string) (string, string, error) {
	items, err := m.broadcast.SearchItems(ctx, token, name, "Series")
	if err != nil {
		return "", "", err
	}
	for _, it := range items {
		if show.SameName(it.Name, name) {
			return it.ID, it.Name, nil
		}
	}
	return "", "", nil
}

func (m Manager) imageHost(ctx context.Context) string {
	host, err := m.storage.GetSetting(ctx, jellyfin.SettingHost)
	if err != nil {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

// enrichImage fills a missing poster from the catalog's external-id lookup.
func (m Manager) enrichImage(ctx context.Context, s *show.Show) {
	if s.Image != nil || (s.ExternalIDs.IMDB == "" && s.ExternalIDs.TheTVDB == 0) {
		return
	}
	tvShow, err := m.catalog.Lookup(ctx, s.ExternalIDs.IMDB, s.ExternalIDs.TheTVDB)
	if err != nil || tvShow == nil || tvShow.Image == nil {
		return
	}
	s.Image = &show.Image{Original: tvShow.Image.Original, Medium: tvShow.Image.Medium}
}

// persistImage writes a resolved poster to the durable series-image cache
// so future loads skip the catalog entirely for images. The row keys by the
// library's display name when one was matched, falling back to the show's
// canonical name.
func (m Manager) persistImage(ctx context.Context, s *show.Show, displayName string) {
	name := displayName
	if name == "" {
		name = s.Name
	}
	if s.Image == nil || name == "" {
		return
	}
	url := s.Image.Medium
	if url == "" {
		url = s.Image.Original
	}
	if url == "" {
		return
	}
	if err := m.storage.SaveSeriesImage(ctx, name, url); err != nil {
		logger.FromCtx(ctx).Warnw("could not persist series image", "show", name, "error", err)
	}
}

// enrichTimers fetches program detail for timers missing episode
// information. Each lookup's failure is isolated: a failed detail fetch
// only leaves that one timer unenriched.
func (m Manager) enrichTimers(ctx context.Context, token string, timers []jellyfin.Timer) []jellyfin.Timer {
	log := logger.FromCtx(ctx)

	var mu sync.Mutex
	p := pool.New().WithContext(ctx)
	for i := range timers {
		t := timers[i]
		if t.ProgramID == "" || (t.EpisodeTitle != "" && t.IndexNumber != nil) {
			continue
		}
		i := i
		p.Go(func(ctx context.Context) error {
			prog, err := m.broadcast.Program(ctx, token, t.ProgramID)
			if err != nil {
				log.Warnw("timer enrichment failed", "timerID", t.ID, "programID", t.ProgramID, "error", err)
				return nil
			}
			mu.Lock()
			if timers[i].EpisodeTitle == "" {
				timers[i].EpisodeTitle = prog.EpisodeTitle
			}
			if timers[i].IndexNumber == nil {
				timers[i].IndexNumber = prog.IndexNumber
			}
			if timers[i].ParentIndexNumber == nil {
				timers[i].ParentIndexNumber = prog.ParentIndexNumber
			}
			if timers[i].PremiereDate == "" {
				timers[i].PremiereDate = prog.PremiereDate
			}
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Warnw("timer enrichment incomplete", "error", err)
	}
	return timers
}

// sameSeries applies the series-id guard: when both sides carry a series
// id, the ids must agree; a name match alone is only trusted when at least
// one side has no id. A numeric season/episode coincidence across two
// unrelated shows must never produce a false positive.
func sameSeries(candidateSeriesID, candidateName string, s *show.Show, jfSeriesID string) bool {
	if candidateSeriesID != "" && jfSeriesID != "" {
		return candidateSeriesID == jfSeriesID
	}
	return show.SameName(candidateName, s.Name)
}

func filterTimers(timers []jellyfin.Timer, s *show.Show, jfSeriesID string) []jellyfin.Timer {
	out := make([]jellyfin.Timer, 0, len(timers))
	for _, t := range timers {
		name := t.SeriesName
		if name == "" {
			name = t.Name
		}
		if sameSeries(t.SeriesID, name, s, jfSeriesID) {
			out = append(out, t)
		}
	}
	return out
}

func filterSeriesTimers(sts []jellyfin.SeriesTimer, s *show.Show, jfSeriesID string) []jellyfin.SeriesTimer {
	out := make([]jellyfin.SeriesTimer, 0, len(sts))
	for _, st := range sts {
		name := st.SeriesName
		if name == "" {
			name = st.Name
		}
		if sameSeries(st.SeriesID, name, s, jfSeriesID) {
			out = append(out, st)
		}
	}
	return out
}

func filterPrograms(programs []jellyfin.Program, s *show.Show, jfSeriesID string) []jellyfin.Program {
	out := make([]jellyfin.Program, 0, len(programs))
	for _, p := range programs {
		name := p.SeriesName
		if name == "" {
			name = p.Name
		}
		if sameSeries(p.SeriesID, name, s, jfSeriesID) {
			out = append(out, p)
		}
	}
	return out
}

// Matching tiers, strongest first. A stronger tier on any candidate beats
// a weaker tier on an earlier one, so candidates are scanned tier by tier.
func tierSE(season, number *int, ep show.Episode) bool {
	return season != nil && number != nil && *season == ep.Season && *number == ep.Number
}

func tierName(name, episodeTitle string, ep show.Episode) bool {
	return show.MatchAny(ep.Name, name, episodeTitle)
}

func airdatePrefix(ep show.Episode, candidate string) bool {
	return ep.Airdate != "" && candidate != "" && strings.HasPrefix(candidate, ep.Airdate)
}

// tierDay is the weakest tier, only used for timers: exact airstamp
// equality or same-day prefix, for daily shows whose timestamps drift.
func tierDay(ep show.Episode, start string) bool {
	if ep.Airstamp == "" || start == "" {
		return false
	}
	if ep.Airstamp == start {
		return true
	}
	return ep.Airstamp[:min(10, len(ep.Airstamp))] == start[:min(10, len(start))]
}

func findOwnedItem(ep show.Episode, items []jellyfin.Item) *jellyfin.Item {
	for tier := 1; tier <= 3; tier++ {
		for i := range items {
			it := &items[i]
			switch tier {
			case 1:
				if tierSE(it.ParentIndexNumber, it.IndexNumber, ep) {
					return it
				}
			case 2:
				if tierName(it.Name, it.EpisodeTitle, ep) {
					return it
				}
			case 3:
				if airdatePrefix(ep, it.PremiereDate) {
					return it
				}
			}
		}
	}
	return nil
}

func findProgram(ep show.Episode, programs []jellyfin.Program) *jellyfin.Program {
	for tier := 1; tier <= 3; tier++ {
		for i := range programs {
			p := &programs[i]
			switch tier {
			case 1:
				if tierSE(p.ParentIndexNumber, p.IndexNumber, ep) {
					return p
				}
			case 2:
				if tierName(p.Name, p.EpisodeTitle, ep) {
					return p
				}
			case 3:
				if airdatePrefix(ep, p.PremiereDate) || airdatePrefix(ep, p.StartDate) {
					return p
				}
			}
		}
	}
	return nil
}

func findTimer(ep show.Episode, timers []jellyfin.Timer) *jellyfin.Timer {
	for tier := 1; tier <= 4; tier++ {
		for i := range timers {
			t := &timers[i]
			switch tier {
			case 1:
				if tierSE(t.ParentIndexNumber, t.IndexNumber, ep) {
					return t
				}
			case 2:
				if tierName(t.Name, t.EpisodeTitle, ep) {
					return t
				}
			case 3:
				if airdatePrefix(ep, t.PremiereDate) || airdatePrefix(ep, t.StartDate) {
					return t
				}
			case 4:
				if tierDay(ep, t.StartDate) {
					return t
				}
			}
		}
	}
	return nil
}

// virtualEpisodes synthesizes one pseudo-episode per timer for shows the
// catalog has no episodes for, so scheduled content is still visible.
func virtualEpisodes(timers []jellyfin.Timer) []show.Episode {
	eps := make([]show.Episode, 0, len(timers))
	for _, t := range timers {
		season, number := 1, 0
		if t.ParentIndexNumber != nil {
			season = *t.ParentIndexNumber
		}
		if t.IndexNumber != nil {
			number = *t.IndexNumber
		}
		name := t.EpisodeTitle
		if name == "" {
			name = t.Name
		}
		airdate := t.StartDate
		if len(airdate) >= 10 {
			airdate = airdate[:10]
		}
		eps = append(eps, show.Episode{
			ID:       "timer-" + t.ID,
			Season:   season,
			Number:   number,
			Name:     name,
			Airdate:  airdate,
			Airstamp: t.StartDate,
		})
	}
	return eps
}

// upcoming prefers the precise airstamp; sources that only share a date
// compare against today's date string.
func (m Manager) upcoming(ep show.Episode) bool {
	now := m.now().UTC()
	if ep.Airstamp != "" {
		if ts, err := time.Parse(time.RFC3339, ep.Airstamp); err == nil {
			return ts.After(now)
		}
	}
	if ep.Airdate != "" {
		return ep.Airdate >= now.Format("2006-01-02")
	}
	return false
}
