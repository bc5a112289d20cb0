package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dvrz/dvrz/pkg/cache"
	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/tvmaze"
)

//go:generate mockgen -source=manager.go -destination=mocks/mock_manager.go -package=mocks

// ErrNotFound means no catalog or library match exists for the requested
// show or program.
var ErrNotFound = errors.New("no match found")

// BroadcastClient is the media server's Live-TV surface the manager
// reconciles against.
type BroadcastClient interface {
	Authenticate(ctx context.Context, username, password string) (*jellyfin.AuthResult, error)
	Channels(ctx context.Context, token string) ([]jellyfin.Channel, error)
	Programs(ctx context.Context, token string, req jellyfin.ProgramsRequest) ([]jellyfin.Program, error)
	Program(ctx context.Context, token, id string) (*jellyfin.Program, error)
	Item(ctx context.Context, token, userID, id string) (*jellyfin.Item, error)
	Items(ctx context.Context, token string, ids []string) ([]jellyfin.Item, error)
	Episodes(ctx context.Context, token, seriesID string) ([]jellyfin.Item, error)
	Recordings(ctx context.Context, token string) ([]jellyfin.Recording, error)
	SearchItems(ctx context.Context, token, term string, itemTypes ...string) ([]jellyfin.Item, error)
	Timers(ctx context.Context, token string) ([]jellyfin.Timer, error)
	SeriesTimers(ctx context.Context, token string) ([]jellyfin.SeriesTimer, error)
	ScheduleRecording(ctx context.Context, token, programID string, series bool) (jellyfin.ScheduleOutcome, error)
	CancelTimer(ctx context.Context, token, timerID string) error
	CancelSeriesTimer(ctx context.Context, token, seriesTimerID string) error
	DeleteRecording(ctx context.Context, token, recordingID string) error
}

// CatalogClient is the show-metadata catalog.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]tvmaze.SearchResult, error)
	GetShow(ctx context.Context, id string) (*tvmaze.Show, error)
	Lookup(ctx context.Context, imdb string, thetvdb int) (*tvmaze.Show, error)
	SeedSearch(ctx context.Context, name string, s *tvmaze.Show)
}

// Manager is the reconciliation engine: it joins the broadcast guide, the
// scheduler's timers, and the metadata catalog into per-episode and
// per-series derived state. One instance serves the whole process; the
// response cache it owns is the only state shared between requests.
type Manager struct {
	broadcast BroadcastClient
	catalog   CatalogClient
	storage   storage.Storage
	responses *cache.TTL[any]

	now func() time.Time
}

func New(broadcast BroadcastClient, catalog CatalogClient, store storage.Storage, responses *cache.TTL[any]) Manager {
	return Manager{
		broadcast: broadcast,
		catalog:   catalog,
		storage:   store,
		responses: responses,
		now:       time.Now,
	}
}

const (
	channelsTTL     = 5 * time.Minute
	programsTTL     = 5 * time.Minute
	timersTTL       = 10 * time.Second
	seriesTimersTTL = 10 * time.Second
)

// isoMillis is the timestamp layout the broadcast API expects in query
// parameters.
const isoMillis = "2006-01-02T15:04:05.000Z"

func channelsKey(token string) string     { return fmt.Sprintf("channels:%s", token) }
func programsKey(token, window string) string {
	return fmt.Sprintf("programs:%s:%s", token, window)
}
func timersKey(token string) string       { return fmt.Sprintf("timers:%s", token) }
func seriesTimersKey(token string) string { return fmt.Sprintf("series_timers:%s", token) }

// cached memoizes a producer through the manager's response cache.
// Concurrent misses may both invoke produce; producers are idempotent
// reads so the duplicate work is accepted.
func cached[T any](c *cache.TTL[any], key string, ttl time.Duration, produce func() (T, error)) (T, error) {
	v, err := c.GetOrCompute(key, ttl, func() (any, error) {
		return produce()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected cached type for %q", key)
	}
	return out, nil
}

// Login authenticates against the media server and returns the session.
func (m Manager) Login(ctx context.Context, username, password string) (*jellyfin.AuthResult, error) {
	return m.broadcast.Authenticate(ctx, username, password)
}
