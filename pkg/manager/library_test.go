package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/tvmaze"
)

func TestMonitoredAggregation(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{
		{ID: "t1", SeriesID: "s1", SeriesName: "The Office", StartDate: "2024-01-02T01:00:00Z"},
		{ID: "t2", SeriesID: "s1", SeriesName: "The Office", StartDate: "2024-01-01T01:00:00Z"},
		// No series name and no name: excluded from aggregation.
		{ID: "t3"},
	}, nil)
	deps.broadcast.EXPECT().Recordings(ctx, "tok").Return([]jellyfin.Recording{
		{ID: "r1", SeriesName: "The Office", Name: "Pilot"},
		{ID: "r2", SeriesName: "Severance", Name: "Good News About Hell"},
	}, nil)

	deps.store.EXPECT().GetSeriesImage(ctx, "The Office").Return("http://img/office.jpg", nil)
	deps.store.EXPECT().GetSeriesImage(ctx, "Severance").Return("", storage.ErrNotFound)
	deps.catalog.EXPECT().Search(ctx, "Severance").Return([]tvmaze.SearchResult{
		{Score: 1, Show: &tvmaze.Show{ID: 44458, Name: "Severance", Image: &tvmaze.Image{Medium: "http://img/sev.jpg"}}},
	}, nil)
	deps.store.EXPECT().SaveSeriesImage(ctx, "Severance", "http://img/sev.jpg").Return(nil)

	rows, err := m.Monitored(ctx, "u1", "tok")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	office, severance := rows[1], rows[0]
	assert.Equal(t, "The Office", office.Name)
	assert.Equal(t, 2, office.TimerCount)
	assert.Equal(t, 1, office.RecordingCount)
	assert.Equal(t, "2024-01-01T01:00:00Z", office.NextStart)
	assert.Equal(t, "http://img/office.jpg", office.ImageURL)

	assert.Equal(t, "Severance", severance.Name)
	assert.Zero(t, severance.TimerCount)
	assert.Equal(t, 1, severance.RecordingCount)
	assert.Equal(t, "http://img/sev.jpg", severance.ImageURL)
}

func TestMonitoredMergesRecordingsIntoIDGroups(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{
		{ID: "t1", SeriesID: "s1", SeriesName: "The Office"},
	}, nil)
	// The recording has no series id but normalizes to the same name.
	deps.broadcast.EXPECT().Recordings(ctx, "tok").Return([]jellyfin.Recording{
		{ID: "r1", SeriesName: "the office!"},
	}, nil)
	deps.store.EXPECT().GetSeriesImage(ctx, "The Office").Return("http://img/o.jpg", nil)

	rows, err := m.Monitored(ctx, "u1", "tok")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TimerCount)
	assert.Equal(t, 1, rows[0].RecordingCount)
}

func TestLookupPrefersCatalog(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.catalog.EXPECT().Search(ctx, "The Office").Return([]tvmaze.SearchResult{
		{Score: 1, Show: &tvmaze.Show{ID: 526, Name: "The Office"}},
	}, nil)
	deps.catalog.EXPECT().GetShow(ctx, "526").Return(officeShow(), nil)

	s, err := m.Lookup(ctx, "The Office", "u1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "526", s.ID)
	assert.False(t, s.JellyfinFallback)
	assert.Len(t, s.Episodes, 2)
}

func TestLookupFallsBackToLibrary(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.catalog.EXPECT().Search(ctx, "Home Movies 2019").Return([]tvmaze.SearchResult{}, nil)
	deps.broadcast.EXPECT().SearchItems(ctx, "tok", "Home Movies 2019", "Series", "Movie", "Recording").
		Return([]jellyfin.Item{
			{ID: "other", Name: "Home Movies"},
			{ID: "exact", Name: "home movies 2019"},
		}, nil)
	deps.store.EXPECT().GetSetting(ctx, jellyfin.SettingHost).Return("http://jf", nil)

	s, err := m.Lookup(ctx, "Home Movies 2019", "u1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "exact", s.ID)
	assert.True(t, s.JellyfinFallback)
}

func TestLookupNotFound(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.catalog.EXPECT().Search(ctx, "Nothing").Return([]tvmaze.SearchResult{}, nil)
	deps.broadcast.EXPECT().SearchItems(ctx, "tok", "Nothing", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]jellyfin.Item{}, nil)

	_, err := m.Lookup(ctx, "Nothing", "u1", "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}
