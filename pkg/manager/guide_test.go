package manager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dvrz/dvrz/pkg/cache"
	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/manager/mocks"
	storagemocks "github.com/dvrz/dvrz/pkg/storage/mocks"
)

type testDeps struct {
	broadcast *mocks.MockBroadcastClient
	catalog   *mocks.MockCatalogClient
	store     *storagemocks.MockStorage
}

func newTestManager(t *testing.T) (Manager, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		broadcast: mocks.NewMockBroadcastClient(ctrl),
		catalog:   mocks.NewMockCatalogClient(ctrl),
		store:     storagemocks.NewMockStorage(ctrl),
	}
	m := New(deps.broadcast, deps.catalog, deps.store, cache.New[any]())
	m.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return m, deps
}

func TestGuideReconciliation(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Channels(ctx, "tok").Return([]jellyfin.Channel{{ID: "c1", Name: "Chan 1"}}, nil)
	deps.broadcast.EXPECT().Programs(ctx, "tok", gomock.Any()).Return([]jellyfin.Program{
		{ID: "p1", ChannelID: "c1", SeriesName: "X", StartDate: "2024-01-01T00:00:00Z", EndDate: "2024-01-01T00:30:00Z"},
	}, nil)
	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{{ID: "t1", ProgramID: "p1"}}, nil)
	deps.broadcast.EXPECT().SeriesTimers(ctx, "tok").Return([]jellyfin.SeriesTimer{}, nil)

	guide, err := m.Guide(ctx, "u1", "tok")
	require.NoError(t, err)
	require.Len(t, guide.Channels, 1)
	assert.Equal(t, "c1", guide.Channels[0].ID)
	require.Len(t, guide.Channels[0].Programs, 1)

	p := guide.Channels[0].Programs[0]
	assert.Equal(t, "p1", p.ID)
	assert.True(t, p.IsRecording)
	assert.Equal(t, "t1", p.RecordingTimerID)
	assert.False(t, p.IsSeriesRecording)
	assert.Equal(t, "2024-01-01T00:30:00Z", guide.MaxDate)
}

func TestGuideSeriesTimerMatching(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	programs := []jellyfin.Program{
		// Matched by series id even though the name also matches another rule.
		{ID: "p1", ChannelID: "c1", SeriesID: "s1", SeriesName: "The Office (US)", StartDate: "2024-01-01T01:00:00Z"},
		// No series id: matched through the normalized name.
		{ID: "p2", ChannelID: "c1", SeriesName: "brooklyn nine nine", StartDate: "2024-01-01T02:00:00Z"},
		// Matches nothing.
		{ID: "p3", ChannelID: "c1", Name: "Local News", StartDate: "2024-01-01T00:00:00Z"},
	}
	seriesTimers := []jellyfin.SeriesTimer{
		{ID: "st-id", SeriesID: "s1", SeriesName: "The Office (US)"},
		{ID: "st-name", SeriesName: "Brooklyn Nine-Nine"},
	}

	deps.broadcast.EXPECT().Channels(ctx, "tok").Return([]jellyfin.Channel{{ID: "c1", Name: "Chan 1"}}, nil)
	deps.broadcast.EXPECT().Programs(ctx, "tok", gomock.Any()).Return(programs, nil)
	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{}, nil)
	deps.broadcast.EXPECT().SeriesTimers(ctx, "tok").Return(seriesTimers, nil)

	guide, err := m.Guide(ctx, "u1", "tok")
	require.NoError(t, err)
	require.Len(t, guide.Channels, 1)
	progs := guide.Channels[0].Programs
	require.Len(t, progs, 3)

	// Sorted ascending by start date.
	assert.Equal(t, []string{"p3", "p1", "p2"}, []string{progs[0].ID, progs[1].ID, progs[2].ID})

	byID := map[string]GuideProgram{}
	for _, p := range progs {
		byID[p.ID] = p
	}
	assert.True(t, byID["p1"].IsSeriesRecording)
	assert.Equal(t, "st-id", byID["p1"].SeriesRecordingID)
	assert.True(t, byID["p2"].IsSeriesRecording)
	assert.Equal(t, "st-name", byID["p2"].SeriesRecordingID)
	assert.False(t, byID["p3"].IsSeriesRecording)
}

func TestGuideInjectsTimerOnlyPrograms(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Channels(ctx, "tok").Return([]jellyfin.Channel{{ID: "c1", Name: "Chan 1"}}, nil)
	deps.broadcast.EXPECT().Programs(ctx, "tok", gomock.Any()).Return([]jellyfin.Program{}, nil)
	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{
		{ID: "t1", ProgramID: "far-future"},
	}, nil)
	deps.broadcast.EXPECT().SeriesTimers(ctx, "tok").Return([]jellyfin.SeriesTimer{}, nil)
	deps.broadcast.EXPECT().Program(gomock.Any(), "tok", "far-future").Return(&jellyfin.Program{
		ID: "far-future", ChannelID: "c1", Name: "Season Finale", StartDate: "2024-02-01T00:00:00Z",
	}, nil)

	guide, err := m.Guide(ctx, "u1", "tok")
	require.NoError(t, err)
	require.Len(t, guide.Channels, 1)
	require.Len(t, guide.Channels[0].Programs, 1)

	p := guide.Channels[0].Programs[0]
	assert.Equal(t, "far-future", p.ID)
	assert.True(t, p.IsRecording)
}

func TestGuideReusesCachedResponses(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Channels(ctx, "tok").Return([]jellyfin.Channel{{ID: "c1"}}, nil).Times(1)
	deps.broadcast.EXPECT().Programs(ctx, "tok", gomock.Any()).Return([]jellyfin.Program{}, nil).Times(1)
	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{}, nil).Times(1)
	deps.broadcast.EXPECT().SeriesTimers(ctx, "tok").Return([]jellyfin.SeriesTimer{}, nil).Times(1)

	_, err := m.Guide(ctx, "u1", "tok")
	require.NoError(t, err)
	_, err = m.Guide(ctx, "u1", "tok")
	require.NoError(t, err)
}

func TestGuideUnauthorizedPropagates(t *testing.T) {
	m, deps := newTestManager(t)
	ctx := context.Background()

	deps.broadcast.EXPECT().Channels(ctx, "tok").Return(nil, jellyfin.ErrUnauthorized)
	deps.broadcast.EXPECT().Programs(ctx, "tok", gomock.Any()).Return([]jellyfin.Program{}, nil).AnyTimes()
	deps.broadcast.EXPECT().Timers(ctx, "tok").Return([]jellyfin.Timer{}, nil).AnyTimes()
	deps.broadcast.EXPECT().SeriesTimers(ctx, "tok").Return([]jellyfin.SeriesTimer{}, nil).AnyTimes()

	_, err := m.Guide(ctx, "u1", "tok")
	assert.ErrorIs(t, err, jellyfin.ErrUnauthorized)
}

func TestGuideWindow(t *testing.T) {
	m, _ := newTestManager(t)
	m.now = func() time.Time { return time.Date(2024, 1, 1, 10, 7, 42, 0, time.UTC) }

	minEnd, maxStart := m.guideWindow()
	assert.Equal(t, "2024-01-01T09:00:00.000Z", minEnd)
	assert.Equal(t, "2024-01-01T22:00:00.000Z", maxStart)
}
