package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dvrz/dvrz/pkg/cache"
	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/manager"
	"github.com/dvrz/dvrz/pkg/manager/mocks"
	storagemocks "github.com/dvrz/dvrz/pkg/storage/mocks"
)

type serverDeps struct {
	broadcast *mocks.MockBroadcastClient
	catalog   *mocks.MockCatalogClient
	store     *storagemocks.MockStorage
}

func newTestServer(t *testing.T) (Server, serverDeps) {
	ctrl := gomock.NewController(t)
	deps := serverDeps{
		broadcast: mocks.NewMockBroadcastClient(ctrl),
		catalog:   mocks.NewMockCatalogClient(ctrl),
		store:     storagemocks.NewMockStorage(ctrl),
	}
	m := manager.New(deps.broadcast, deps.catalog, deps.store, cache.New[any]())
	return New(logger.Get(), m), deps
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) GenericResponse {
	t.Helper()
	var body GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeResponse(t, rec).Response)
}

func TestLogin(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().
		Authenticate(gomock.Any(), "josh", "hunter2").
		Return(&jellyfin.AuthResult{AccessToken: "tok-1", User: jellyfin.User{ID: "u-1", Name: "josh"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"username":"josh","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	res, ok := body.Response.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok-1", res["AccessToken"])
}

func TestLoginValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuidePagination(t *testing.T) {
	srv, deps := newTestServer(t)

	channels := make([]jellyfin.Channel, 5)
	for i := range channels {
		channels[i] = jellyfin.Channel{ID: string(rune('a' + i)), Name: "ch"}
	}
	deps.broadcast.EXPECT().Channels(gomock.Any(), "tok-1").Return(channels, nil)
	deps.broadcast.EXPECT().Programs(gomock.Any(), "tok-1", gomock.Any()).Return([]jellyfin.Program{}, nil)
	deps.broadcast.EXPECT().Timers(gomock.Any(), "tok-1").Return([]jellyfin.Timer{}, nil)
	deps.broadcast.EXPECT().SeriesTimers(gomock.Any(), "tok-1").Return([]jellyfin.SeriesTimer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guide?page=2&pageSize=2", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	req.Header.Set("X-User-Id", "u-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res, ok := decodeResponse(t, rec).Response.(map[string]any)
	require.True(t, ok)
	page := res["channels"].([]any)
	assert.Len(t, page, 2)
	meta := res["meta"].(map[string]any)
	assert.Equal(t, float64(5), meta["totalItems"])
	assert.Equal(t, float64(3), meta["totalPages"])
}

func TestGuideUnauthorized(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().Channels(gomock.Any(), "stale").
		Return(nil, jellyfin.ErrUnauthorized).AnyTimes()
	deps.broadcast.EXPECT().Programs(gomock.Any(), "stale", gomock.Any()).
		Return([]jellyfin.Program{}, nil).AnyTimes()
	deps.broadcast.EXPECT().Timers(gomock.Any(), "stale").
		Return([]jellyfin.Timer{}, nil).AnyTimes()
	deps.broadcast.EXPECT().SeriesTimers(gomock.Any(), "stale").
		Return([]jellyfin.SeriesTimer{}, nil).AnyTimes()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guide", nil)
	req.Header.Set("X-Emby-Token", "stale")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuideHostNotConfigured(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().Channels(gomock.Any(), "tok-1").
		Return(nil, jellyfin.ErrHostNotConfigured).AnyTimes()
	deps.broadcast.EXPECT().Programs(gomock.Any(), "tok-1", gomock.Any()).
		Return([]jellyfin.Program{}, nil).AnyTimes()
	deps.broadcast.EXPECT().Timers(gomock.Any(), "tok-1").
		Return([]jellyfin.Timer{}, nil).AnyTimes()
	deps.broadcast.EXPECT().SeriesTimers(gomock.Any(), "tok-1").
		Return([]jellyfin.SeriesTimer{}, nil).AnyTimes()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guide", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGuideBadPagination(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().Channels(gomock.Any(), "tok-1").Return([]jellyfin.Channel{}, nil)
	deps.broadcast.EXPECT().Programs(gomock.Any(), "tok-1", gomock.Any()).Return([]jellyfin.Program{}, nil)
	deps.broadcast.EXPECT().Timers(gomock.Any(), "tok-1").Return([]jellyfin.Timer{}, nil)
	deps.broadcast.EXPECT().SeriesTimers(gomock.Any(), "tok-1").Return([]jellyfin.SeriesTimer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guide?page=zero", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupRequiresName(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupNotFound(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.catalog.EXPECT().Search(gomock.Any(), "no such show").Return(nil, nil)
	deps.broadcast.EXPECT().
		SearchItems(gomock.Any(), "tok-1", "no such show", "Series", "Movie", "Recording").
		Return([]jellyfin.Item{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup?name=no+such+show", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordByProgramID(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().
		ScheduleRecording(gomock.Any(), "tok-1", "p-1", true).
		Return(jellyfin.OutcomeScheduled, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timers",
		strings.NewReader(`{"programId":"p-1","series":true}`))
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(jellyfin.OutcomeScheduled), decodeResponse(t, rec).Response)
}

func TestRecordRequiresProgramOrSeries(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/timers", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelTimer(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().CancelTimer(gomock.Any(), "tok-1", "t-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/timers/t-1", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRecording(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().DeleteRecording(gomock.Any(), "tok-1", "r-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recordings/r-1", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelSeriesTimerError(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.broadcast.EXPECT().
		CancelSeriesTimer(gomock.Any(), "tok-1", "st-1").
		Return(errors.New("boom"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/seriestimers/st-1", nil)
	req.Header.Set("X-Emby-Token", "tok-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
