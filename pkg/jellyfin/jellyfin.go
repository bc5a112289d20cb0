package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	mhttp "github.com/dvrz/dvrz/pkg/http"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/storage"
)

var (
	// ErrHostNotConfigured means no server address has been saved yet.
	ErrHostNotConfigured = fmt.Errorf("jellyfin host not configured")
	// ErrUnauthorized means the access token was rejected by the server.
	ErrUnauthorized = fmt.Errorf("jellyfin: unauthorized")
)

// Settings-store keys the client reads before every request batch. They
// live in the settings store rather than static config so the onboarding
// flow can change them at runtime.
const (
	SettingHost      = "jellyfin_url"
	SettingIgnoreSSL = "ignore_ssl"
)

const (
	clientName    = "dvrz"
	clientVersion = "1.0.0"
)

// HTTPClient matches the subset of http.Client the jellyfin client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientFactory builds the http client used for a request. The factory is
// consulted per call so the TLS-verification setting takes effect without
// restarting.
type ClientFactory func(insecureSkipVerify bool) HTTPClient

// Client talks to a Jellyfin server's Live-TV API. The server address is
// read from settings on every call, so pointing at a different server
// never requires a restart.
type Client struct {
	settings storage.SettingStorage
	factory  ClientFactory
}

type ClientOption func(*Client)

// WithHTTPClient pins the underlying http client, bypassing the
// TLS-verification setting. Used in tests.
func WithHTTPClient(h HTTPClient) ClientOption {
	return func(c *Client) {
		c.factory = func(bool) HTTPClient { return h }
	}
}

func New(settings storage.SettingStorage, opts ...ClientOption) *Client {
	c := &Client{settings: settings}
	for _, o := range opts {
		o(c)
	}
	return c
}

// host resolves the configured server address, without a trailing slash.
func (c *Client) host(ctx context.Context) (string, error) {
	v, err := c.settings.GetSetting(ctx, SettingHost)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", ErrHostNotConfigured
	}
	return strings.TrimRight(strings.TrimSpace(v), "/"), nil
}

func (c *Client) httpClient(ctx context.Context) HTTPClient {
	insecure := false
	if v, err := c.settings.GetSetting(ctx, SettingIgnoreSSL); err == nil && v == "true" {
		insecure = true
	}
	if c.factory != nil {
		return c.factory(insecure)
	}
	return mhttp.NewTransportClient(insecure)
}

func authHeader(token string) string {
	h := fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		clientName, clientName, clientName, clientVersion)
	if token != "" {
		h += fmt.Sprintf(`, Token="%s"`, token)
	}
	return h
}

// do performs one authenticated request. A 401 maps to ErrUnauthorized;
// any other non-2xx status becomes an error carrying the status code.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body any) ([]byte, error) {
	host, err := c.host(ctx)
	if err != nil {
		return nil, err
	}

	u := host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Emby-Authorization", authHeader(token))
	if token != "" {
		req.Header.Set("X-Emby-Token", token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("jellyfin: %s %s: status %d", method, path, resp.StatusCode)
	}
	return out, nil
}

// getList fetches a collection endpoint and unwraps the {Items: [...]}
// envelope. Transient failures are absorbed into an empty slice so one
// unreachable endpoint never takes the whole page down; authorization and
// configuration errors still propagate.
func getList[T any](ctx context.Context, c *Client, token, path string, query url.Values) ([]T, error) {
	out, err := c.do(ctx, token, http.MethodGet, path, query, nil)
	if err != nil {
		if absorbable(err) {
			logger.FromCtx(ctx).Warnw("jellyfin read failed", "path", path, "error", err)
			return []T{}, nil
		}
		return nil, err
	}
	var env itemsEnvelope[T]
	if err := json.Unmarshal(out, &env); err != nil {
		logger.FromCtx(ctx).Warnw("jellyfin response decode failed", "path", path, "error", err)
		return []T{}, nil
	}
	if env.Items == nil {
		return []T{}, nil
	}
	return env.Items, nil
}

func absorbable(err error) bool {
	return err != ErrUnauthorized && err != ErrHostNotConfigured
}

// Authenticate exchanges credentials for an access token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	out, err := c.do(ctx, "", http.MethodPost, "/Users/AuthenticateByName", nil, map[string]string{
		"Username": username,
		"Pw":       password,
	})
	if err != nil {
		return nil, err
	}
	var res AuthResult
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("decoding auth response: %w", err)
	}
	return &res, nil
}

// Channels lists the Live-TV channels.
func (c *Client) Channels(ctx context.Context, token string) ([]Channel, error) {
	return getList[Channel](ctx, c, token, "/LiveTv/Channels", nil)
}

// Channel fetches one Live-TV channel by id.
func (c *Client) Channel(ctx context.Context, token, id string) (*Channel, error) {
	out, err := c.do(ctx, token, http.MethodGet, "/LiveTv/Channels/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var ch Channel
	if err := json.Unmarshal(out, &ch); err != nil {
		return nil, fmt.Errorf("decoding channel: %w", err)
	}
	return &ch, nil
}

// ProgramsRequest narrows a guide-programs query. Zero values mean
// "no constraint".
type ProgramsRequest struct {
	Limit        int
	SearchTerm   string
	MinEndDate   string
	MaxStartDate string
}

// Programs lists guide programs matching the request.
func (c *Client) Programs(ctx context.Context, token string, req ProgramsRequest) ([]Program, error) {
	q := url.Values{}
	if req.Limit > 0 {
		q.Set("Limit", fmt.Sprintf("%d", req.Limit))
	}
	if req.SearchTerm != "" {
		q.Set("SearchTerm", req.SearchTerm)
	}
	// A MinEndDate lookback deliberately includes programs that already
	// aired; the HasAired filter would cancel it server-side.
	if req.MinEndDate != "" {
		q.Set("MinEndDate", req.MinEndDate)
	} else {
		q.Set("HasAired", "false")
	}
	if req.MaxStartDate != "" {
		q.Set("MaxStartDate", req.MaxStartDate)
	}
	q.Set("SortBy", "StartDate")
	return getList[Program](ctx, c, token, "/LiveTv/Programs", q)
}

// OnAir lists programs airing right now.
func (c *Client) OnAir(ctx context.Context, token string) ([]Program, error) {
	q := url.Values{}
	q.Set("IsAiring", "true")
	return getList[Program](ctx, c, token, "/LiveTv/Programs/Recommended", q)
}

// Program fetches one guide program by id. A missing program reports an
// error; a guide page that cannot render one cell has nothing to show.
func (c *Client) Program(ctx context.Context, token, id string) (*Program, error) {
	out, err := c.do(ctx, token, http.MethodGet, "/LiveTv/Programs/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var p Program
	if err := json.Unmarshal(out, &p); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	return &p, nil
}

// Item fetches one library item as the given user.
func (c *Client) Item(ctx context.Context, token, userID, id string) (*Item, error) {
	out, err := c.do(ctx, token, http.MethodGet, "/Users/"+url.PathEscape(userID)+"/Items/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var it Item
	if err := json.Unmarshal(out, &it); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}
	return &it, nil
}

// Episodes lists the known episodes of a library series.
func (c *Client) Episodes(ctx context.Context, token, seriesID string) ([]Item, error) {
	q := url.Values{}
	q.Set("Fields", "Overview,PremiereDate")
	return getList[Item](ctx, c, token, "/Shows/"+url.PathEscape(seriesID)+"/Episodes", q)
}

// Recordings lists completed and in-progress recordings.
func (c *Client) Recordings(ctx context.Context, token string) ([]Recording, error) {
	q := url.Values{}
	q.Set("Fields", "Overview")
	return getList[Recording](ctx, c, token, "/LiveTv/Recordings", q)
}

// Items fetches library items by id.
func (c *Client) Items(ctx context.Context, token string, ids []string) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	q := url.Values{}
	q.Set("Ids", strings.Join(ids, ","))
	q.Set("Fields", "Overview,PremiereDate,ProviderIds")
	return getList[Item](ctx, c, token, "/Items", q)
}

// SearchItems searches library items by name, optionally narrowed to item
// types (Series, Movie, Recording). No types means series only.
func (c *Client) SearchItems(ctx context.Context, token, term string, itemTypes ...string) ([]Item, error) {
	if len(itemTypes) == 0 {
		itemTypes = []string{"Series"}
	}
	q := url.Values{}
	q.Set("SearchTerm", term)
	q.Set("IncludeItemTypes", strings.Join(itemTypes, ","))
	q.Set("Recursive", "true")
	q.Set("Fields", "Overview,PremiereDate,ProviderIds")
	return getList[Item](ctx, c, token, "/Items", q)
}

// Timers lists pending single-recording timers.
func (c *Client) Timers(ctx context.Context, token string) ([]Timer, error) {
	return getList[Timer](ctx, c, token, "/LiveTv/Timers", nil)
}

// SeriesTimers lists standing series-recording rules.
func (c *Client) SeriesTimers(ctx context.Context, token string) ([]SeriesTimer, error) {
	return getList[SeriesTimer](ctx, c, token, "/LiveTv/SeriesTimers", nil)
}

// ScheduleOutcome reports what a schedule request actually did.
type ScheduleOutcome string

const (
	// OutcomeScheduled means a new timer was created.
	OutcomeScheduled ScheduleOutcome = "scheduled"
	// OutcomeAlreadyExists means the program already had a timer and no
	// duplicate was created.
	OutcomeAlreadyExists ScheduleOutcome = "already_exists"
)

// ScheduleRecording schedules a recording for the program. When series is
// true a standing series rule is created instead of a one-off timer.
//
// Program detail is re-fetched first so that an existing timer short-
// circuits instead of creating a duplicate. Duplicate prevention relies on
// the server surfacing TimerId on program detail; a server that omits the
// field simply never short-circuits.
func (c *Client) ScheduleRecording(ctx context.Context, token, programID string, series bool) (ScheduleOutcome, error) {
	program, err := c.Program(ctx, token, programID)
	if err != nil {
		return "", err
	}
	if !series && program.TimerID != "" {
		logger.FromCtx(ctx).Debugw("program already has a timer", "programID", program.ID, "timerID", program.TimerID)
		return OutcomeAlreadyExists, nil
	}
	if series && program.SeriesTimerID != "" {
		logger.FromCtx(ctx).Debugw("program already has a series timer", "programID", program.ID, "seriesTimerID", program.SeriesTimerID)
		return OutcomeAlreadyExists, nil
	}

	payload := c.timerDefaults(ctx, token, program.ID)
	if payload == nil {
		payload = minimalTimerPayload(program)
	}
	delete(payload, "Id")

	path := "/LiveTv/Timers"
	if series {
		path = "/LiveTv/SeriesTimers"
		payload["Type"] = "SeriesTimer"
		payload["RecordAnyTime"] = true
	} else {
		// A server can hand back series-shaped defaults for a single
		// recording; coerce the payload back to single-timer shape.
		payload["Type"] = "Timer"
		payload["TimerType"] = "Program"
	}

	if _, err := c.do(ctx, token, http.MethodPost, path, nil, payload); err != nil {
		return "", err
	}
	return OutcomeScheduled, nil
}

// timerDefaults fetches the server-suggested timer fields for a program,
// round-tripped as a loose map so fields this client does not model
// survive intact. Returns nil when the server has no usable defaults.
func (c *Client) timerDefaults(ctx context.Context, token, programID string) map[string]any {
	q := url.Values{}
	q.Set("programId", programID)
	out, err := c.do(ctx, token, http.MethodGet, "/LiveTv/Timers/Defaults", q, nil)
	if err != nil {
		logger.FromCtx(ctx).Warnw("timer defaults unavailable", "programID", programID, "error", err)
		return nil
	}
	var defaults map[string]any
	if err := json.Unmarshal(out, &defaults); err != nil || len(defaults) == 0 {
		return nil
	}
	return defaults
}

// minimalTimerPayload hand-builds a schedule payload from program detail,
// copying only fields the program actually has.
func minimalTimerPayload(p *Program) map[string]any {
	payload := map[string]any{"ProgramId": p.ID}
	if p.ChannelID != "" {
		payload["ChannelId"] = p.ChannelID
	}
	if p.Name != "" {
		payload["Name"] = p.Name
	}
	if p.SeriesID != "" {
		payload["SeriesId"] = p.SeriesID
	}
	if p.StartDate != "" {
		payload["StartDate"] = p.StartDate
	}
	if p.EndDate != "" {
		payload["EndDate"] = p.EndDate
	}
	if p.Overview != "" {
		payload["Overview"] = p.Overview
	}
	return payload
}

// CancelTimer cancels one pending recording.
func (c *Client) CancelTimer(ctx context.Context, token, timerID string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/LiveTv/Timers/"+url.PathEscape(timerID), nil, nil)
	return err
}

// CancelSeriesTimer removes a standing series-recording rule.
func (c *Client) CancelSeriesTimer(ctx context.Context, token, seriesTimerID string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/LiveTv/SeriesTimers/"+url.PathEscape(seriesTimerID), nil, nil)
	return err
}

// DeleteRecording deletes a finished recording from the library.
func (c *Client) DeleteRecording(ctx context.Context, token, recordingID string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/LiveTv/Recordings/"+url.PathEscape(recordingID), nil, nil)
	return err
}
