package jellyfin

// Types in this file mirror the Jellyfin Live-TV wire schema (PascalCase
// JSON). Index numbers are pointers because the server omits them for
// programs that are not episodic.

type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

type AuthResult struct {
	User        User   `json:"User"`
	AccessToken string `json:"AccessToken"`
}

type Channel struct {
	ID            string `json:"Id"`
	Name          string `json:"Name"`
	ChannelNumber string `json:"ChannelNumber,omitempty"`
	ChannelType   string `json:"ChannelType,omitempty"`
}

type Program struct {
	ID                    string            `json:"Id"`
	Name                  string            `json:"Name"`
	ChannelID             string            `json:"ChannelId"`
	ChannelName           string            `json:"ChannelName,omitempty"`
	SeriesID              string            `json:"SeriesId,omitempty"`
	SeriesName            string            `json:"SeriesName,omitempty"`
	EpisodeTitle          string            `json:"EpisodeTitle,omitempty"`
	Overview              string            `json:"Overview,omitempty"`
	ServiceName           string            `json:"ServiceName,omitempty"`
	SeasonID              string            `json:"SeasonId,omitempty"`
	ParentIndexNumber     *int              `json:"ParentIndexNumber,omitempty"`
	IndexNumber           *int              `json:"IndexNumber,omitempty"`
	StartDate             string            `json:"StartDate"`
	EndDate               string            `json:"EndDate"`
	IsPremiere            bool              `json:"IsPremiere,omitempty"`
	PremiereDate          string            `json:"PremiereDate,omitempty"`
	TimerID               string            `json:"TimerId,omitempty"`
	SeriesTimerID         string            `json:"SeriesTimerId,omitempty"`
	CommunityRating       *float64          `json:"CommunityRating,omitempty"`
	OfficialRating        string            `json:"OfficialRating,omitempty"`
	Genres                []string          `json:"Genres,omitempty"`
	RunTimeTicks          int64             `json:"RunTimeTicks,omitempty"`
	People                []Person          `json:"People,omitempty"`
	Studios               []Studio          `json:"Studios,omitempty"`
	Status                string            `json:"Status,omitempty"`
	ImageTags             map[string]string `json:"ImageTags,omitempty"`
	BackdropImageTags     []string          `json:"BackdropImageTags,omitempty"`
	SeriesPrimaryImageTag string            `json:"SeriesPrimaryImageTag,omitempty"`
	ProviderIDs           map[string]string `json:"ProviderIds,omitempty"`
}

// Timer is a scheduled single recording. Timers are ephemeral: they exist
// only until the recording completes or is cancelled.
type Timer struct {
	ID                    string            `json:"Id"`
	Type                  string            `json:"Type,omitempty"`
	TimerType             string            `json:"TimerType,omitempty"`
	ProgramID             string            `json:"ProgramId,omitempty"`
	ChannelID             string            `json:"ChannelId,omitempty"`
	ChannelName           string            `json:"ChannelName,omitempty"`
	SeriesID              string            `json:"SeriesId,omitempty"`
	Name                  string            `json:"Name,omitempty"`
	SeriesName            string            `json:"SeriesName,omitempty"`
	EpisodeTitle          string            `json:"EpisodeTitle,omitempty"`
	Overview              string            `json:"Overview,omitempty"`
	SeasonID              string            `json:"SeasonId,omitempty"`
	ParentIndexNumber     *int              `json:"ParentIndexNumber,omitempty"`
	IndexNumber           *int              `json:"IndexNumber,omitempty"`
	StartDate             string            `json:"StartDate"`
	EndDate               string            `json:"EndDate"`
	PremiereDate          string            `json:"PremiereDate,omitempty"`
	Status                string            `json:"Status,omitempty"`
	RunTimeTicks          int64             `json:"RunTimeTicks,omitempty"`
	SeriesPrimaryImageTag string            `json:"SeriesPrimaryImageTag,omitempty"`
	ImageTags             map[string]string `json:"ImageTags,omitempty"`
}

// SeriesTimer is a standing rule to record a series; it persists until
// explicitly cancelled.
type SeriesTimer struct {
	ID              string            `json:"Id"`
	Type            string            `json:"Type,omitempty"`
	SeriesID        string            `json:"SeriesId,omitempty"`
	ChannelID       string            `json:"ChannelId,omitempty"`
	ProgramID       string            `json:"ProgramId,omitempty"`
	Name            string            `json:"Name,omitempty"`
	SeriesName      string            `json:"SeriesName,omitempty"`
	RecordAnyTime   bool              `json:"RecordAnyTime,omitempty"`
	RecordAnyChannel bool             `json:"RecordAnyChannel,omitempty"`
	RecordNewOnly   bool              `json:"RecordNewOnly,omitempty"`
	ImageTags       map[string]string `json:"ImageTags,omitempty"`
}

type Recording struct {
	ID                    string            `json:"Id"`
	Name                  string            `json:"Name"`
	EpisodeTitle          string            `json:"EpisodeTitle,omitempty"`
	Overview              string            `json:"Overview,omitempty"`
	ChannelID             string            `json:"ChannelId,omitempty"`
	ChannelName           string            `json:"ChannelName,omitempty"`
	SeriesID              string            `json:"SeriesId,omitempty"`
	SeriesName            string            `json:"SeriesName,omitempty"`
	SeasonID              string            `json:"SeasonId,omitempty"`
	IsSeries              bool              `json:"IsSeries,omitempty"`
	DateCreated           string            `json:"DateCreated,omitempty"`
	StartDate             string            `json:"StartDate,omitempty"`
	EndDate               string            `json:"EndDate,omitempty"`
	Status                string            `json:"Status,omitempty"`
	ImageTags             map[string]string `json:"ImageTags,omitempty"`
	SeriesPrimaryImageTag string            `json:"SeriesPrimaryImageTag,omitempty"`
}

// Item is a generic library item (series, movie, episode, recording).
type Item struct {
	ID                string            `json:"Id"`
	Name              string            `json:"Name"`
	Type              string            `json:"Type"`
	EpisodeTitle      string            `json:"EpisodeTitle,omitempty"`
	Overview          string            `json:"Overview,omitempty"`
	SeriesID          string            `json:"SeriesId,omitempty"`
	SeriesName        string            `json:"SeriesName,omitempty"`
	SeasonID          string            `json:"SeasonId,omitempty"`
	PremiereDate      string            `json:"PremiereDate,omitempty"`
	Genres            []string          `json:"Genres,omitempty"`
	Studios           []Studio          `json:"Studios,omitempty"`
	OfficialRating    string            `json:"OfficialRating,omitempty"`
	CommunityRating   *float64          `json:"CommunityRating,omitempty"`
	ProviderIDs       map[string]string `json:"ProviderIds,omitempty"`
	DateCreated       string            `json:"DateCreated,omitempty"`
	Status            string            `json:"Status,omitempty"`
	People            []Person          `json:"People,omitempty"`
	ImageTags         map[string]string `json:"ImageTags,omitempty"`
	BackdropImageTags []string          `json:"BackdropImageTags,omitempty"`
	RunTimeTicks      int64             `json:"RunTimeTicks,omitempty"`
	ParentIndexNumber *int              `json:"ParentIndexNumber,omitempty"`
	IndexNumber       *int              `json:"IndexNumber,omitempty"`
}

type Person struct {
	ID              string `json:"Id,omitempty"`
	Name            string `json:"Name"`
	Role            string `json:"Role,omitempty"`
	Type            string `json:"Type,omitempty"`
	PrimaryImageTag string `json:"PrimaryImageTag,omitempty"`
}

type Studio struct {
	Name string `json:"Name"`
}

// itemsEnvelope is the {Items: [...]} collection wrapper every list
// endpoint responds with.
type itemsEnvelope[T any] struct {
	Items []T `json:"Items"`
}
