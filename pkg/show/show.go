// Package show defines the canonical, source-agnostic representation of a
// series or movie and the normalizers that produce it from either the
// TVMaze catalog or the Jellyfin media server. Reconciliation elsewhere in
// the tree only ever sees these types.
package show

// Show is the canonical shape shared by every reconciliation path. ID is
// source-scoped: a TVMaze numeric id rendered as a string, or a Jellyfin
// GUID when JellyfinFallback is set.
type Show struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Summary       string       `json:"summary"`
	Genres        []string     `json:"genres"`
	Premiered     string       `json:"premiered,omitempty"`
	Rating        *float64     `json:"rating,omitempty"`
	ContentRating string       `json:"contentRating,omitempty"`
	Image         *Image       `json:"image,omitempty"`
	Network       *Network     `json:"network,omitempty"`
	Status        string       `json:"status"`
	Episodes      []Episode    `json:"episodes"`
	Cast          []CastMember `json:"cast,omitempty"`
	ExternalIDs   ExternalIDs  `json:"externalIds"`

	// JellyfinFallback marks a show assembled from the media server's own
	// item schema because the catalog had no record for it.
	JellyfinFallback bool `json:"jellyfinFallback"`
	IsMovie          bool `json:"isMovie"`
}

// Episode is one canonical episode. Airdate is a coarser, always-present
// fallback of Airstamp: sources that only share a date still populate it.
type Episode struct {
	ID       string `json:"id"`
	Season   int    `json:"season"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Airdate  string `json:"airdate,omitempty"`
	Airstamp string `json:"airstamp,omitempty"`
	Runtime  int    `json:"runtime"`
	Summary  string `json:"summary,omitempty"`

	// JellyfinID back-references the library item for episodes synthesized
	// directly from a media-server record (movies).
	JellyfinID string `json:"jellyfinId,omitempty"`
}

type Image struct {
	Original   string `json:"original,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Background string `json:"background,omitempty"`
}

type Network struct {
	Name string `json:"name"`
}

type CastMember struct {
	PersonName    string `json:"personName"`
	PersonImage   string `json:"personImage,omitempty"`
	CharacterName string `json:"characterName"`
}

// ExternalIDs carries cross-catalog identifiers when a source exposes them.
type ExternalIDs struct {
	IMDB    string `json:"imdb,omitempty"`
	TheTVDB int    `json:"thetvdb,omitempty"`
	TVMaze  int    `json:"tvmaze,omitempty"`
}

// HasAny reports whether at least one external identifier is present.
func (e ExternalIDs) HasAny() bool {
	return e.IMDB != "" || e.TheTVDB != 0 || e.TVMaze != 0
}
