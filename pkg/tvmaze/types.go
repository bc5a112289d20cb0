package tvmaze

// Show is a TVMaze show record, optionally carrying embedded episodes and
// cast when the query asked for them.
type Show struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Type       string     `json:"type,omitempty"`
	Summary    string     `json:"summary"`
	Genres     []string   `json:"genres"`
	Premiered  string     `json:"premiered"`
	Status     string     `json:"status"`
	Rating     *Rating    `json:"rating,omitempty"`
	Image      *Image     `json:"image,omitempty"`
	Network    *Network   `json:"network,omitempty"`
	WebChannel *Network   `json:"webChannel,omitempty"`
	Externals  *Externals `json:"externals,omitempty"`
	Embedded   *Embedded  `json:"_embedded,omitempty"`
}

type Rating struct {
	Average *float64 `json:"average"`
}

type Image struct {
	Medium   string `json:"medium,omitempty"`
	Original string `json:"original,omitempty"`
}

type Network struct {
	Name string `json:"name"`
}

type Externals struct {
	TVRage  int    `json:"tvrage,omitempty"`
	TheTVDB int    `json:"thetvdb,omitempty"`
	IMDB    string `json:"imdb,omitempty"`
}

type Embedded struct {
	Episodes []Episode `json:"episodes,omitempty"`
	Cast     []Cast    `json:"cast,omitempty"`
}

type Episode struct {
	ID       int    `json:"id"`
	Season   int    `json:"season"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Airdate  string `json:"airdate"`
	Airstamp string `json:"airstamp"`
	Runtime  int    `json:"runtime"`
	Summary  string `json:"summary"`
}

type Cast struct {
	Person    Person    `json:"person"`
	Character Character `json:"character"`
}

type Person struct {
	Name  string `json:"name"`
	Image *Image `json:"image,omitempty"`
}

type Character struct {
	Name string `json:"name"`
}

// SearchResult is one hit from the show-search endpoint.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  *Show   `json:"show"`
}
