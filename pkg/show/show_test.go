package show

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/tvmaze"
)

func TestKey(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"country variant":   {"The Office (US)", "theofficeus"},
		"hyphenated":        {"Brooklyn Nine-Nine", "brooklynninenine"},
		"punctuation":       {"It's Always Sunny!", "itsalwayssunny"},
		"digits kept":       {"9-1-1", "911"},
		"whitespace":        {"  Doctor   Who  ", "doctorwho"},
		"empty":             {"", ""},
		"symbols only":      {"?!-", ""},
		"already canonical": {"theofficeus", "theofficeus"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Key(tc.in))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	for _, s := range []string{"The Office (US)", "Brooklyn Nine-Nine", "M*A*S*H"} {
		once := Key(s)
		assert.Equal(t, once, Key(once))
	}
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("The Office (US)", "the office us"))
	assert.False(t, SameName("The Office", "Parks and Recreation"))
	// Empty keys never match, including each other.
	assert.False(t, SameName("", ""))
	assert.False(t, SameName("***", "???"))
}

func TestMatchAny(t *testing.T) {
	assert.True(t, MatchAny("The Office (US)", "Parks and Rec", "the office us"))
	assert.False(t, MatchAny("The Office", "Parks and Rec"))
	assert.False(t, MatchAny("", ""))
}

func TestFromTVMaze(t *testing.T) {
	avg := 8.5
	s := &tvmaze.Show{
		ID:        526,
		Name:      "The Office",
		Type:      "Scripted",
		Summary:   "<p>A mockumentary about <b>office life</b>.</p>",
		Genres:    []string{"Comedy"},
		Premiered: "2005-03-24",
		Status:    "Ended",
		Rating:    &tvmaze.Rating{Average: &avg},
		Image:     &tvmaze.Image{Medium: "http://img/med.jpg", Original: "http://img/orig.jpg"},
		Network:   &tvmaze.Network{Name: "NBC"},
		Externals: &tvmaze.Externals{TheTVDB: 73244, IMDB: "tt0386676"},
		Embedded: &tvmaze.Embedded{
			Episodes: []tvmaze.Episode{
				{ID: 1, Season: 1, Number: 1, Name: "Pilot", Airdate: "2005-03-24", Airstamp: "2005-03-25T01:30:00+00:00", Runtime: 30, Summary: "<p>Pilot.</p>"},
			},
			Cast: []tvmaze.Cast{
				{Person: tvmaze.Person{Name: "Steve Carell", Image: &tvmaze.Image{Medium: "http://img/steve.jpg"}}, Character: tvmaze.Character{Name: "Michael Scott"}},
			},
		},
	}

	got := FromTVMaze(s)
	require.NotNil(t, got)
	assert.Equal(t, "526", got.ID)
	assert.Equal(t, "A mockumentary about office life.", got.Summary)
	assert.Equal(t, "2005-03-24", got.Premiered)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 8.5, *got.Rating)
	assert.Equal(t, "NBC", got.Network.Name)
	assert.False(t, got.JellyfinFallback)
	assert.False(t, got.IsMovie)
	assert.Equal(t, ExternalIDs{IMDB: "tt0386676", TheTVDB: 73244, TVMaze: 526}, got.ExternalIDs)

	require.Len(t, got.Episodes, 1)
	assert.Equal(t, "1", got.Episodes[0].ID)
	assert.Equal(t, "Pilot.", got.Episodes[0].Summary)
	assert.Empty(t, got.Episodes[0].JellyfinID)

	require.Len(t, got.Cast, 1)
	assert.Equal(t, "Steve Carell", got.Cast[0].PersonName)
	assert.Equal(t, "Michael Scott", got.Cast[0].CharacterName)
	assert.Equal(t, "http://img/steve.jpg", got.Cast[0].PersonImage)
}

func TestFromTVMazeNil(t *testing.T) {
	assert.Nil(t, FromTVMaze(nil))
	assert.Nil(t, FromJellyfinItem(nil, "http://jf"))
}

func TestFromTVMazeWebChannelFallback(t *testing.T) {
	got := FromTVMaze(&tvmaze.Show{ID: 1, Name: "Streamer", WebChannel: &tvmaze.Network{Name: "Netflix"}})
	require.NotNil(t, got.Network)
	assert.Equal(t, "Netflix", got.Network.Name)
	assert.Equal(t, ExternalIDs{TVMaze: 1}, got.ExternalIDs)
}

func TestFromJellyfinItemSeries(t *testing.T) {
	rating := 7.9
	item := &jellyfin.Item{
		ID:              "abc123",
		Name:            "Severance",
		Type:            "Series",
		Overview:        "Work-life balance, surgically enforced.",
		PremiereDate:    "2022-02-18T00:00:00.0000000Z",
		OfficialRating:  "TV-MA",
		CommunityRating: &rating,
		Studios:         []jellyfin.Studio{{Name: "Apple TV+"}},
		ImageTags:       map[string]string{"Primary": "tagP", "Thumb": "tagT"},
		BackdropImageTags: []string{"tagB"},
		ProviderIDs:     map[string]string{"Imdb": "tt11280740", "Tvdb": "371980"},
		People: []jellyfin.Person{
			{ID: "p1", Name: "Adam Scott", Role: "Mark Scout", Type: "Actor", PrimaryImageTag: "tagA"},
			{ID: "p2", Name: "Ben Stiller", Role: "Director", Type: "Director"},
		},
	}

	got := FromJellyfinItem(item, "http://jf:8096")
	require.NotNil(t, got)
	assert.True(t, got.JellyfinFallback)
	assert.False(t, got.IsMovie)
	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "2022-02-18", got.Premiered)
	assert.Equal(t, "TV-MA", got.ContentRating)
	assert.Equal(t, "Apple TV+", got.Network.Name)
	assert.Equal(t, ExternalIDs{IMDB: "tt11280740", TheTVDB: 371980}, got.ExternalIDs)
	assert.Empty(t, got.Episodes)

	require.NotNil(t, got.Image)
	assert.Equal(t, "http://jf:8096/Items/abc123/Images/Primary?tag=tagP", got.Image.Original)
	assert.Equal(t, "http://jf:8096/Items/abc123/Images/Backdrop/0?tag=tagB", got.Image.Background)

	// Only actors make the cast list.
	require.Len(t, got.Cast, 1)
	assert.Equal(t, "Adam Scott", got.Cast[0].PersonName)
	assert.Equal(t, "http://jf:8096/Items/p1/Images/Primary?tag=tagA", got.Cast[0].PersonImage)
}

func TestFromJellyfinItemMovie(t *testing.T) {
	// 2h 15m in 100ns ticks.
	ticks := int64((2*3600 + 15*60)) * 10_000_000
	item := &jellyfin.Item{
		ID:           "mv1",
		Name:         "Heat",
		Type:         "Movie",
		PremiereDate: "1995-12-15T00:00:00Z",
		RunTimeTicks: ticks,
	}

	got := FromJellyfinItem(item, "http://jf")
	require.True(t, got.IsMovie)
	require.Len(t, got.Episodes, 1)

	ep := got.Episodes[0]
	assert.Equal(t, 1, ep.Season)
	assert.Equal(t, 1, ep.Number)
	assert.Equal(t, "Heat", ep.Name)
	assert.Equal(t, "1995-12-15", ep.Airdate)
	assert.Equal(t, 135, ep.Runtime)
	assert.Equal(t, "mv1", ep.JellyfinID)
}

func TestFromJellyfinItemImageFallbacks(t *testing.T) {
	item := &jellyfin.Item{
		ID:        "x",
		Name:      "Show",
		ImageTags: map[string]string{"Thumb": "tagT"},
	}
	got := FromJellyfinItem(item, "http://jf")
	require.NotNil(t, got.Image)
	assert.Equal(t, "http://jf/Items/x/Images/Thumb?tag=tagT", got.Image.Original)
	assert.Equal(t, "http://jf/Items/x/Images/Thumb?tag=tagT", got.Image.Background)

	bare := FromJellyfinItem(&jellyfin.Item{ID: "y", Name: "No Art"}, "http://jf")
	assert.Nil(t, bare.Image)
}
