package show

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/tvmaze"
)

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// stripTags removes the markup TVMaze embeds in summaries.
func stripTags(s string) string {
	return strings.TrimSpace(htmlTags.ReplaceAllString(s, ""))
}

// datePrefix reduces an ISO timestamp to its date part.
func datePrefix(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// FromTVMaze converts a TVMaze show, with its embedded episodes and cast,
// into the canonical shape.
func FromTVMaze(s *tvmaze.Show) *Show {
	if s == nil {
		return nil
	}

	out := &Show{
		ID:        strconv.Itoa(s.ID),
		Name:      s.Name,
		Summary:   stripTags(s.Summary),
		Genres:    s.Genres,
		Premiered: datePrefix(s.Premiered),
		Status:    s.Status,
		IsMovie:   strings.EqualFold(s.Type, "movie"),
	}

	if s.Rating != nil && s.Rating.Average != nil {
		r := *s.Rating.Average
		out.Rating = &r
	}
	if s.Image != nil {
		out.Image = &Image{Original: s.Image.Original, Medium: s.Image.Medium}
	}
	// Streaming-only shows carry a webChannel instead of a network.
	if n := s.Network; n != nil {
		out.Network = &Network{Name: n.Name}
	} else if w := s.WebChannel; w != nil {
		out.Network = &Network{Name: w.Name}
	}
	if e := s.Externals; e != nil {
		out.ExternalIDs = ExternalIDs{IMDB: e.IMDB, TheTVDB: e.TheTVDB, TVMaze: s.ID}
	} else {
		out.ExternalIDs = ExternalIDs{TVMaze: s.ID}
	}

	if s.Embedded != nil {
		for _, ep := range s.Embedded.Episodes {
			out.Episodes = append(out.Episodes, Episode{
				ID:       strconv.Itoa(ep.ID),
				Season:   ep.Season,
				Number:   ep.Number,
				Name:     ep.Name,
				Airdate:  ep.Airdate,
				Airstamp: ep.Airstamp,
				Runtime:  ep.Runtime,
				Summary:  stripTags(ep.Summary),
			})
		}
		for _, c := range s.Embedded.Cast {
			member := CastMember{
				PersonName:    c.Person.Name,
				CharacterName: c.Character.Name,
			}
			if c.Person.Image != nil {
				member.PersonImage = c.Person.Image.Medium
			}
			out.Cast = append(out.Cast, member)
		}
	}

	return out
}

// jellyfinImageURL builds an image URL for an item's tagged image.
func jellyfinImageURL(host, itemID, imageType, tag string) string {
	return fmt.Sprintf("%s/Items/%s/Images/%s?tag=%s", host, itemID, imageType, tag)
}

// FromJellyfinItem converts a Jellyfin library item into the canonical
// shape. The result is marked as a fallback so callers know richer
// catalog metadata may still be worth fetching. Movies get a single
// synthetic episode so episode-oriented views can render them.
func FromJellyfinItem(item *jellyfin.Item, host string) *Show {
	if item == nil {
		return nil
	}

	out := &Show{
		ID:               item.ID,
		Name:             item.Name,
		Summary:          item.Overview,
		Genres:           item.Genres,
		Premiered:        datePrefix(item.PremiereDate),
		ContentRating:    item.OfficialRating,
		Status:           item.Status,
		JellyfinFallback: true,
		IsMovie:          strings.EqualFold(item.Type, "movie"),
	}

	if item.CommunityRating != nil {
		r := *item.CommunityRating
		out.Rating = &r
	}
	if len(item.Studios) > 0 {
		out.Network = &Network{Name: item.Studios[0].Name}
	}
	out.Image = jellyfinImage(item, host)
	out.ExternalIDs = externalIDsFromProviders(item.ProviderIDs)

	for _, p := range item.People {
		if p.Type != "" && !strings.EqualFold(p.Type, "actor") {
			continue
		}
		member := CastMember{PersonName: p.Name, CharacterName: p.Role}
		if p.PrimaryImageTag != "" && p.ID != "" {
			member.PersonImage = jellyfinImageURL(host, p.ID, "Primary", p.PrimaryImageTag)
		}
		out.Cast = append(out.Cast, member)
	}

	if out.IsMovie {
		out.Episodes = []Episode{movieEpisode(item)}
	}

	return out
}

// jellyfinImage picks a poster from the item's image tags, preferring
// Primary, then Thumb, then Banner, and a background from the first
// backdrop falling back to Thumb.
func jellyfinImage(item *jellyfin.Item, host string) *Image {
	var img Image
	for _, kind := range []string{"Primary", "Thumb", "Banner"} {
		if tag, ok := item.ImageTags[kind]; ok && tag != "" {
			img.Original = jellyfinImageURL(host, item.ID, kind, tag)
			img.Medium = img.Original
			break
		}
	}
	if len(item.BackdropImageTags) > 0 {
		img.Background = jellyfinImageURL(host, item.ID, "Backdrop/0", item.BackdropImageTags[0])
	} else if tag, ok := item.ImageTags["Thumb"]; ok && tag != "" {
		img.Background = jellyfinImageURL(host, item.ID, "Thumb", tag)
	}
	if img.Original == "" && img.Background == "" {
		return nil
	}
	return &img
}

// movieEpisode synthesizes the single pseudo-episode a movie is presented
// as. Runtime ticks are 100ns units.
func movieEpisode(item *jellyfin.Item) Episode {
	runtime := 0
	if item.RunTimeTicks > 0 {
		runtime = int(math.Round(float64(item.RunTimeTicks) / 10_000_000 / 60))
	}
	return Episode{
		ID:         item.ID,
		Season:     1,
		Number:     1,
		Name:       item.Name,
		Airdate:    datePrefix(item.PremiereDate),
		Runtime:    runtime,
		Summary:    item.Overview,
		JellyfinID: item.ID,
	}
}

func externalIDsFromProviders(providers map[string]string) ExternalIDs {
	var ids ExternalIDs
	for k, v := range providers {
		switch strings.ToLower(k) {
		case "imdb":
			ids.IMDB = v
		case "tvdb":
			if n, err := strconv.Atoi(v); err == nil {
				ids.TheTVDB = n
			}
		case "tvmaze":
			if n, err := strconv.Atoi(v); err == nil {
				ids.TVMaze = n
			}
		}
	}
	return ids
}
