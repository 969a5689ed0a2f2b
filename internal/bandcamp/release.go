package bandcamp

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"stagefeed/internal/listing"
)

const pagePropertiesMeta = "bc-page-properties"

// ParseRelease extracts one release page (a single work, or a collection
// with its track listing) into a canonical digital Listing. MainCreatorID
// is left empty; the caller assigns it once the owning profile exists.
func ParseRelease(html string) (*listing.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse release page: %w", err)
	}

	isAlbum := doc.Find("table.track_list").Length() > 0

	title := strings.TrimSpace(doc.Find("h2.trackTitle").First().Text())

	artistSection := doc.Find("h3.albumTitle").First()
	if artistSection.Length() == 0 {
		artistSection = doc.Find(`h3[style="margin:0px;"]`).First()
	}
	artist := strings.TrimSpace(artistSection.Find("a").First().Text())

	coverImage, _ := doc.Find("a.popupImage").First().Attr("href")

	var tags []string
	doc.Find("div.tralbumData.tralbum-tags a").Each(func(_ int, a *goquery.Selection) {
		if tag := strings.TrimSpace(a.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})

	releaseDate := extractReleaseDate(doc)
	description := strings.TrimSpace(doc.Find("div.tralbumData.tralbum-about").First().Text())

	var embed string
	if itemID := extractItemID(doc); itemID != "" {
		embed = listing.EmbedMarkup(isAlbum, itemID, title, artist)
	}

	var tracks []listing.Track
	if isAlbum {
		doc.Find("tr.track_row_view").Each(func(_ int, row *goquery.Selection) {
			url, _ := row.Find("a[href]").First().Attr("href")
			tracks = append(tracks, listing.Track{
				Title:    strings.TrimSpace(row.Find("a.track-title").First().Text()),
				Duration: strings.TrimSpace(row.Find("span.time").First().Text()),
				URL:      url,
			})
		})
	}
	if tracks == nil {
		tracks = []listing.Track{}
	}

	fields := make([]listing.Field, 0, len(tags)+1)
	for _, tag := range tags {
		fields = append(fields, listing.Field{
			ID:    listing.HashID(tag),
			Type:  "tag",
			Label: "Genre Tag",
			Value: tag,
		})
	}
	if embed != "" {
		fields = append(fields, listing.Field{
			ID:    listing.HashID(embed),
			Type:  "embedded_links",
			Label: "bandcamp",
			Value: listing.Embed{URL: embed, Caption: ""},
		})
	}

	vorm := "track"
	if isAlbum {
		vorm = "album"
	}

	var eventDate *string
	var startDate *string
	if releaseDate != "" {
		startDate = &releaseDate
		stamped := releaseDate + " 00:00:00"
		eventDate = &stamped
	}

	tagg := "music"
	return &listing.Listing{
		Title:            title,
		CoverImage:       listing.StringPtr(coverImage),
		ShortDescription: "",
		LongDescription:  listing.Truncate(description, listing.MaxLongDescription),
		Creators:         artist,
		Lineup:           []string{},
		EventDate:        eventDate,
		HasComments:      true,
		TicketType:       listing.TicketDigital,
		TypeProperties: listing.DigitalProps{
			Tagg: "music",
			EventTime: listing.EventTime{
				Start: listing.TimePoint{Date: startDate},
			},
			DigitalType: "",
		},
		Tracks:           tracks,
		AdditionalFields: fields,
		Vorm:             &vorm,
		Tagg:             &tagg,
		MainCreatorName:  listing.StringPtr(artist),
	}, nil
}

// extractReleaseDate scans the credits block for the line starting with
// the literal "released" and reformats the remainder. Lines that do not
// parse are dropped entirely so a malformed date never reaches the
// backend.
func extractReleaseDate(doc *goquery.Document) string {
	credits := doc.Find("div.tralbumData.tralbum-credits").First().Text()
	for _, line := range strings.Split(credits, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "released") {
			continue
		}
		raw := strings.TrimPrefix(line, "released")
		if date, ok := listing.ParseReleaseDate(raw); ok {
			return date
		}
		return ""
	}
	return ""
}

// extractItemID digs the numeric item id out of the page-properties meta
// tag. The content attribute is JSON-ish; the value is the substring
// between the "item_id" key and the next comma, quotes stripped.
func extractItemID(doc *goquery.Document) string {
	content, ok := doc.Find(fmt.Sprintf(`meta[name=%q]`, pagePropertiesMeta)).First().Attr("content")
	if !ok {
		return ""
	}
	const key = `"item_id":`
	start := strings.Index(content, key)
	if start < 0 {
		return ""
	}
	rest := content[start+len(key):]
	if end := strings.Index(rest, ","); end >= 0 {
		rest = rest[:end]
	}
	return strings.Trim(strings.TrimSpace(rest), `"`)
}
