// Package bandcamp extracts artist catalogs and release pages from
// storefront markup into the canonical listing schema. Every structural
// anchor is independently optional: a missing section degrades to its
// documented default, it never fails the whole extraction.
package bandcamp

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"stagefeed/internal/listing"
)

// ReleaseKind classifies a catalog entry by its URL path segment.
type ReleaseKind string

const (
	KindTrack   ReleaseKind = "track"
	KindAlbum   ReleaseKind = "album"
	KindUnknown ReleaseKind = "unknown"
)

// ReleaseRef is a lightweight pointer to one release discovered on the
// catalog page. URL is relative to the storefront domain.
type ReleaseRef struct {
	URL      string
	Title    string
	ImageURL string
	Kind     ReleaseKind
}

// Catalog holds everything extracted from one artist catalog page.
type Catalog struct {
	ArtistName        string
	Location          string
	BannerURL         string
	ProfilePictureURL string
	Description       string
	SocialLinks       []string
	Releases          []ReleaseRef
}

// ParseCatalog extracts the artist profile and release references from
// the raw markup of a catalog page.
func ParseCatalog(html string) (*Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}

	cat := &Catalog{}

	cat.BannerURL, _ = doc.Find("div.desktop-header img").First().Attr("src")
	cat.ProfilePictureURL, _ = doc.Find("img.band-photo").First().Attr("src")

	nameLoc := doc.Find("p#band-name-location").First()
	cat.ArtistName = strings.TrimSpace(nameLoc.Find("span.title").First().Text())
	cat.Location = strings.TrimSpace(nameLoc.Find("span.location").First().Text())

	cat.Description = listing.NormSpace(doc.Find("p#bio-text").First().Text())

	doc.Find("ol#band-links li a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			cat.SocialLinks = append(cat.SocialLinks, href)
		}
	})

	doc.Find("ol#music-grid li.music-grid-item").Each(func(_ int, li *goquery.Selection) {
		link := li.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		ref := ReleaseRef{URL: href, Title: "Untitled", Kind: classifyRelease(href)}
		if title := strings.TrimSpace(link.Find("p.title").Text()); title != "" {
			ref.Title = title
		}
		if img, ok := link.Find("div.art img[src]").First().Attr("src"); ok {
			ref.ImageURL = img
		}
		cat.Releases = append(cat.Releases, ref)
	})

	return cat, nil
}

// Profile converts the catalog into the identity record inserted before
// any of the artist's listings.
func (c *Catalog) Profile() *listing.Profile {
	name := c.ArtistName
	if name == "" {
		name = "Unknown_Artist"
	}
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	username := strings.ReplaceAll(name, " ", "")

	links := c.SocialLinks
	if links == nil {
		links = []string{}
	}

	return &listing.Profile{
		Username:          username,
		DisplayName:       username,
		Email:             fmt.Sprintf("%s@dummy-bandcamp.com", slug),
		Location:          c.Location,
		ProfilePictureURL: listing.StringPtr(c.ProfilePictureURL),
		ProfileBannerURL:  listing.StringPtr(c.BannerURL),
		Description:       c.Description,
		SocialLinks:       links,
		IsVenue:           false,
	}
}

func classifyRelease(href string) ReleaseKind {
	switch {
	case strings.Contains(href, "/track/"):
		return KindTrack
	case strings.Contains(href, "/album/"):
		return KindAlbum
	default:
		return KindUnknown
	}
}
