// Package ingest sequences fetch, extract and persist over one artist
// catalog or one venue's event batch. Item-level failures are logged and
// skipped; only a failed profile insert aborts a run.
package ingest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"stagefeed/internal/bandcamp"
	"stagefeed/internal/listing"
	"stagefeed/internal/ra"
)

// Fetcher retrieves one raw document over HTTP.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// VenueAPI supplies the venue context and event batch for one venue.
type VenueAPI interface {
	VenueDetails(ctx context.Context, venueID string) (*ra.Venue, error)
}

// Gateway persists profiles and listings, returning generated ids.
type Gateway interface {
	CreateProfile(ctx context.Context, p *listing.Profile) (string, error)
	CreateListing(ctx context.Context, l *listing.Listing) (string, error)
}

// Summary reports the outcome of one run.
type Summary struct {
	ProfileID string
	Imported  int
	Skipped   int
}

// Importer drives ingestion runs end to end, synchronously: one item at
// a time, no retries.
type Importer struct {
	fetcher Fetcher
	venues  VenueAPI
	gateway Gateway
	log     zerolog.Logger
}

// New assembles an Importer from its collaborators.
func New(fetcher Fetcher, venues VenueAPI, gateway Gateway, log zerolog.Logger) *Importer {
	return &Importer{fetcher: fetcher, venues: venues, gateway: gateway, log: log}
}

// ImportArtist processes one artist's full catalog: parse the catalog
// page, create the profile, then fetch, extract and persist each release
// in order. Returns the run summary; an error means nothing beyond the
// failing step was attempted.
func (im *Importer) ImportArtist(ctx context.Context, catalogURL string) (Summary, error) {
	html, err := im.fetcher.Get(ctx, catalogURL)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch catalog: %w", err)
	}

	catalog, err := bandcamp.ParseCatalog(html)
	if err != nil {
		return Summary{}, fmt.Errorf("extract catalog: %w", err)
	}
	if catalog.ArtistName == "" {
		im.log.Warn().Str("url", catalogURL).Msg("could not determine artist name from catalog page")
	}

	profileID, err := im.gateway.CreateProfile(ctx, catalog.Profile())
	if err != nil {
		return Summary{}, fmt.Errorf("create profile: %w", err)
	}
	im.log.Info().Str("artist", catalog.ArtistName).Str("profile_id", profileID).Msg("profile created")

	base, err := url.Parse(catalogURL)
	if err != nil {
		return Summary{ProfileID: profileID}, fmt.Errorf("parse catalog url: %w", err)
	}

	summary := Summary{ProfileID: profileID}
	for _, ref := range catalog.Releases {
		releaseURL := resolveRef(base, ref.URL)

		log := im.log.With().Str("release", ref.Title).Str("url", releaseURL).Logger()
		log.Info().Msg("fetching release")

		releaseHTML, err := im.fetcher.Get(ctx, releaseURL)
		if err != nil {
			log.Error().Err(err).Msg("skipping release: fetch failed")
			summary.Skipped++
			continue
		}

		l, err := bandcamp.ParseRelease(releaseHTML)
		if err != nil {
			log.Error().Err(err).Msg("skipping release: extraction failed")
			summary.Skipped++
			continue
		}
		l.MainCreatorID = profileID

		if _, err := im.gateway.CreateListing(ctx, l); err != nil {
			log.Error().Err(err).Msg("skipping release: insert failed")
			summary.Skipped++
			continue
		}
		summary.Imported++
	}

	im.log.Info().
		Str("artist", catalog.ArtistName).
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Msg("artist import complete")
	return summary, nil
}

// ImportVenue processes one venue's latest event batch: fetch the venue
// context, create its profile, then map and persist each event.
func (im *Importer) ImportVenue(ctx context.Context, venueID string) (Summary, error) {
	venue, err := im.venues.VenueDetails(ctx, venueID)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch venue: %w", err)
	}

	profileID, err := im.gateway.CreateProfile(ctx, venue.Profile())
	if err != nil {
		return Summary{}, fmt.Errorf("create profile: %w", err)
	}
	im.log.Info().Str("venue", venue.Name).Str("profile_id", profileID).Msg("venue profile created")

	summary := Summary{ProfileID: profileID}
	for _, ev := range venue.Events {
		l := ra.ListingFromEvent(ev, venue)
		l.MainCreatorID = profileID

		if _, err := im.gateway.CreateListing(ctx, l); err != nil {
			im.log.Error().Err(err).Str("event", ev.Title).Msg("skipping event: insert failed")
			summary.Skipped++
			continue
		}
		summary.Imported++
	}

	im.log.Info().
		Str("venue", venue.Name).
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Msg("venue import complete")
	return summary, nil
}

// resolveRef joins a relative release href against the catalog URL.
// Catalog hrefs are absolute paths, so this drops the "/music" suffix of
// the catalog page and keeps its host.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
