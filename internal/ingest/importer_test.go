package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"stagefeed/internal/listing"
	"stagefeed/internal/ra"
)

const testCatalog = `<html><body>
<p id="band-name-location"><span class="title">Aural Conduct</span></p>
<ol id="music-grid">
  <li class="music-grid-item"><a href="/album/shocked-ep"><p class="title">Shocked EP</p></a></li>
  <li class="music-grid-item"><a href="/track/u-need-somebody"><p class="title">U Need Somebody</p></a></li>
</ol>
</body></html>`

const testAlbum = `<html><body>
<h2 class="trackTitle">Shocked EP</h2>
<table class="track_list">
  <tr class="track_row_view"><td><a class="track-title" href="/track/first-light">First Light</a></td></tr>
</table>
</body></html>`

const testTrack = `<html><body>
<h2 class="trackTitle">U Need Somebody</h2>
</body></html>`

const (
	catalogURL = "https://auralconduct.example.com/music"
	albumURL   = "https://auralconduct.example.com/album/shocked-ep"
	trackURL   = "https://auralconduct.example.com/track/u-need-somebody"
)

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (string, error) {
	body, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("get %s: unexpected status 404 Not Found", url)
	}
	return body, nil
}

type fakeVenueAPI struct {
	venue *ra.Venue
	err   error
}

func (f *fakeVenueAPI) VenueDetails(context.Context, string) (*ra.Venue, error) {
	return f.venue, f.err
}

type fakeGateway struct {
	profileID  string
	profileErr error
	listingErr map[string]error

	profiles []*listing.Profile
	listings []*listing.Listing
}

func (g *fakeGateway) CreateProfile(_ context.Context, p *listing.Profile) (string, error) {
	if g.profileErr != nil {
		return "", g.profileErr
	}
	g.profiles = append(g.profiles, p)
	return g.profileID, nil
}

func (g *fakeGateway) CreateListing(_ context.Context, l *listing.Listing) (string, error) {
	if err := g.listingErr[l.Title]; err != nil {
		return "", err
	}
	g.listings = append(g.listings, l)
	return fmt.Sprintf("ticket-%d", len(g.listings)), nil
}

func TestImportArtist(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		catalogURL: testCatalog,
		albumURL:   testAlbum,
		trackURL:   testTrack,
	}}
	gateway := &fakeGateway{profileID: "user-1"}

	im := New(fetcher, nil, gateway, zerolog.Nop())
	summary, err := im.ImportArtist(context.Background(), catalogURL)
	if err != nil {
		t.Fatalf("ImportArtist error: %v", err)
	}

	if summary.ProfileID != "user-1" || summary.Imported != 2 || summary.Skipped != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(gateway.profiles) != 1 || gateway.profiles[0].Username != "AuralConduct" {
		t.Errorf("profiles = %+v", gateway.profiles)
	}
	if len(gateway.listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(gateway.listings))
	}
	for _, l := range gateway.listings {
		if l.MainCreatorID != "user-1" {
			t.Errorf("listing %q MainCreatorID = %q", l.Title, l.MainCreatorID)
		}
	}
	if v := *gateway.listings[0].Vorm; v != "album" {
		t.Errorf("first listing vorm = %q", v)
	}
	if v := *gateway.listings[1].Vorm; v != "track" {
		t.Errorf("second listing vorm = %q", v)
	}
}

func TestImportArtistSkipsFailedRelease(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		catalogURL: testCatalog,
		albumURL:   testAlbum,
		// track page missing: fetch fails, batch continues
	}}
	gateway := &fakeGateway{profileID: "user-1"}

	im := New(fetcher, nil, gateway, zerolog.Nop())
	summary, err := im.ImportArtist(context.Background(), catalogURL)
	if err != nil {
		t.Fatalf("ImportArtist error: %v", err)
	}

	if summary.Imported != 1 || summary.Skipped != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestImportArtistSkipsFailedInsert(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		catalogURL: testCatalog,
		albumURL:   testAlbum,
		trackURL:   testTrack,
	}}
	gateway := &fakeGateway{
		profileID:  "user-1",
		listingErr: map[string]error{"Shocked EP": errors.New("insert failed")},
	}

	im := New(fetcher, nil, gateway, zerolog.Nop())
	summary, err := im.ImportArtist(context.Background(), catalogURL)
	if err != nil {
		t.Fatalf("ImportArtist error: %v", err)
	}

	if summary.Imported != 1 || summary.Skipped != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestImportArtistProfileFailureAborts(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		catalogURL: testCatalog,
	}}
	gateway := &fakeGateway{profileErr: errors.New("insert failed")}

	im := New(fetcher, nil, gateway, zerolog.Nop())
	if _, err := im.ImportArtist(context.Background(), catalogURL); err == nil {
		t.Fatal("expected error when profile creation fails")
	}
	if len(gateway.listings) != 0 {
		t.Errorf("no listings should be created, got %d", len(gateway.listings))
	}
}

func TestImportArtistCatalogFetchFailure(t *testing.T) {
	im := New(&fakeFetcher{}, nil, &fakeGateway{}, zerolog.Nop())
	if _, err := im.ImportArtist(context.Background(), catalogURL); err == nil {
		t.Fatal("expected error when catalog fetch fails")
	}
}

func TestImportVenue(t *testing.T) {
	venue := &ra.Venue{
		ID:      "137474",
		Name:    "De Marktkantine",
		Address: "Jan van Galenstraat 6",
		Events: []ra.Event{
			{Title: "Friday Night", Artists: []ra.Artist{{Name: "Kourosh"}, {Name: "Olga"}}},
			{Title: "Saturday All Night", Artists: []ra.Artist{{Name: "Dax"}}},
		},
	}
	gateway := &fakeGateway{profileID: "venue-user-1"}

	im := New(nil, &fakeVenueAPI{venue: venue}, gateway, zerolog.Nop())
	summary, err := im.ImportVenue(context.Background(), "137474")
	if err != nil {
		t.Fatalf("ImportVenue error: %v", err)
	}

	if summary.Imported != 2 || summary.Skipped != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(gateway.profiles) != 1 || !gateway.profiles[0].IsVenue {
		t.Errorf("profiles = %+v", gateway.profiles)
	}
	if len(gateway.listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(gateway.listings))
	}
	for _, l := range gateway.listings {
		if l.TicketType != listing.TicketPhysical {
			t.Errorf("listing %q ticket type = %q", l.Title, l.TicketType)
		}
		if l.MainCreatorID != "venue-user-1" {
			t.Errorf("listing %q MainCreatorID = %q", l.Title, l.MainCreatorID)
		}
	}
	if got := gateway.listings[0].Lineup; len(got) != 2 || got[0] != "Kourosh" || got[1] != "Olga" {
		t.Errorf("first lineup = %v", got)
	}
}

func TestImportVenueFetchFailure(t *testing.T) {
	im := New(nil, &fakeVenueAPI{err: errors.New("boom")}, &fakeGateway{}, zerolog.Nop())
	if _, err := im.ImportVenue(context.Background(), "137474"); err == nil {
		t.Fatal("expected error when venue fetch fails")
	}
}
