package ra

import (
	"fmt"

	"stagefeed/internal/listing"
)

// ListingFromEvent maps one event record into a canonical physical
// Listing, given its venue context. The event date is carried verbatim
// and the long description stays empty; only the release path reformats
// dates and truncates descriptions.
func ListingFromEvent(ev Event, venue *Venue) *listing.Listing {
	title := ev.Title
	if title == "" {
		title = "Untitled Event"
	}

	// An empty image collection means no cover, not a failed event.
	var cover *string
	if len(ev.Images) > 0 && ev.Images[0].Filename != "" {
		cover = &ev.Images[0].Filename
	}

	lineup := make([]string, 0, len(ev.Artists))
	for _, artist := range ev.Artists {
		lineup = append(lineup, artist.Name)
	}

	host := venue.Name
	if host == "" {
		host = "Unknown Host"
	}
	location := venue.Address
	if location == "" {
		location = "Unknown Location"
	}

	return &listing.Listing{
		Title:            title,
		CoverImage:       cover,
		ShortDescription: venue.Address,
		LongDescription:  "",
		Creators:         []string{},
		Lineup:           lineup,
		EventDate:        listing.StringPtr(ev.Date),
		HasComments:      true,
		TicketType:       listing.TicketPhysical,
		TypeProperties: listing.PhysicalProps{
			Host:     host,
			Location: location,
		},
		Tracks:          []listing.Track{},
		MainCreatorName: listing.StringPtr(venue.Name),
	}
}

// Profile converts the venue context into the identity record inserted
// before any of its event listings.
func (v *Venue) Profile() *listing.Profile {
	website := siteURL + v.ContentURL
	return &listing.Profile{
		Username:          v.Name,
		DisplayName:       v.Name,
		Email:             fmt.Sprintf("venue_%s@dummy.com", v.ID),
		ProfilePictureURL: listing.StringPtr(v.LogoURL),
		Description:       v.Blurb,
		SocialLinks:       []string{},
		WebsiteURL:        &website,
		IsVenue:           true,
	}
}
