// Package listing defines the canonical record both ingestion sources
// normalize into, plus the shared derivation rules (defaults, truncation,
// tag identifiers, embed markup) the extractors rely on.
package listing

// TicketType distinguishes digital releases from physical events.
type TicketType string

const (
	TicketDigital  TicketType = "digital"
	TicketPhysical TicketType = "physical"
)

// Track is one row of a collection's track listing.
type Track struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

// Field is one auxiliary tagged entry in additional_fields.
type Field struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Embed is the value payload of an "embedded_links" field.
type Embed struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// TimePoint is one side of an event time range. Both parts are optional.
type TimePoint struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// EventTime spans the start and end of a release's availability window.
type EventTime struct {
	Start TimePoint `json:"start"`
	End   TimePoint `json:"end"`
}

// DigitalProps is the type_properties shape for digital listings.
type DigitalProps struct {
	Tagg        string    `json:"tagg"`
	EventTime   EventTime `json:"eventTime"`
	DigitalType string    `json:"digitalType"`
}

// PhysicalProps is the type_properties shape for physical event listings.
type PhysicalProps struct {
	Host     string `json:"host"`
	Location string `json:"location"`
}

// Listing is the canonical normalized record persisted to the backend.
// Field names map 1:1 to backend columns. Exactly one of the release
// shape (Creators string, Vorm, Tracks, AdditionalFields) or the event
// shape (Lineup, nil Vorm) is populated, never a mix.
type Listing struct {
	Title            string     `json:"title"`
	CoverImage       *string    `json:"cover_image"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`
	Creators         any        `json:"creators"` // attribution string for releases, empty list for events
	Lineup           []string   `json:"lineup"`
	EventDate        *string    `json:"event_date"`
	HasComments      bool       `json:"has_comments"`
	TicketType       TicketType `json:"ticket_type"`
	TypeProperties   any        `json:"type_properties"` // DigitalProps or PhysicalProps
	Tracks           []Track    `json:"tracks"`
	AdditionalFields []Field    `json:"additional_fields"`
	Vorm             *string    `json:"vorm"` // "album" or "track", nil for events
	Tagg             *string    `json:"tagg"`
	PreviewURL       *string    `json:"preview_url"`
	MainCreatorID    string     `json:"main_creator_id"` // assigned once the owning profile is persisted
	MainCreatorName  *string    `json:"main_creator_name"`
	CoCreatorName    *string    `json:"co_creator_name"`
}

// Profile is the artist or venue identity record created once per
// catalog or venue run, before any of its listings.
type Profile struct {
	Username          string   `json:"username"`
	DisplayName       string   `json:"display_name"`
	Email             string   `json:"email"`
	Location          string   `json:"location,omitempty"`
	ProfilePictureURL *string  `json:"profile_picture_url"`
	ProfileBannerURL  *string  `json:"profile_banner_url"`
	Description       string   `json:"description"`
	SocialLinks       []string `json:"social_links"`
	WebsiteURL        *string  `json:"website_url"`
	IsVenue           bool     `json:"isvenue"`
}
