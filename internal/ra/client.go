// Package ra talks to the venue/event GraphQL directory and maps its
// event payloads into canonical listings.
package ra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultEndpoint is the public GraphQL endpoint of the directory.
	DefaultEndpoint = "https://ra.co/graphql"

	siteURL   = "https://ra.co"
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// ErrVenueMissing reports a response without the expected venue payload.
var ErrVenueMissing = errors.New("response is missing venue data")

// Artist is a performer reference inside a venue or event payload.
type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ContentURL string `json:"contentUrl"`
}

// Image is one entry of an event's image collection.
type Image struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Alt      string `json:"alt"`
	Type     string `json:"type"`
	Crop     string `json:"crop"`
}

// EventVenue is the abbreviated venue block nested inside an event.
type EventVenue struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	ContentURL string `json:"contentUrl"`
	Capacity   int    `json:"capacity"`
}

// Pick is the editorial blurb attached to highlighted events.
type Pick struct {
	ID    string `json:"id"`
	Blurb string `json:"blurb"`
}

// Event is one event record as returned by the venue query.
type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	InterestedCount int         `json:"interestedCount"`
	Date            string      `json:"date"`
	StartTime       string      `json:"startTime"`
	EndTime         string      `json:"endTime"`
	ContentURL      string      `json:"contentUrl"`
	FlyerFront      string      `json:"flyerFront"`
	Images          []Image     `json:"images"`
	Artists         []Artist    `json:"artists"`
	Venue           *EventVenue `json:"venue"`
	Pick            *Pick       `json:"pick"`
	IsTicketed      bool        `json:"isTicketed"`
	Attending       int         `json:"attending"`
	QueueItEnabled  bool        `json:"queueItEnabled"`
	NewEventForm    bool        `json:"newEventForm"`
}

// Venue is the full venue context for one fetch-and-upload run,
// including its latest events.
type Venue struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	LogoURL            string   `json:"logoUrl"`
	Photo              string   `json:"photo"`
	Blurb              string   `json:"blurb"`
	Address            string   `json:"address"`
	ContentURL         string   `json:"contentUrl"`
	FollowerCount      int      `json:"followerCount"`
	Capacity           int      `json:"capacity"`
	TopArtists         []Artist `json:"topArtists"`
	EventCountThisYear int      `json:"eventCountThisYear"`
	Events             []Event  `json:"events"`
}

const venueQuery = `
query GET_VENUE_MOREON($id: ID!, $excludeEventId: ID = 0) {
    venue(id: $id) {
        id
        name
        logoUrl
        photo
        blurb
        address
        contentUrl
        followerCount
        capacity
        topArtists {
            name
            contentUrl
        }
        eventCountThisYear
        events(limit: 50, type: LATEST, excludeIds: [$excludeEventId]) {
            id
            title
            interestedCount
            date
            startTime
            endTime
            contentUrl
            flyerFront
            images {
                id
                filename
                alt
                type
                crop
            }
            artists {
                id
                name
                contentUrl
            }
            venue {
                id
                name
                address
                contentUrl
                capacity
            }
            pick {
                id
                blurb
            }
            isTicketed
            attending
            queueItEnabled
            newEventForm
        }
    }
}
`

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

type venueResponse struct {
	Data struct {
		Venue *Venue `json:"venue"`
	} `json:"data"`
}

// Client queries the directory's GraphQL API.
type Client struct {
	endpoint string
	http     *resty.Client
}

// NewClient builds a client for the given endpoint. An empty endpoint
// selects DefaultEndpoint. The directory rejects requests without a
// browser user agent and referer, so both are pinned here.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpc := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Referer", siteURL+"/").
		SetHeader("User-Agent", userAgent)
	return &Client{endpoint: endpoint, http: httpc}
}

// VenueDetails fetches the venue context and its latest events. A
// payload without the venue data key is a fatal fetch error for the
// whole venue run.
func (c *Client) VenueDetails(ctx context.Context, venueID string) (*Venue, error) {
	req := graphqlRequest{
		OperationName: "GET_VENUE_MOREON",
		Variables: map[string]any{
			"id":             venueID,
			"excludeEventId": "0",
		},
		Query: venueQuery,
	}

	var out venueResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("venue %s: %w", venueID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("venue %s: unexpected status %s", venueID, resp.Status())
	}
	if out.Data.Venue == nil {
		return nil, fmt.Errorf("venue %s: %w", venueID, ErrVenueMissing)
	}
	return out.Data.Venue, nil
}
