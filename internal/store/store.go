// Package store is the persistence gateway backed by Postgres. It
// assigns identities on insert; extractors never invent ids themselves.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stagefeed/internal/listing"
)

// Imported profiles have no real credentials; every account gets the
// same placeholder password hashed once at startup cost.
const placeholderPassword = "imported-profile"

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateProfile inserts one artist or venue identity record and returns
// its generated id. Must be called exactly once per run, before any
// listing referencing it.
func (s *Store) CreateProfile(ctx context.Context, p *listing.Profile) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash placeholder password: %w", err)
	}

	links, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return "", fmt.Errorf("marshal social links: %w", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, display_name, email, password_hash,
		                   profile_picture_url, profile_banner_url, description,
		                   social_links, website_url, location, isvenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12)
		RETURNING id
	`, uuid.NewString(), p.Username, p.DisplayName, p.Email, hash,
		p.ProfilePictureURL, p.ProfileBannerURL, p.Description,
		string(links), p.WebsiteURL, p.Location, p.IsVenue).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert profile: %w", err)
	}

	return id, nil
}

// CreateListing inserts one normalized listing and returns its generated
// id. The listing must already carry its MainCreatorID.
func (s *Store) CreateListing(ctx context.Context, l *listing.Listing) (string, error) {
	creators, err := json.Marshal(l.Creators)
	if err != nil {
		return "", fmt.Errorf("marshal creators: %w", err)
	}
	lineup, err := json.Marshal(l.Lineup)
	if err != nil {
		return "", fmt.Errorf("marshal lineup: %w", err)
	}
	props, err := json.Marshal(l.TypeProperties)
	if err != nil {
		return "", fmt.Errorf("marshal type properties: %w", err)
	}
	fields, err := json.Marshal(l.AdditionalFields)
	if err != nil {
		return "", fmt.Errorf("marshal additional fields: %w", err)
	}
	tracks, err := json.Marshal(l.Tracks)
	if err != nil {
		return "", fmt.Errorf("marshal tracks: %w", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO tickets (id, title, cover_image, short_description, long_description,
		                     creators, lineup, event_date, has_comments, ticket_type,
		                     type_properties, tracks, additional_fields, vorm, tagg,
		                     preview_url, main_creator_id, main_creator_name, co_creator_name)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10,
		        $11::jsonb, $12::jsonb, $13::jsonb, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`, uuid.NewString(), l.Title, l.CoverImage, l.ShortDescription, l.LongDescription,
		string(creators), string(lineup), l.EventDate, l.HasComments, string(l.TicketType),
		string(props), string(tracks), string(fields), l.Vorm, l.Tagg,
		l.PreviewURL, l.MainCreatorID, l.MainCreatorName, l.CoCreatorName).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert listing: %w", err)
	}

	return id, nil
}
