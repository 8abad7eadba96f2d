// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Closed is the opening-hours value of a day on which the place does not open.
const Closed = "closed"

// Weekdays lists the canonical day keys of an opening-hours schedule in
// calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// OpeningHours maps a lowercase English day name to either [Closed] or a
// "HH:MM-HH:MM" range. It is stored as a JSONB column.
type OpeningHours map[string]string

// Value implements driver.Valuer.
func (o OpeningHours) Value() (driver.Value, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner.
func (o *OpeningHours) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*o = OpeningHours{}
		return nil
	default:
		return fmt.Errorf("unsupported opening_hours source type %T", src)
	}

	hours := OpeningHours{}
	if err := json.Unmarshal(raw, &hours); err != nil {
		return fmt.Errorf("error decoding opening_hours: %w", err)
	}
	*o = hours
	return nil
}

// Audit holds the bookkeeping columns shared by every mutable entity.
type Audit struct {
	Active    bool      `json:"-"`
	CreatedBy uuid.UUID `json:"-"`
	UpdatedBy uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CulturalPlace is a museum, church, theatre or any other place of cultural
// interest. Names are unique across active and inactive places.
type CulturalPlace struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Address      string
	OpeningHours OpeningHours
	Image        *string

	Audit
}

// TableName returns the name of the database table
// associated with the CulturalPlace model.
func (p CulturalPlace) TableName() string {
	return "cultural_place"
}

// PlaceFilter narrows place lookups. The zero value matches every place.
type PlaceFilter struct {
	// OnlyActive hides deactivated places.
	OnlyActive bool
}

// CulturalPlaceRequest is the payload of the create and update endpoints.
// Nil fields are left untouched on update.
type CulturalPlaceRequest struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	Address      *string         `json:"address"`
	OpeningHours json.RawMessage `json:"opening_hours"`
	Image        *string         `json:"image"`
}

// HasOpeningHours reports whether the request carries an opening_hours value.
func (r CulturalPlaceRequest) HasOpeningHours() bool {
	return len(r.OpeningHours) > 0 && string(r.OpeningHours) != "null"
}

// ErrOpeningHoursNotAnObject is returned by [CulturalPlaceRequest.DecodeOpeningHours]
// when the payload is valid JSON but not an object of strings.
var ErrOpeningHoursNotAnObject = errors.New("opening_hours is not an object of strings")

// DecodeOpeningHours converts the raw opening_hours payload into [OpeningHours].
func (r CulturalPlaceRequest) DecodeOpeningHours() (OpeningHours, error) {
	hours := OpeningHours{}
	if err := json.Unmarshal(r.OpeningHours, &hours); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningHoursNotAnObject, err)
	}
	return hours, nil
}

// CulturalPlaceResponse is the public representation of a place.
// Active is only exposed to privileged actors.
type CulturalPlaceResponse struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Address      string       `json:"address"`
	OpeningHours OpeningHours `json:"opening_hours"`
	Image        *string      `json:"image"`
	Active       *bool        `json:"active,omitempty"`
}

// NewCulturalPlaceResponse maps a place to its public representation.
// When privileged is false the active flag is omitted.
func NewCulturalPlaceResponse(place CulturalPlace, privileged bool) CulturalPlaceResponse {
	response := CulturalPlaceResponse{
		ID:           place.ID,
		Name:         place.Name,
		Description:  place.Description,
		Address:      place.Address,
		OpeningHours: place.OpeningHours,
	}

	if place.Image != nil && *place.Image != "" {
		image := *place.Image
		response.Image = &image
	}

	if privileged {
		active := place.Active
		response.Active = &active
	}

	return response
}

// CulturalPlaceListResponse is the paginated place listing.
type CulturalPlaceListResponse struct {
	CulturalPlaces []CulturalPlaceResponse `json:"cultural_places"`
	Total          int                     `json:"total"`
	NumPages       int                     `json:"num_pages"`
	CurrentPage    int                     `json:"current_page"`
}

// NewCulturalPlaceListResponse maps a page of places to the listing shape.
func NewCulturalPlaceListResponse(page Page[CulturalPlace], privileged bool) CulturalPlaceListResponse {
	places := make([]CulturalPlaceResponse, 0, len(page.Items))
	for _, place := range page.Items {
		places = append(places, NewCulturalPlaceResponse(place, privileged))
	}

	return CulturalPlaceListResponse{
		CulturalPlaces: places,
		Total:          page.Total,
		NumPages:       page.NumPages,
		CurrentPage:    page.CurrentPage,
	}
}

// CulturalPlaceDetailResponse wraps a place with a human-readable outcome.
type CulturalPlaceDetailResponse struct {
	Detail string                `json:"detail"`
	Place  CulturalPlaceResponse `json:"place"`
}

// CulturalPlaceUpdate is a partial update of an active place. Nil fields
// keep their stored value.
type CulturalPlaceUpdate struct {
	ID           uuid.UUID
	Name         *string
	Description  *string
	Address      *string
	OpeningHours OpeningHours
	Image        *string

	// Only UpdatedBy and UpdatedAt are written.
	Audit
}

// IsEmpty reports whether the update carries no column besides the audit ones.
func (u CulturalPlaceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Address == nil && u.OpeningHours == nil && u.Image == nil
}
