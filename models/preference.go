// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// UserPlacePreference is a user's rating of a cultural place.
// There is at most one preference per (UserID, PlaceID) pair.
type UserPlacePreference struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	PlaceID uuid.UUID
	Rating  int

	Audit
}

// TableName returns the name of the database table
// associated with the UserPlacePreference model.
func (p UserPlacePreference) TableName() string {
	return "user_place_preference"
}

// PreferenceRequest is the payload of the preference upsert endpoint.
type PreferenceRequest struct {
	Place  *uuid.UUID `json:"place"`
	Rating *int       `json:"rating"`
}

// PreferenceResponse is the public representation of a preference.
type PreferenceResponse struct {
	User   uuid.UUID `json:"user"`
	Place  uuid.UUID `json:"place"`
	Rating int       `json:"rating"`
}

// NewPreferenceResponse maps a preference to its public representation.
func NewPreferenceResponse(p UserPlacePreference) PreferenceResponse {
	return PreferenceResponse{
		User:   p.UserID,
		Place:  p.PlaceID,
		Rating: p.Rating,
	}
}

// NewPreferenceListResponse maps a list of preferences, never returning nil.
func NewPreferenceListResponse(prefs []UserPlacePreference) []PreferenceResponse {
	out := make([]PreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, NewPreferenceResponse(p))
	}
	return out
}
