// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// ActivityCategory groups leisure activities (hiking, gastronomy, ...).
type ActivityCategory struct {
	ID   uuid.UUID
	Name string

	Audit
}

func (c ActivityCategory) TableName() string {
	return "activity_category"
}

// LeisureActivity is something a visitor can do in Popayán. CategoryName is
// filled from the joined category row.
type LeisureActivity struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Image        *string
	CategoryID   uuid.UUID
	CategoryName string

	Audit
}

func (a LeisureActivity) TableName() string {
	return "leisure_activity"
}

// ActivityFilter narrows activity listings. A nil CategoryID matches every
// category.
type ActivityFilter struct {
	OnlyActive bool
	CategoryID *uuid.UUID
}

// UserActivityPreference is a user's rating of a leisure activity.
// There is at most one preference per (UserID, ActivityID) pair.
type UserActivityPreference struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Rating     int

	Audit
}

func (p UserActivityPreference) TableName() string {
	return "user_activity_preference"
}

type ActivityCategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewActivityCategoryListResponse(categories []ActivityCategory) []ActivityCategoryResponse {
	out := make([]ActivityCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ActivityCategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

type LeisureActivityResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Image       *string                  `json:"image"`
	Category    ActivityCategoryResponse `json:"category"`
	Active      *bool                    `json:"active,omitempty"`
}

// NewLeisureActivityResponse maps an activity to its public representation.
// When privileged is false the active flag is omitted.
func NewLeisureActivityResponse(activity LeisureActivity, privileged bool) LeisureActivityResponse {
	response := LeisureActivityResponse{
		ID:          activity.ID,
		Name:        activity.Name,
		Description: activity.Description,
		Category:    ActivityCategoryResponse{ID: activity.CategoryID, Name: activity.CategoryName},
	}

	if activity.Image != nil && *activity.Image != "" {
		image := *activity.Image
		response.Image = &image
	}

	if privileged {
		active := activity.Active
		response.Active = &active
	}

	return response
}

type LeisureActivityListResponse struct {
	LeisureActivities []LeisureActivityResponse `json:"leisure_activities"`
	Total             int                       `json:"total"`
	NumPages          int                       `json:"num_pages"`
	CurrentPage       int                       `json:"current_page"`
}

func NewLeisureActivityListResponse(page Page[LeisureActivity], privileged bool) LeisureActivityListResponse {
	activities := make([]LeisureActivityResponse, 0, len(page.Items))
	for _, activity := range page.Items {
		activities = append(activities, NewLeisureActivityResponse(activity, privileged))
	}

	return LeisureActivityListResponse{
		LeisureActivities: activities,
		Total:             page.Total,
		NumPages:          page.NumPages,
		CurrentPage:       page.CurrentPage,
	}
}

// ActivityPreferenceRequest is the payload of the activity preference
// upsert endpoint.
type ActivityPreferenceRequest struct {
	Activity *uuid.UUID `json:"activity"`
	Rating   *int       `json:"rating"`
}

type ActivityPreferenceResponse struct {
	User     uuid.UUID `json:"user"`
	Activity uuid.UUID `json:"activity"`
	Rating   int       `json:"rating"`
}

func NewActivityPreferenceResponse(p UserActivityPreference) ActivityPreferenceResponse {
	return ActivityPreferenceResponse{
		User:     p.UserID,
		Activity: p.ActivityID,
		Rating:   p.Rating,
	}
}

// NewActivityPreferenceListResponse maps a list of preferences, never
// returning nil.
func NewActivityPreferenceListResponse(prefs []UserActivityPreference) []ActivityPreferenceResponse {
	out := make([]ActivityPreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, NewActivityPreferenceResponse(p))
	}
	return out
}
