// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/store"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/google/uuid"
)

// In-memory repositories with the same observable contract as the
// PostgreSQL ones. They back the scenario tests.

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMemUsers(users ...models.User) *memUsers {
	m := &memUsers{users: map[uuid.UUID]models.User{}}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *memUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailTaken
		}
	}
	m.users[user.UserID] = user
	return user, nil
}

func (m *memUsers) FindUserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) find(match func(models.User) bool) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memUsers) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Username == username })
}

func (m *memUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	u.LastLogin = &at
	m.users[id] = u
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id uuid.UUID, oldHash, newHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok || u.Password != oldHash {
		return store.ErrPasswordChanged
	}
	u.Password = newHash
	m.users[id] = u
	return nil
}

type memPlaces struct {
	mu     sync.Mutex
	places map[uuid.UUID]models.CulturalPlace
}

func newMemPlaces() *memPlaces {
	return &memPlaces{places: map[uuid.UUID]models.CulturalPlace{}}
}

func (m *memPlaces) FindPlaceByID(_ context.Context, id uuid.UUID, filter models.PlaceFilter) (models.CulturalPlace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.places[id]
	if !ok || (filter.OnlyActive && !p.Active) {
		return models.CulturalPlace{}, store.ErrPlaceNotFound
	}
	return p, nil
}

func (m *memPlaces) matching(filter models.PlaceFilter) []models.CulturalPlace {
	out := make([]models.CulturalPlace, 0, len(m.places))
	for _, p := range m.places {
		if !filter.OnlyActive || p.Active {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b models.CulturalPlace) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (m *memPlaces) CountPlaces(_ context.Context, filter models.PlaceFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.matching(filter)), nil
}

func (m *memPlaces) FindAllPlaces(_ context.Context, filter models.PlaceFilter, limit, offset int) ([]models.CulturalPlace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.matching(filter)
	if offset >= len(all) {
		return []models.CulturalPlace{}, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (m *memPlaces) nameTaken(name string, except uuid.UUID) bool {
	for id, p := range m.places {
		if p.Name == name && id != except {
			return true
		}
	}
	return false
}

func (m *memPlaces) SavePlace(_ context.Context, place models.CulturalPlace) (models.CulturalPlace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameTaken(place.Name, uuid.Nil) {
		return models.CulturalPlace{}, store.ErrPlaceNameTaken
	}
	m.places[place.ID] = place
	return place, nil
}

func (m *memPlaces) UpdatePlace(_ context.Context, update models.CulturalPlaceUpdate) (models.CulturalPlace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.places[update.ID]
	if !ok || !p.Active {
		return models.CulturalPlace{}, store.ErrPlaceNotFound
	}
	if update.Name != nil {
		if m.nameTaken(*update.Name, update.ID) {
			return models.CulturalPlace{}, store.ErrPlaceNameTaken
		}
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Address != nil {
		p.Address = *update.Address
	}
	if update.OpeningHours != nil {
		p.OpeningHours = update.OpeningHours
	}
	if update.Image != nil {
		p.Image = update.Image
	}
	p.UpdatedBy, p.UpdatedAt = update.UpdatedBy, update.UpdatedAt
	m.places[p.ID] = p
	return p, nil
}

func (m *memPlaces) DeactivatePlace(_ context.Context, id, updatedBy uuid.UUID, at time.Time) (models.CulturalPlace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.places[id]
	if !ok || !p.Active {
		return models.CulturalPlace{}, store.ErrPlaceNotActive
	}
	p.Active = false
	p.UpdatedBy, p.UpdatedAt = updatedBy, at
	m.places[id] = p
	return p, nil
}

func (m *memPlaces) DeletePlace(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.places[id]
	if !ok || !p.Active {
		return store.ErrPlaceNotFound
	}
	delete(m.places, id)
	return nil
}

type prefKey struct{ user, place uuid.UUID }

type memPreferences struct {
	mu     sync.Mutex
	places *memPlaces
	rows   map[prefKey]models.UserPlacePreference
	order  []prefKey
}

func newMemPreferences(places *memPlaces) *memPreferences {
	return &memPreferences{places: places, rows: map[prefKey]models.UserPlacePreference{}}
}

func (m *memPreferences) UpsertPreference(ctx context.Context, pref models.UserPlacePreference) (models.UserPlacePreference, bool, error) {
	if _, err := m.places.FindPlaceByID(ctx, pref.PlaceID, models.PlaceFilter{}); err != nil {
		return models.UserPlacePreference{}, false, store.ErrPlaceNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := prefKey{pref.UserID, pref.PlaceID}
	if existing, ok := m.rows[key]; ok {
		existing.Rating = pref.Rating
		existing.UpdatedBy, existing.UpdatedAt = pref.UpdatedBy, pref.UpdatedAt
		m.rows[key] = existing
		return existing, false, nil
	}

	m.rows[key] = pref
	m.order = append(m.order, key)
	return pref, true, nil
}

func (m *memPreferences) ListPreferencesByUser(_ context.Context, userID uuid.UUID) ([]models.UserPlacePreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.UserPlacePreference, 0)
	for _, key := range m.order {
		if key.user == userID {
			out = append(out, m.rows[key])
		}
	}
	return out, nil
}

func (m *memPreferences) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// captureNotifier records every enqueued notification.
type captureNotifier struct {
	mu   sync.Mutex
	sent []models.PasswordResetNotification
	err  error
}

func (c *captureNotifier) Enqueue(_ context.Context, n models.PasswordResetNotification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, n)
	return nil
}

func (c *captureNotifier) last() models.PasswordResetNotification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent[len(c.sent)-1]
}

var (
	_ store.UserRepository          = (*memUsers)(nil)
	_ store.CulturalPlaceRepository = (*memPlaces)(nil)
	_ store.PreferenceRepository    = (*memPreferences)(nil)
	_ Notifier                      = (*captureNotifier)(nil)
)
