// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldOpeningHours is the key used for opening-hours errors that are not
// tied to a single day.
const FieldOpeningHours = "opening_hours"

var hoursPattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

const clockLayout = "15:04"

// dayEntry is one day -> hours pair in input order. Hours holds the raw
// value; IsString is false when the value was not a JSON string.
type dayEntry struct {
	Day      string
	Hours    string
	IsString bool
}

// OpeningHoursValidator checks weekly schedules of the form
// {"monday": "09:00-17:00", "sunday": "closed"}.
//
// By default validation stops at the first violation. With collectAll every
// violation is reported, keyed by day.
type OpeningHoursValidator struct {
	collectAll bool
}

func NewOpeningHoursValidator(collectAll bool) *OpeningHoursValidator {
	return &OpeningHoursValidator{collectAll: collectAll}
}

// Validate accepts json.RawMessage, []byte, string, map[string]string,
// map[string]any and models.OpeningHours. The fields argument is ignored.
func (v *OpeningHoursValidator) Validate(_ context.Context, value any, _ ...string) error {
	entries, err := openingHoursEntries(value)
	if err != nil {
		return err
	}

	var errs validation.Errors
	var first string
	for _, entry := range entries {
		msg := checkDay(entry)
		if msg == "" {
			continue
		}
		if !v.collectAll {
			return NewFieldError(FieldOpeningHours, msg)
		}
		if errs == nil {
			errs = validation.Errors{}
			first = msg
		}
		if _, seen := errs[entry.Day]; !seen {
			errs[entry.Day] = errors.New(msg)
		}
	}

	if errs != nil {
		return &Error{msg: first, Fields: errs}
	}
	return nil
}

// ValidateOpeningHours runs fail-fast validation and returns value unchanged
// on success.
func ValidateOpeningHours(value any) (any, error) {
	if err := NewOpeningHoursValidator(false).Validate(context.Background(), value); err != nil {
		return nil, err
	}
	return value, nil
}

func checkDay(entry dayEntry) string {
	if !slices.Contains(models.Weekdays, entry.Day) {
		return fmt.Sprintf(app.MsgOpeningHoursBadDay, entry.Day, strings.Join(models.Weekdays, ", "))
	}

	if entry.IsString && entry.Hours == models.Closed {
		return ""
	}

	formatErr := fmt.Sprintf(app.MsgOpeningHoursBadFormat, entry.Day, entry.Hours)
	if !entry.IsString || !hoursPattern.MatchString(entry.Hours) {
		return formatErr
	}

	openStr, closeStr, _ := strings.Cut(entry.Hours, "-")
	opening, err := time.Parse(clockLayout, openStr)
	if err != nil {
		return formatErr
	}
	closing, err := time.Parse(clockLayout, closeStr)
	if err != nil {
		return formatErr
	}

	if !opening.Before(closing) {
		return app.MsgOpeningHoursOrder
	}

	return ""
}

func notAnObject() error {
	return NewFieldError(FieldOpeningHours, app.MsgOpeningHoursNotObject)
}

// openingHoursEntries normalizes the supported input types into an ordered
// list of entries. JSON input keeps document order; maps are ordered by
// weekday first, then unknown keys alphabetically.
func openingHoursEntries(value any) ([]dayEntry, error) {
	switch v := value.(type) {
	case json.RawMessage:
		return jsonEntries(v)
	case []byte:
		return jsonEntries(v)
	case string:
		return jsonEntries([]byte(v))
	case models.OpeningHours:
		if v == nil {
			return nil, notAnObject()
		}
		return stringMapEntries(v), nil
	case map[string]string:
		if v == nil {
			return nil, notAnObject()
		}
		return stringMapEntries(v), nil
	case map[string]any:
		if v == nil {
			return nil, notAnObject()
		}
		entries := make([]dayEntry, 0, len(v))
		for _, day := range orderedKeys(v) {
			s, ok := v[day].(string)
			if !ok {
				s = fmt.Sprint(v[day])
			}
			entries = append(entries, dayEntry{Day: day, Hours: s, IsString: ok})
		}
		return entries, nil
	default:
		return nil, notAnObject()
	}
}

func stringMapEntries[M ~map[string]string](m M) []dayEntry {
	entries := make([]dayEntry, 0, len(m))
	for _, day := range orderedKeys(m) {
		entries = append(entries, dayEntry{Day: day, Hours: m[day], IsString: true})
	}
	return entries
}

func orderedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for _, day := range models.Weekdays {
		if _, ok := m[day]; ok {
			keys = append(keys, day)
		}
	}

	var unknown []string
	for day := range m {
		if !slices.Contains(models.Weekdays, day) {
			unknown = append(unknown, day)
		}
	}
	sort.Strings(unknown)

	return append(keys, unknown...)
}

func jsonEntries(raw []byte) ([]dayEntry, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	tok, err := decoder.Token()
	if err != nil {
		return nil, notAnObject()
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, notAnObject()
	}

	var entries []dayEntry
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, notAnObject()
		}
		day, _ := keyTok.(string)

		var rawValue json.RawMessage
		if err := decoder.Decode(&rawValue); err != nil {
			return nil, notAnObject()
		}

		entry := dayEntry{Day: day, Hours: string(rawValue)}
		var s string
		if json.Unmarshal(rawValue, &s) == nil {
			entry.Hours = s
			entry.IsString = true
		}
		entries = append(entries, entry)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, notAnObject()
	}

	return entries, nil
}
