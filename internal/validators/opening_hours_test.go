// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allDays = "monday, tuesday, wednesday, thursday, friday, saturday, sunday"

func fullWeek() map[string]string {
	return map[string]string{
		"monday":    "09:00-17:00",
		"tuesday":   "09:00-17:00",
		"wednesday": "09:00-17:00",
		"thursday":  "09:00-17:00",
		"friday":    "09:00-17:00",
		"saturday":  "10:00-14:00",
		"sunday":    "closed",
	}
}

func TestOpeningHoursValidator_Valid(t *testing.T) {
	v := NewOpeningHoursValidator(false)

	tests := []struct {
		name  string
		value any
	}{
		{"full week map", fullWeek()},
		{"opening hours type", models.OpeningHours(fullWeek())},
		{"empty object", map[string]string{}},
		{"raw json", json.RawMessage(`{"monday":"08:30-12:00","sunday":"closed"}`)},
		{"bytes", []byte(`{"friday":"00:00-23:59"}`)},
		{"any map", map[string]any{"tuesday": "closed"}},
		{"one minute range", map[string]string{"monday": "09:00-09:01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(context.Background(), tt.value))
		})
	}
}

func TestOpeningHoursValidator_FailFast(t *testing.T) {
	v := NewOpeningHoursValidator(false)

	tests := []struct {
		name    string
		value   any
		wantMsg string
	}{
		{
			name:    "not an object",
			value:   json.RawMessage(`["monday"]`),
			wantMsg: "The opening_hours field must be a JSON object.",
		},
		{
			name:    "string json",
			value:   json.RawMessage(`"09:00-17:00"`),
			wantMsg: "The opening_hours field must be a JSON object.",
		},
		{
			name:    "null",
			value:   json.RawMessage(`null`),
			wantMsg: "The opening_hours field must be a JSON object.",
		},
		{
			name:    "unsupported go type",
			value:   42,
			wantMsg: "The opening_hours field must be a JSON object.",
		},
		{
			name:    "unknown day",
			value:   map[string]string{"funday": "09:00-17:00"},
			wantMsg: "Not a valid day: funday. Valid days are: " + allDays + ".",
		},
		{
			name:    "capitalized day",
			value:   map[string]string{"Monday": "09:00-17:00"},
			wantMsg: "Not a valid day: Monday. Valid days are: " + allDays + ".",
		},
		{
			name:    "bad format",
			value:   map[string]string{"monday": "0900-1700"},
			wantMsg: "Hours must follow the format 'HH:MM-HH:MM' for monday: 0900-1700.",
		},
		{
			name:    "not a clock time",
			value:   map[string]string{"monday": "25:00-26:00"},
			wantMsg: "Hours must follow the format 'HH:MM-HH:MM' for monday: 25:00-26:00.",
		},
		{
			name:    "non string value",
			value:   json.RawMessage(`{"monday": 9}`),
			wantMsg: "Hours must follow the format 'HH:MM-HH:MM' for monday: 9.",
		},
		{
			name:    "equal times",
			value:   map[string]string{"monday": "09:00-09:00"},
			wantMsg: "The opening hour must be less than the closing hour.",
		},
		{
			name:    "reversed times",
			value:   map[string]string{"monday": "18:00-09:00"},
			wantMsg: "The opening hour must be less than the closing hour.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, map[string]string{FieldOpeningHours: tt.wantMsg}, verr.FieldMessages())
		})
	}
}

func TestOpeningHoursValidator_FailFastReportsFirstInInputOrder(t *testing.T) {
	v := NewOpeningHoursValidator(false)

	err := v.Validate(context.Background(), json.RawMessage(`{"sunday":"bad","funday":"closed"}`))
	require.Error(t, err)
	assert.Equal(t, "Hours must follow the format 'HH:MM-HH:MM' for sunday: bad.", err.Error())
}

func TestOpeningHoursValidator_CollectAll(t *testing.T) {
	v := NewOpeningHoursValidator(true)

	err := v.Validate(context.Background(), json.RawMessage(`{
		"monday": "09:00-17:00",
		"tuesday": "1700-0900",
		"friday": "18:00-09:00",
		"holiday": "closed"
	}`))
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"friday", "holiday", "tuesday"}, verr.FieldNames())
	assert.Equal(t, "Hours must follow the format 'HH:MM-HH:MM' for tuesday: 1700-0900.", err.Error())

	msgs := verr.FieldMessages()
	assert.Equal(t, "The opening hour must be less than the closing hour.", msgs["friday"])
	assert.Equal(t, "Not a valid day: holiday. Valid days are: "+allDays+".", msgs["holiday"])
}

func TestValidateOpeningHours_ReturnsInputUnchanged(t *testing.T) {
	in := models.OpeningHours(fullWeek())

	out, err := ValidateOpeningHours(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	again, err := ValidateOpeningHours(out)
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

func TestValidateOpeningHours_IdentifiesUnknownKey(t *testing.T) {
	for _, day := range []string{"mon", "lunes", "SUNDAY", ""} {
		week := fullWeek()
		week[day] = "closed"

		_, err := ValidateOpeningHours(week)
		require.Error(t, err, day)
		assert.Contains(t, err.Error(), "Not a valid day: "+day+".")
	}
}
