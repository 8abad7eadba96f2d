// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/popayan-tourism/internal/logger"
	"github.com/MKhiriev/popayan-tourism/models"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ParsePage converts the raw "page" query value. Anything that is not an
// integer falls back to the first page. Integers are returned as is, so an
// out of range page still produces an empty page in [Paginate].
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}
	return page
}

// ParsePerPage converts the raw "per_page" query value into a page size in
// [1, MaxPerPage].
func ParsePerPage(raw string) int {
	perPage, err := strconv.Atoi(raw)
	if err != nil || perPage < 1 {
		return DefaultPerPage
	}
	return min(perPage, MaxPerPage)
}

// EmptyPage is the result of a request for a page outside the collection.
func EmptyPage[T any]() models.Page[T] {
	return models.Page[T]{Items: []T{}, Total: 0, NumPages: 0, CurrentPage: 1}
}

// Paginate counts the collection, checks that page is inside it and fetches
// the matching window. An empty collection still has one empty first page.
func Paginate[T any](
	ctx context.Context,
	page, perPage int,
	count func(ctx context.Context) (int, error),
	fetch func(ctx context.Context, limit, offset int) ([]T, error),
) (models.Page[T], error) {
	log := logger.FromContext(ctx)

	if perPage < 1 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	total, err := count(ctx)
	if err != nil {
		return models.Page[T]{}, err
	}

	numPages := max(1, (total+perPage-1)/perPage)
	if page < 1 || page > numPages {
		log.Warn().Int("page", page).Int("num_pages", numPages).Msg("empty page requested, returning empty list")
		return EmptyPage[T](), nil
	}

	items, err := fetch(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return models.Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}

	return models.Page[T]{
		Items:       items,
		Total:       total,
		NumPages:    numPages,
		CurrentPage: page,
	}, nil
}
