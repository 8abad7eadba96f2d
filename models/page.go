// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is one window of a paginated collection.
//
// An out-of-range request yields an empty page with Total and NumPages set
// to zero and CurrentPage set to 1.
type Page[T any] struct {
	Items       []T
	Total       int
	NumPages    int
	CurrentPage int
}
