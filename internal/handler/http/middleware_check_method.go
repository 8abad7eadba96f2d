// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON error body and an "Allow" header listing the
// methods the path does accept. Parameterised routes are resolved with
// [chi.Routes.Match], so "/cultural_place/{id}" is matched as well.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			writeErrorMessage(w, http.StatusNotFound, app.MsgNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeErrorMessage(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	var allowed []string
	for _, method := range routedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
