// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/popayan-tourism/internal/app"
	"github.com/MKhiriev/popayan-tourism/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func gunzipString(t *testing.T, data []byte) string {
	t.Helper()

	gr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gr.Close()

	out, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler writes the request body back.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
})

// ─────────────────────────────────────────────
// request decompression
// ─────────────────────────────────────────────

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	payload := `{"name":"Museo Arquidiocesano"}`

	req := httptest.NewRequest(http.MethodPost, "/cultural_place", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/cultural_place", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeBody[models.ErrorResponse](t, rr).Error)
}

// ─────────────────────────────────────────────
// response compression
// ─────────────────────────────────────────────

func TestWithGZip_CompressesResponse(t *testing.T) {
	payload := `{"cultural_places":[],"total":0,"num_pages":1,"current_page":1}`

	req := httptest.NewRequest(http.MethodPost, "/cultural_place", strings.NewReader(payload))
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Equal(t, payload, gunzipString(t, rr.Body.Bytes()))
}

func TestWithGZip_NoAcceptEncoding_PlainResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	rr := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_NoContentPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/cultural_place/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_StatusWithoutBodyIsNotEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cultural_place", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_ImplicitStatusOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"v1"}`))
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"version":"v1"}`, gunzipString(t, rr.Body.Bytes()))
}

func TestWithGZip_WriterReturnedToPool(t *testing.T) {
	gw := &gzipResponseWriter{ResponseWriter: httptest.NewRecorder()}

	_, err := gw.Write([]byte("data"))
	require.NoError(t, err)
	require.NotNil(t, gw.gzipWriter)

	require.NoError(t, gw.Close())
	assert.Nil(t, gw.gzipWriter)
	assert.NoError(t, gw.Close())
}
