// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qlog "github.com/pdiddy/quote-context/internal/log"
)

func TestFetchHTML(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<p>Hi <b>there</b></p>"))
	}))
	defer ts.Close()

	body, err := FetchHTML(context.Background(), ts.Client(), ts.URL, FetchOptions{
		UserAgent: "quote-context/test",
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi <b>there</b></p>", body)
	assert.Equal(t, "quote-context/test", gotUA)
}

func TestFetchHTML_RetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	body, err := FetchHTML(context.Background(), ts.Client(), ts.URL, FetchOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchHTML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		opts    FetchOptions
		wantErr error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: ErrStatus,
		},
		{
			name: "body over limit",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat("x", 64)))
			},
			opts:    FetchOptions{MaxBytes: 16},
			wantErr: ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			tt.opts.Logger = zerolog.Nop()
			_, err := FetchHTML(context.Background(), ts.Client(), ts.URL, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchHTML_BodyAtLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 16)))
	}))
	defer ts.Close()

	body, err := FetchHTML(context.Background(), ts.Client(), ts.URL, FetchOptions{MaxBytes: 16, Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Len(t, body, 16)
}

func TestFetchHTML_BadURL(t *testing.T) {
	_, err := FetchHTML(context.Background(), http.DefaultClient, "http://[::1", FetchOptions{Logger: zerolog.Nop()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "building request")
}

func TestFetchHTML_LogsFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<p>hi</p>"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	logger := qlog.New(qlog.Config{Level: "debug", Output: &buf})
	_, err := FetchHTML(context.Background(), ts.Client(), ts.URL, FetchOptions{Logger: logger})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, ts.URL, entry[qlog.FieldURL])
	assert.EqualValues(t, 9, entry[qlog.FieldBytes])
}
