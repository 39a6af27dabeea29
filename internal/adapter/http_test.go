// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8000", want: "http://localhost:8000"},
		{in: " https://api.example.com/ ", want: "https://api.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToken_SetTrimsAndClears(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api-token-auth/", r.URL.Path)
		assert.Equal(t, "application/json;charset=utf-8", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Trace-ID"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "pw"}, creds)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "tok", UserID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	got, err := a.Authenticate(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthResponse{Token: "tok", UserID: 7}, got)
	// token storage is the session's job
	assert.Equal(t, "stale", a.Token())
}

func TestAuthenticate_BadRequestIsInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"non_field_errors":["Unable to log in with provided credentials."]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Authenticate(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestAuthenticate_ServerErrorIsNotInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Authenticate(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestAuthenticate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Authenticate(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrHTTPStatus)
}

// ── dictionaries ────────────────────────────────────────────────────────────

func TestListDictionaries_Success(t *testing.T) {
	created := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/dictionaries/", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("owner_id"))
		assert.Equal(t, "Token tok", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.Dictionary{
			{ID: 1, Owner: 7, Name: "Food", WordCount: 3, CreatedAt: created},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.ListDictionaries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Name)
	assert.Equal(t, 3, got[0].WordCount)
	assert.True(t, got[0].CreatedAt.Equal(created))
}

func TestListDictionaries_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListDictionaries(context.Background(), 7)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Invalid token.")
}

func TestCreateDictionary_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dictionaries/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"owner": float64(7), "dictionary_name": "Travel"}, body)

		writeJSON(t, w, http.StatusCreated, models.Dictionary{ID: 12, Owner: 7, Name: "Travel"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateDictionary(context.Background(), models.NewDictionaryRequest{Owner: 7, Name: "Travel"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Zero(t, got.WordCount)
}

func TestDeleteDictionary(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
		{name: "redirect is failure", status: http.StatusMultipleChoices, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/dictionaries/12/", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteDictionary(context.Background(), 12)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrHTTPStatus)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── words ───────────────────────────────────────────────────────────────────

func TestListWords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/words/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("dictionary_id"))

		// JSON served as text/html still decodes
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`[{"id":1,"dictionary":3,"word_rus":"яблоко","word_eng":"apple"}]`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListWords(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []models.Word{{ID: 1, DictionaryID: 3, SourceText: "яблоко", TargetText: "apple"}}, got)
}

func TestListWords_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListWords(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetWord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/words/5/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Word{ID: 5, DictionaryID: 3, SourceText: "дом", TargetText: "house"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetWord(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "house", got.TargetText)
}

func TestCreateWord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/words/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("dictionary_id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"dictionary": float64(3), "word_rus": "кот", "word_eng": "cat"}, body)

		writeJSON(t, w, http.StatusCreated, models.Word{ID: 9, DictionaryID: 3, SourceText: "кот", TargetText: "cat"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateWord(context.Background(), models.NewWordRequest{DictionaryID: 3, SourceText: "кот", TargetText: "cat"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestCreateWord_EmptyBodyIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateWord(context.Background(), models.NewWordRequest{DictionaryID: 3})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestUpdateWord_SendsFullObject(t *testing.T) {
	word := models.Word{ID: 5, DictionaryID: 3, SourceText: "дом", TargetText: "home"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/words/5/", r.URL.Path)

		var got models.Word
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, word, got)

		writeJSON(t, w, http.StatusOK, got)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateWord(context.Background(), word)
	require.NoError(t, err)
	assert.Equal(t, word, got)
}

func TestDeleteWord_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/words/5/", r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteWord(context.Background(), 5)
	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.Contains(t, err.Error(), "http 502")
}

// ── users ───────────────────────────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7", r.URL.Path)
		assert.Equal(t, "Token tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserProfile{ID: 7, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Lee Ann", got.DisplayName())
}

func TestRequest_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).ListWords(ctx, 1)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequest_TraceIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Trace-ID")] = struct{}{}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteWord(context.Background(), 1))
	require.NoError(t, a.DeleteWord(context.Background(), 2))

	assert.Len(t, seen, 2)
}
