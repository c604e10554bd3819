package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-travel-agency/internal/config"
	"go-travel-agency/internal/session"
)

func testConfig(baseURL string) config.APIConfig {
	return config.APIConfig{BaseURL: baseURL, Timeout: 5 * time.Second}
}

func TestBearerTokenSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetToken("tok-1")
	client := New(testConfig(srv.URL), store, nil)

	require.NoError(t, client.Get(context.Background(), "/users", nil))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestExpiredSessionClearsTokenAndFiresLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"jwt expired"}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetToken("stale")
	loggedOut := false
	client := New(testConfig(srv.URL), store, func() { loggedOut = true })

	err := client.Get(context.Background(), "/users", nil)
	require.Error(t, err)
	assert.True(t, loggedOut, "logout hook fires on expiry")
	assert.Empty(t, store.Token(), "token removed from the store")
	assert.Equal(t, "jwt expired", Message(err, "fallback"), "original error still reaches the caller")
}

func TestNonExpiryErrorKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"email already exists"}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetToken("still-good")
	loggedOut := false
	client := New(testConfig(srv.URL), store, func() { loggedOut = true })

	err := client.Post(context.Background(), "/users", map[string]string{}, nil)
	require.Error(t, err)
	assert.False(t, loggedOut)
	assert.Equal(t, "still-good", store.Token())
	assert.Equal(t, "email already exists", Message(err, "fallback"))
}

func TestMessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), session.NewMemoryStore(), nil)
	err := client.Get(context.Background(), "/users", nil)
	require.Error(t, err)
	assert.Equal(t, "fallback", Message(err, "fallback"), "no server message means the generic text")
}

func TestDecodeList(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	assert.Equal(t, []item{{ID: "1"}}, DecodeList[item]([]byte(`[{"id":"1"}]`)))
	assert.Equal(t, []item{{ID: "2"}}, DecodeList[item]([]byte(`{"data":[{"id":"2"}]}`)))
	assert.Empty(t, DecodeList[item]([]byte(`{"weird":true}`)))
	assert.Empty(t, DecodeList[item]([]byte(`not json`)))
	assert.Empty(t, DecodeList[item]([]byte(`null`)))
}

func TestDecodeIntoEnvelope(t *testing.T) {
	type record struct {
		ID string `json:"id"`
	}

	var fromEnvelope record
	require.NoError(t, decodeInto([]byte(`{"message":"ok","data":{"id":"7"}}`), &fromEnvelope))
	assert.Equal(t, "7", fromEnvelope.ID)

	var bare record
	require.NoError(t, decodeInto([]byte(`{"id":"8"}`), &bare))
	assert.Equal(t, "8", bare.ID)
}
