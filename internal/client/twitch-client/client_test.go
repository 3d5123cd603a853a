package twitch_client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRateLimit(w http.ResponseWriter, remaining string) {
	w.Header().Set("Ratelimit-Limit", "800")
	w.Header().Set("Ratelimit-Remaining", remaining)
	w.Header().Set("Ratelimit-Reset", "1750000000")
}

func TestGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/helix/users", r.URL.Path)
		assert.Equal(t, "someuser", r.URL.Query().Get("login"))
		assert.Empty(t, r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-client-id", r.Header.Get("Client-Id"))

		writeRateLimit(w, "799")
		fmt.Fprint(w, `{"data":[{"id":"12345","login":"someuser","display_name":"SomeUser","created_at":"2016-12-14T20:32:28Z"}]}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, rl, err := twc.GetUserInfo(context.Background(), "some-token", []string{"someuser"})
	require.NoError(t, err)

	require.Len(t, data.Data, 1)
	assert.Equal(t, "12345", data.Data[0].UserID)
	assert.Equal(t, "SomeUser", data.Data[0].DisplayName)

	assert.Equal(t, int64(800), rl.Limit)
	assert.Equal(t, int64(799), rl.Remaining)
	assert.Equal(t, int64(1750000000), rl.Reset)
}

func TestGetUserInfo_numericTargetQueriedAsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12345", r.URL.Query().Get("id"))
		assert.Empty(t, r.URL.Query().Get("login"))

		writeRateLimit(w, "799")
		fmt.Fprint(w, `{"data":[{"id":"12345","login":"someuser"}]}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	_, _, err := twc.GetUserInfo(context.Background(), "some-token", []string{"12345"})
	assert.NoError(t, err)
}

func TestGetUserInfo_rateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRateLimit(w, "0")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"Too Many Requests","status":429,"message":"rate limit exceeded"}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, rl, err := twc.GetUserInfo(context.Background(), "some-token", []string{"someuser"})
	assert.Nil(t, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, int64(0), rl.Remaining)
}

func TestGetChannelFollowers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/helix/channels/followers", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("broadcaster_id"))

		writeRateLimit(w, "798")
		fmt.Fprint(w, `{"total":42,"data":[],"pagination":{}}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, rl, err := twc.GetChannelFollowers(context.Background(), "some-token", "12345")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), data.Total)
	assert.Equal(t, int64(798), rl.Remaining)
}

func TestGetChannelFollowers_unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRateLimit(w, "797")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Unauthorized","status":401,"message":"Invalid OAuth token"}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, _, err := twc.GetChannelFollowers(context.Background(), "stale-token", "12345")
	assert.Nil(t, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth token")
}

func TestGetActiveStreamInfoByUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/helix/streams", r.URL.Path)
		assert.Equal(t, "someuser", r.URL.Query().Get("user_login"))

		writeRateLimit(w, "796")
		fmt.Fprint(w, `{"data":[{"id":"9876","user_id":"12345","user_login":"someuser","type":"live","title":"playing something","viewer_count":311}],"pagination":{}}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, _, err := twc.GetActiveStreamInfoByUsers(context.Background(), "some-token", []string{"someuser"})
	require.NoError(t, err)

	require.Len(t, data.StreamInfo, 1)
	assert.Equal(t, "playing something", data.StreamInfo[0].Title)
	assert.Equal(t, uint64(311), data.StreamInfo[0].ViewerCount)
}

func TestGetActiveStreamInfoByUsers_offline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRateLimit(w, "795")
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	}))
	defer srv.Close()

	twc := NewTwitchClient(srv.URL, "test-client-id")

	data, _, err := twc.GetActiveStreamInfoByUsers(context.Background(), "some-token", []string{"someuser"})
	require.NoError(t, err)
	assert.Empty(t, data.StreamInfo)
}
