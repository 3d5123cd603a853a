package twitch_client

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
	"twitch_cli/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const TwitchAPISchemeHost string = "https://api.twitch.tv"

var digitCheck = regexp.MustCompile(`^[0-9]+$`) // check if have only digits

// TwitchClient issues authenticated GETs against the Helix API. Rate-limit
// headers are captured on every call but never acted upon: a 429 is an
// ordinary failed call.
type TwitchClient struct {
	apiSchemeHost string
	clientID      string
}

func NewTwitchClient(apiSchemeHost, clientID string) *TwitchClient {
	return &TwitchClient{
		apiSchemeHost: apiSchemeHost,
		clientID:      clientID,
	}
}

func newHTTPClient() http.Client {
	return http.Client{
		Timeout: time.Second * 5,
	}
}

func readRateLimit(header http.Header) models.RateLimit {
	parse := func(key string) int64 {
		n, err := strconv.ParseInt(header.Get(key), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}

	return models.RateLimit{
		Limit:     parse("Ratelimit-Limit"),
		Remaining: parse("Ratelimit-Remaining"),
		Reset:     parse("Ratelimit-Reset"),
	}
}

// helixError turns a non-2xx Helix response into an error, preferring the
// message of the standard error payload over the raw body.
func helixError(statusCode int, body []byte) error {
	var payload models.HelixError
	if err := jsoniter.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return errors.Errorf("helix request failed with status code %d: %s", statusCode, payload.Message)
	}

	return errors.Errorf("helix request failed with status code %d: %s", statusCode, string(body))
}
