package twitch_handler

import (
	"context"
	"twitch_cli/internal/models"

	"github.com/gorilla/mux"
)

// ExchangeUserCodeFunc trades a one-time authorization code for a user
// token pair.
type ExchangeUserCodeFunc func(ctx context.Context, code string) (*models.TwitchOauthGetTokenResponse, error)

// TwitchHandler serves the OAuth redirect of the authorization code grant.
// A successful exchange is reported through onTokens; errors leave the
// listener available for another attempt.
type TwitchHandler struct {
	exchangeUserCode ExchangeUserCodeFunc
	onTokens         func(*models.TwitchOauthGetTokenResponse)
}

func NewTwitchHandler(
	exchangeUserCode ExchangeUserCodeFunc,
	onTokens func(*models.TwitchOauthGetTokenResponse),
) *TwitchHandler {
	return &TwitchHandler{
		exchangeUserCode: exchangeUserCode,
		onTokens:         onTokens,
	}
}

func (twh *TwitchHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/callback", twh.GetUserToken).Methods("GET")
	r.PathPrefix("/").HandlerFunc(twh.Placeholder)
}
