package twitch_user_authorization

import (
	"context"
	"net"
	"net/http"
	"time"
	"twitch_cli/internal/models"

	twitch_handler "twitch_cli/internal/handlers/twitch"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TwitchCreateOAuth2Link builds the link the user opens to start the flow.
func (tuas *TwitchUserAuthorizationService) TwitchCreateOAuth2Link(ctx context.Context, scopes []models.Scope) string {
	return tuas.twitchOauthClient.TwitchCreateOAuth2Link(scopes)
}

// ExchangeUserCode trades the redirect's one-time code for a token pair.
func (tuas *TwitchUserAuthorizationService) ExchangeUserCode(ctx context.Context, code string) (*models.TwitchOauthGetTokenResponse, error) {
	return tuas.twitchOauthClient.TwitchGetUserToken(ctx, code)
}

// AwaitUserTokens binds the callback listener and serves until exactly one
// successful exchange, then releases the listener. Denied authorizations
// and failed exchanges keep the listener up so the user can retry; only
// ctx cancellation or success ends the wait.
func (tuas *TwitchUserAuthorizationService) AwaitUserTokens(ctx context.Context) (*models.TwitchOauthGetTokenResponse, error) {

	ln, err := net.Listen("tcp", tuas.redirectAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", tuas.redirectAddr)
	}

	return tuas.awaitUserTokens(ctx, ln)
}

func (tuas *TwitchUserAuthorizationService) awaitUserTokens(ctx context.Context, ln net.Listener) (*models.TwitchOauthGetTokenResponse, error) {

	tokens := make(chan *models.TwitchOauthGetTokenResponse, 1)

	handler := twitch_handler.NewTwitchHandler(
		tuas.ExchangeUserCode,
		func(data *models.TwitchOauthGetTokenResponse) {
			select {
			case tokens <- data:
			default:
			}
		},
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Handler:      router,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	logrus.Infof("callback listener started on %s", ln.Addr())

	select {
	case data := <-tokens:
		// let the confirmation page flush to the browser
		time.Sleep(tuas.flushDelay)
		tuas.shutdown(srv)
		return data, nil
	case err := <-serveErr:
		return nil, errors.Wrap(err, "callback listener")
	case <-ctx.Done():
		tuas.shutdown(srv)
		return nil, ctx.Err()
	}
}

func (tuas *TwitchUserAuthorizationService) shutdown(srv *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("callback listener shutdown: %v", err)
	}

	logrus.Info("callback listener stopped")
}
