package twitch_handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

const successPage = `<!DOCTYPE html>
<html>
<head><title>twitch-cli</title></head>
<body>
<h1>Authorization complete</h1>
<p>Tokens were printed to the console. You can close this tab.</p>
</body>
</html>
`

const errorPage = `<!DOCTYPE html>
<html>
<head><title>twitch-cli</title></head>
<body>
<h1>Authorization failed</h1>
<p>%s: %s</p>
<p>Open the authorization link again to retry.</p>
</body>
</html>
`

const placeholderPage = `<!DOCTYPE html>
<html>
<head><title>twitch-cli</title></head>
<body>
<p>twitch-cli is waiting for the OAuth redirect on /callback.</p>
</body>
</html>
`

// GetUserToken handles the OAuth redirect. A denial from the user shows an
// error page and keeps the listener up for a retry; a failed exchange
// answers 500 with the provider's error payload verbatim; only a
// successful exchange reports tokens upstream.
func (twh *TwitchHandler) GetUserToken(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	if authErr := r.URL.Query().Get("error"); authErr != "" {
		desc := r.URL.Query().Get("error_description")
		logrus.Errorf("authorization denied: %s: %s", authErr, desc)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, errorPage, authErr, desc)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		logrus.Error("callback request without code")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, errorPage, "invalid_request", "missing code parameter")
		return
	}

	data, err := twh.exchangeUserCode(ctx, code)
	if err != nil {
		logrus.Errorf("token exchange failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, successPage)

	twh.onTokens(data)
}

// Placeholder answers every path besides /callback.
func (twh *TwitchHandler) Placeholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, placeholderPage)
}
