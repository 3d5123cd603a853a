package models

type Scope string

var (
	UserReadFollows      Scope = "user:read:follows"
	ModeratorReadFollows Scope = "moderator:read:followers"
	ChannelReadSubs      Scope = "channel:read:subscriptions"
)

type TwitchOauthGetTokenResponse struct {
	AccessToken  string   `json:"access_token"`
	ExpiresIn    int32    `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"` // for user token
	Scope        []string `json:"scope"`         // for user token
	TokenType    string   `json:"token_type"`
}

type TwitchOauthValidateTokenResponse struct {
	ClientId  string   `json:"client_id"`
	Login     string   `json:"login"`
	Scopes    []string `json:"scopes"`
	UserId    string   `json:"user_id"`
	ExpiresIn uint64   `json:"expires_in"`
}
