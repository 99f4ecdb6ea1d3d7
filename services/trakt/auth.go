package trakt

import (
	"encoding/json"
	"fmt"
)

// oauthLogin is the request body for the token endpoint. Exactly one of Code
// or RefreshToken is set, matching the grant type.
type oauthLogin struct {
	Code         string `json:"code,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
	GrantType    string `json:"grant_type"`
}

// OAuthToken is the response from the token endpoint.
type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	CreatedAt    int64  `json:"created_at"`
}

// Authenticate exchanges key for an access token. A key of exactly eight
// characters is treated as a one-time pin (authorization_code grant);
// anything else is treated as a refresh token from a previous session. On
// success the bearer token is attached to the session header set for all
// subsequent requests.
func (c *Client) Authenticate(key string) (*OAuthToken, error) {
	isPin := len(key) == 8

	login := oauthLogin{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURI:  redirectURI,
	}
	if isPin {
		login.Code = key
		login.GrantType = "authorization_code"
	} else {
		login.RefreshToken = key
		login.GrantType = "refresh_token"
	}

	body, err := json.Marshal(login)
	if err != nil {
		return nil, fmt.Errorf("marshal login: %w", err)
	}

	response, err := c.postToTrakt(uriLoginOAuth, body, true)
	if err != nil {
		return nil, err
	}

	var token OAuthToken
	if err := json.Unmarshal(response, &token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access token")
	}

	c.headers["Authorization"] = "Bearer " + token.AccessToken
	return &token, nil
}
