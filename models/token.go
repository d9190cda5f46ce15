package models

// Token is the bearer credential returned by a successful login exchange.
// The client stores and forwards it but never interprets its contents.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// String returns the raw access token.
func (t Token) String() string {
	return t.AccessToken
}
