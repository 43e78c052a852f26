package marketplace

import "net/http"

// AuthEngine puts marketplace credentials on an outgoing request.
type AuthEngine interface {
	SetAuth(request *http.Request)
}

// KeyPairAuth authorizes with a client id / api key header pair.
type KeyPairAuth struct {
	clientID string
	apiKey   string
}

func NewKeyPairAuth(clientID, apiKey string) *KeyPairAuth {
	return &KeyPairAuth{clientID: clientID, apiKey: apiKey}
}

func (a *KeyPairAuth) SetAuth(request *http.Request) {
	request.Header.Set("Client-Id", a.clientID)
	request.Header.Set("Api-Key", a.apiKey)
}

// BearerAuth authorizes with a bearer token; the партнёрский API also wants
// an explicit Host header alongside it.
type BearerAuth struct {
	token string
	host  string
}

func NewBearerAuth(token, host string) *BearerAuth {
	return &BearerAuth{token: token, host: host}
}

func (a *BearerAuth) SetAuth(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+a.token)
	request.Header.Set("Accept", "application/json")
	if a.host != "" {
		request.Host = a.host
	}
}
