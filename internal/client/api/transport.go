package api

import (
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// TokenSource supplies the credential token for outgoing requests. An empty
// string means there is none.
type TokenSource interface {
	Token() string
}

// bearerTransport attaches the current token to each request. The token is
// read per request so login and logout take effect on the next call.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var token string
	if t.tokens != nil {
		token = t.tokens.Token()
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// a RoundTripper must not modify the caller's request
	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeader, common.BearerToken(token))
	return t.base.RoundTrip(r)
}
