package httpx

import (
	"fmt"
	"net/http"
)

type tokenSource interface {
	BearerToken() string
}

// StaticTokenSource serves a token handed in at construction time. Ops
// runs either have a service-account token in the environment or run
// unauthenticated; there is nothing to refresh.
type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) StaticTokenSource {
	return StaticTokenSource{token: token}
}

func (s StaticTokenSource) BearerToken() string {
	return s.token
}

// AuthBearerRoundTripper sets the Authorization header on outgoing
// requests. When the source has no token the request goes out bare and
// the caller deals with the 401.
type AuthBearerRoundTripper struct {
	next        http.RoundTripper
	tokenSource tokenSource
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	tokenSource tokenSource,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:        next,
		tokenSource: tokenSource,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := rt.tokenSource.BearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
