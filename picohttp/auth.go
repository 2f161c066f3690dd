package picohttp

// DefaultToken is the bearer token accepted when no verifier is supplied.
const DefaultToken = "secret-token"

// TokenVerifier decides whether a presented Authorization value grants
// access. Implementations replace the placeholder shared-secret check
// without touching dispatch.
type TokenVerifier interface {
	Verify(presented string) bool
}

// StaticBearer verifies against a single fixed bearer token. The comparison
// is exact: scheme, casing, and spacing all count.
type StaticBearer struct {
	Token string
}

func (s StaticBearer) Verify(presented string) bool {
	return presented == "Bearer "+s.Token
}

// Unauthorized builds the fixed 401 response for failed verification.
func Unauthorized() *Response {
	return NewResponse(StatusUnauthorized).
		WithHeader(HeaderContentType, "text/plain").
		WithBody([]byte("Unauthorized"))
}
