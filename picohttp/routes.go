package picohttp

const (
	welcomeBody = "<h1>Welcome to picohttp!</h1>"
	healthBody  = `{"status": "healthy"}`
)

// DefaultRouter wires the three fixed routes: the welcome page, the
// token-gated echo, and the health check, in that priority order. A nil
// verifier falls back to StaticBearer with DefaultToken.
func DefaultRouter(v TokenVerifier) *Router {
	if v == nil {
		v = StaticBearer{Token: DefaultToken}
	}
	rt := NewRouter()
	rt.HandleFunc(MethodGet, "/", welcome)
	rt.HandleFunc(MethodPost, "/echo", echo(v))
	rt.HandleFunc(MethodGet, "/health", health)
	return rt
}

func welcome(*Request) *Response {
	return NewResponse(StatusOK).
		WithHeader(HeaderContentType, "text/html").
		WithBody([]byte(welcomeBody))
}

// echo returns the request body verbatim under application/json. The body
// is not validated against the content type. Access requires any
// Authorization value accepted by v; values are checked in arrival order.
func echo(v TokenVerifier) HandlerFunc {
	return func(r *Request) *Response {
		for _, presented := range r.Header.Values(HeaderAuthorization) {
			if v.Verify(presented) {
				return NewResponse(StatusOK).
					WithHeader(HeaderContentType, "application/json").
					WithBody(r.Body)
			}
		}
		return Unauthorized()
	}
}

func health(*Request) *Response {
	return NewResponse(StatusOK).
		WithHeader(HeaderContentType, "application/json").
		WithBody([]byte(healthBody))
}
