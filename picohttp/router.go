package picohttp

// Methods recognized by the fixed routes. Dispatch itself accepts any
// method string and compares it literally.
const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

// Handler turns a request into a response. Handlers are pure with respect
// to connection state; the server owns all I/O.
type Handler interface {
	Serve(*Request) *Response
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Serve(r *Request) *Response {
	return f(r)
}

// Route is one dispatch table entry, matched by exact method and path.
type Route struct {
	Method  string
	Path    string
	Handler Handler
}

// Router dispatches by walking its routes in registration order; the first
// exact (method, path) match wins. Query strings and case differences
// defeat a match and fall through to the fallbacks: 404 for GET, 405
// otherwise.
type Router struct {
	routes []Route
}

func NewRouter() *Router {
	return &Router{}
}

// Handle appends a route and returns the router for chaining.
func (rt *Router) Handle(method, path string, h Handler) *Router {
	rt.routes = append(rt.routes, Route{Method: method, Path: path, Handler: h})
	return rt
}

// HandleFunc appends a route served by f.
func (rt *Router) HandleFunc(method, path string, f HandlerFunc) *Router {
	return rt.Handle(method, path, f)
}

func (rt *Router) Serve(r *Request) *Response {
	for _, route := range rt.routes {
		if route.Method == r.Method && route.Path == r.Path {
			return route.Handler.Serve(r)
		}
	}
	if r.Method == MethodGet {
		return NotFound()
	}
	return MethodNotAllowed()
}

// NotFound builds the fixed 404 response served for unmatched GET paths.
func NotFound() *Response {
	return NewResponse(StatusNotFound).
		WithHeader(HeaderContentType, "text/plain").
		WithBody([]byte("404 - Not Found"))
}

// MethodNotAllowed builds the fixed 405 response served for any other
// unmatched method/path combination.
func MethodNotAllowed() *Response {
	return NewResponse(StatusMethodNotAllowed).
		WithHeader(HeaderContentType, "text/plain").
		WithBody([]byte("405 - Method Not Allowed"))
}
