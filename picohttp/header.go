package picohttp

// Common header names used by the fixed routes.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
)

// Field is one header line as it appeared on the wire.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered sequence of fields. Duplicates are allowed and kept
// in arrival order. Lookups match names exactly; there is no
// canonicalization, because dispatch and the auth check compare raw names.
type Header []Field

// Get returns the first value whose name matches exactly, or "".
func (h Header) Get(name string) string {
	for _, f := range h {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Values returns all values for name in arrival order.
func (h Header) Values(name string) []string {
	var vv []string
	for _, f := range h {
		if f.Name == name {
			vv = append(vv, f.Value)
		}
	}
	return vv
}

// Add appends a field, keeping any existing values.
func (h *Header) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Set replaces the first field matching name and drops the rest. When no
// field matches, it appends one.
func (h *Header) Set(name, value string) {
	kept := (*h)[:0]
	found := false
	for _, f := range *h {
		if f.Name == name {
			if found {
				continue
			}
			f.Value = value
			found = true
		}
		kept = append(kept, f)
	}
	if !found {
		kept = append(kept, Field{Name: name, Value: value})
	}
	*h = kept
}

// Del removes every field matching name.
func (h *Header) Del(name string) {
	kept := (*h)[:0]
	for _, f := range *h {
		if f.Name == name {
			continue
		}
		kept = append(kept, f)
	}
	*h = kept
}
