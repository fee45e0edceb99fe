package models

// Truthy reports whether a decoded JSON value counts as set:
// null, false, 0 and "" do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// Chat reports whether the request asks for free-form chat output.
func (r *ProxyRequest) Chat() bool {
	return Truthy(r.IsChat)
}

// HasImage reports whether an image should be attached to the prompt.
func (r *ProxyRequest) HasImage() bool {
	return Truthy(r.ImageBase64Data)
}
