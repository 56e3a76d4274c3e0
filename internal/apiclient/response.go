package apiclient

import (
	"encoding/json"
	"errors"
	"strings"
)

// Response is a successful reply. Data holds the parsed value when the server
// declared JSON; otherwise the body is available through Text.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Data        any
}

func (r *Response) IsJSON() bool {
	return isJSON(r.ContentType)
}

// Text returns the raw body.
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals a JSON body into v.
func (r *Response) Decode(v any) error {
	if !r.IsJSON() {
		return errors.New("apiclient: response is not JSON")
	}
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Field returns a top level field of a JSON object response.
func (r *Response) Field(name string) (any, bool) {
	obj, ok := r.Data.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
