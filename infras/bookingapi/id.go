package bookingapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a resource identifier the API may encode as a JSON number or string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode id: %w", err)
		}

		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode id: %w", err)
	}

	*id = ID(n.String())

	return nil
}

func (id ID) String() string {
	return string(id)
}

// Ref is a related resource, serialized by the API either as a hyperlink
// ("http://host/rooms/3/") or as a primary key (3).
type Ref struct {
	URL string
	ID  ID
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}

	s := id.String()
	if strings.Contains(s, "/") {
		r.URL = s
		r.ID = ID(IDFromResourceURL(s))

		return nil
	}

	r.URL = ""
	r.ID = id

	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.URL != "" {
		return json.Marshal(r.URL) //nolint:wrapcheck
	}

	return json.Marshal(r.ID.String()) //nolint:wrapcheck
}

// IDFromResourceURL returns the last path segment, e.g. "3" for ".../rooms/3/".
func IDFromResourceURL(url string) string {
	segments := strings.Split(strings.TrimRight(url, "/"), "/")

	return segments[len(segments)-1]
}
