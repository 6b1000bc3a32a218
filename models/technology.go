package models

import (
	"encoding/json"
	"strings"
)

// Technology is a single entry of a project's stack. IconSlug, when present,
// selects the badge icon rendered next to the name.
//
// Older clients sent technologies as bare strings in the form "name:iconSlug"
// (last colon wins). That encoding is still accepted on input but is never
// stored; rows always persist the two-field form.
type Technology struct {
	Name     string `json:"name"`
	IconSlug string `json:"iconSlug,omitempty"`
}

// ParseTechnology decodes the legacy colon-delimited form. The segment after
// the last colon is the icon slug; a string with no colon is just a name.
func ParseTechnology(raw string) Technology {
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		return Technology{Name: raw[:i], IconSlug: raw[i+1:]}
	}
	return Technology{Name: raw}
}

// String re-encodes the legacy form for clients that still expect it.
func (t Technology) String() string {
	if t.IconSlug == "" {
		return t.Name
	}
	return t.Name + ":" + t.IconSlug
}

// UnmarshalJSON accepts either the structured form {"name","iconSlug"} or a
// legacy bare string.
func (t *Technology) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*t = ParseTechnology(raw)
		return nil
	}

	type plain Technology
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Technology(p)
	return nil
}
