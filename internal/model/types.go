package model

import "time"

// Kind is the logical entity type of a record. It is recovered from the
// stored file's name suffix, or from the MIME type for uploaded media.
type Kind string

const (
	KindMemory       Kind = "memory"
	KindEvent        Kind = "event"
	KindFamilyMember Kind = "family_member"
	KindStory        Kind = "story"
	KindProfile      Kind = "profile"
	KindTheme        Kind = "theme"
	KindPhoto        Kind = "photo"

	// KindUnknown marks files whose suffix is not in the suffix table.
	// They are excluded from typed listings but kept in raw listings.
	KindUnknown Kind = "unknown"
)

// MarkerKinds are the kinds persisted as zero-byte marker files.
// Photos and videos are real uploads and carry their original filename.
var MarkerKinds = []Kind{
	KindMemory, KindEvent, KindFamilyMember, KindStory, KindProfile, KindTheme,
}

// Attributes is the structured payload of a record. Values must be
// JSON-compatible (strings, numbers, booleans, string arrays, plain nested
// objects); anything else never belongs here.
type Attributes map[string]any

// String returns the string value for key, or "" when absent or not a string.
func (a Attributes) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Strings returns the string-array value for key. JSON decoding yields
// []any, so both []string and []any of strings are accepted.
func (a Attributes) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Record is a logical typed entity reconstructed from a stored file.
// ID is store-assigned, stable and opaque; it is the only identity.
// Name is derived from the title at creation time and is not unique.
type Record struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Name        string     `json:"name"`
	Attributes  Attributes `json:"attributes"`
	MIMEType    string     `json:"mimeType,omitempty"`
	ViewLink    string     `json:"viewLink,omitempty"`
	ContentLink string     `json:"contentLink,omitempty"`
	CreatedTime time.Time  `json:"createdTime,omitempty"`
}
