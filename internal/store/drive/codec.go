package drive

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// encodeAttributes serializes a record's attributes into the text that
// rides in the stored file's description field.
func encodeAttributes(attrs model.Attributes) (string, error) {
	if attrs == nil {
		attrs = model.Attributes{}
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("%w: encode: %v", model.ErrCodec, err)
	}
	return string(b), nil
}

// decodeAttributes parses a description field back into attributes. An
// empty or whitespace-only field is a valid empty mapping, never an error;
// malformed text is model.ErrCodec. Callers listing a container isolate
// the failure to the one record instead of aborting the enumeration.
func decodeAttributes(text string) (model.Attributes, error) {
	if strings.TrimSpace(text) == "" {
		return model.Attributes{}, nil
	}
	var attrs model.Attributes
	if err := json.Unmarshal([]byte(text), &attrs); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCodec, err)
	}
	if attrs == nil {
		attrs = model.Attributes{}
	}
	return attrs, nil
}
