package drive

import (
	"strings"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// Marker files encode their kind in the file name: "<slug>.<suffix>".
// This table is the only place the mapping lives; nothing outside this
// package parses file names.
var suffixByKind = map[model.Kind]string{
	model.KindMemory:       "memory",
	model.KindEvent:        "event",
	model.KindFamilyMember: "family",
	model.KindStory:        "story",
	model.KindProfile:      "profile",
	model.KindTheme:        "theme",
}

var kindBySuffix = func() map[string]model.Kind {
	m := make(map[string]model.Kind, len(suffixByKind))
	for k, s := range suffixByKind {
		m[s] = k
	}
	return m
}()

// markerName derives the stored file name for a marker record: the title
// lowercased with whitespace runs collapsed to single hyphens, plus the
// kind suffix. Punctuation is left untouched. Two titles may slug to the
// same name; the store happily keeps both files and identity stays with
// the store id — duplicates are a documented looseness, not deduplicated
// here.
func markerName(kind model.Kind, title string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	return slug + "." + suffixByKind[kind]
}

// kindOfName classifies a stored file name by its last dot-delimited
// segment. Names without a known suffix are KindUnknown.
func kindOfName(name string) model.Kind {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return model.KindUnknown
	}
	if k, ok := kindBySuffix[name[i+1:]]; ok {
		return k
	}
	return model.KindUnknown
}

// kindOfFile resolves the kind of a stored file: suffix first, then MIME
// type for uploaded media. The mapping is total; anything unclassifiable
// is KindUnknown.
func kindOfFile(name, mimeType string) model.Kind {
	if k := kindOfName(name); k != model.KindUnknown {
		return k
	}
	if strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "video/") {
		return model.KindPhoto
	}
	return model.KindUnknown
}
