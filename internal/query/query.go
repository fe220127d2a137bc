// Package query provides pure, stateless transforms over record listings.
// The backing store has no query language, so everything here runs
// client-side on the slice a listing produced. No ranking: matches keep
// their incoming order.
package query

import (
	"sort"
	"strings"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

// searchFields are the attribute keys concatenated into the per-record
// haystack for free-text search.
var searchFields = []string{"title", "content", "author", "name", "bio", "location", "description"}

// FilterByTag retains records whose tags array contains tag. Tag matching
// is case-sensitive.
func FilterByTag(records []*model.Record, tag string) []*model.Record {
	out := make([]*model.Record, 0, len(records))
	for _, r := range records {
		for _, t := range r.Attributes.Strings("tags") {
			if t == tag {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Search retains records whose searchable string contains q,
// case-insensitively. An empty query matches everything and short-circuits
// without scanning.
func Search(records []*model.Record, q string) []*model.Record {
	if q == "" {
		return records
	}
	needle := strings.ToLower(q)
	out := make([]*model.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(haystack(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func haystack(r *model.Record) string {
	parts := make([]string, 0, len(searchFields)+1)
	for _, f := range searchFields {
		if v := r.Attributes.String(f); v != "" {
			parts = append(parts, v)
		}
	}
	if tags := r.Attributes.Strings("tags"); len(tags) > 0 {
		parts = append(parts, strings.Join(tags, " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SortByDateDesc orders newest-first on the "date" attribute. The store
// guarantees no listing order, so every chronological view sorts here.
// Dates are compared as strings, which is correct for the ISO dates the
// forms write.
func SortByDateDesc(records []*model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Attributes.String("date") > records[j].Attributes.String("date")
	})
}

// SortByDateAsc orders oldest-first on the "date" attribute.
func SortByDateAsc(records []*model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Attributes.String("date") < records[j].Attributes.String("date")
	})
}

// SortByName orders alphabetically on the "name" attribute.
func SortByName(records []*model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Attributes.String("name") < records[j].Attributes.String("name")
	})
}

// SortByCreatedDesc orders newest-first on the store's creation timestamp,
// used for media where no date attribute is required.
func SortByCreatedDesc(records []*model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedTime.After(records[j].CreatedTime)
	})
}
