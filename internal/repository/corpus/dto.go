package corpus

import (
	"encoding/json"
	"strings"

	"github.com/keeva-cloud/mediadex/internal/db"
	"github.com/keeva-cloud/mediadex/internal/domain"
	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
)

// parseEntries converts store entries into candidate hits, dropping entries
// below the score floor. Ranks stay 0 here; the retrieval facade assigns final
// 1-based ranks after fusion and truncation.
func parseEntries(sr *db.SearchResult, kind hit.Kind, floor float64) []hit.Hit {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if entry.Score < floor {
			continue
		}
		hits = append(hits, entryToHit(entry, kind))
	}
	return hits
}

func entryToHit(entry db.SearchEntry, kind hit.Kind) hit.Hit {
	return hit.New(
		itemIDFromKey(entry.Key),
		entry.Score,
		kind,
		0,
		entry.Fields["content"],
		entry.Fields["category"],
		parseMetadata(entry.Fields["meta"]),
	)
}

// itemIDFromKey strips "mediadex:item:<tenant>:" from a hash key. Item IDs
// cannot contain colons, so the last segment is always the item ID.
func itemIDFromKey(key string) string {
	rest := strings.TrimPrefix(key, domain.ItemKeyPrefix)
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// parseMetadata decodes the JSON metadata field. Corrupt or absent metadata
// degrades to nil rather than failing the whole search.
func parseMetadata(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return m
}
