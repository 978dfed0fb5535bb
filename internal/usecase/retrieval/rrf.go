package retrieval

import (
	"sort"

	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
)

// fuseRRF merges the lexical and vector candidate lists via weighted
// Reciprocal Rank Fusion:
//
//	score(d) = w_lex * 1/(rank_lex(d) + c) + w_vec * 1/(rank_vec(d) + c)
//
// Ranks are 1-based positions in each source list; a document absent from a
// source contributes nothing for that source. A document appearing in both
// lists therefore always outscores one appearing at the same rank in a single
// list. When a document appears in both, the vector hit's payload is kept.
// Output is sorted by fused score descending, item ID ascending on ties.
func fuseRRF(lexical, vector []hit.Hit, t Tuning) []hit.Hit {
	type scored struct {
		h     hit.Hit
		score float64
	}

	c := float64(t.RRFConstant())
	merged := make(map[string]*scored, len(lexical)+len(vector))

	for i, h := range lexical {
		s := t.LexicalWeight() / (float64(i+1) + c)
		merged[h.ItemID()] = &scored{h: h, score: s}
	}

	for i, h := range vector {
		s := t.VectorWeight() / (float64(i+1) + c)
		if existing, ok := merged[h.ItemID()]; ok {
			existing.score += s
			existing.h = h // vector payload wins for duplicates
		} else {
			merged[h.ItemID()] = &scored{h: h, score: s}
		}
	}

	fused := make([]hit.Hit, 0, len(merged))
	for _, s := range merged {
		fused = append(fused, hit.New(
			s.h.ItemID(), s.score, hit.KindFusedRRF, 0,
			s.h.Text(), s.h.Category(), s.h.Metadata(),
		))
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score() != fused[j].Score() {
			return fused[i].Score() > fused[j].Score()
		}
		return fused[i].ItemID() < fused[j].ItemID()
	})

	return fused
}
