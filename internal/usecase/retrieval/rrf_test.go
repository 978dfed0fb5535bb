package retrieval

import (
	"math"
	"testing"

	"github.com/keeva-cloud/mediadex/internal/domain/search/hit"
)

func lexHit(id string, score float64) hit.Hit {
	return hit.New(id, score, hit.KindLexical, 0, "lex text", "", nil)
}

func vecHit(id string, score float64) hit.Hit {
	return hit.New(id, score, hit.KindSimilarity, 0, "vec text", "", nil)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFuseRRF_WeightedScores(t *testing.T) {
	// Default tuning: w_lex=0.3, w_vec=0.7, c=15.
	// A: lexical rank 1 only     -> 0.3/16           = 0.01875
	// B: lexical rank 5 + vector rank 1
	//                            -> 0.3/20 + 0.7/16  = 0.05875
	lexical := []hit.Hit{
		lexHit("A", 5.0),
		lexHit("l2", 4.0),
		lexHit("l3", 3.0),
		lexHit("l4", 2.0),
		lexHit("B", 1.0),
	}
	vector := []hit.Hit{vecHit("B", 0.9)}

	fused := fuseRRF(lexical, vector, DefaultTuning())

	if len(fused) != 5 {
		t.Fatalf("expected 5 fused hits, got %d", len(fused))
	}
	if fused[0].ItemID() != "B" {
		t.Fatalf("expected B first, got %s", fused[0].ItemID())
	}
	if !approxEqual(fused[0].Score(), 0.05875) {
		t.Errorf("B score = %.6f, want 0.05875", fused[0].Score())
	}
	if fused[1].ItemID() != "A" {
		t.Fatalf("expected A second, got %s", fused[1].ItemID())
	}
	if !approxEqual(fused[1].Score(), 0.01875) {
		t.Errorf("A score = %.6f, want 0.01875", fused[1].Score())
	}
}

func TestFuseRRF_BothListsBeatSingleList(t *testing.T) {
	// "both" sits at rank 2 in each list but still outranks the rank-1
	// single-source items: membership in both lists dominates.
	lexical := []hit.Hit{lexHit("lexonly", 5.0), lexHit("both", 4.0)}
	vector := []hit.Hit{vecHit("veconly", 0.9), vecHit("both", 0.8)}

	fused := fuseRRF(lexical, vector, DefaultTuning())

	if fused[0].ItemID() != "both" {
		t.Fatalf("expected both-lists item first, got %s", fused[0].ItemID())
	}
	// both = (0.3+0.7)/17 = 0.0588; veconly = 0.7/16 = 0.04375.
	if fused[1].ItemID() != "veconly" {
		t.Errorf("expected veconly second, got %s", fused[1].ItemID())
	}
}

func TestFuseRRF_Dedup(t *testing.T) {
	lexical := []hit.Hit{lexHit("dup", 5.0)}
	vector := []hit.Hit{vecHit("dup", 0.9)}

	fused := fuseRRF(lexical, vector, DefaultTuning())

	if len(fused) != 1 {
		t.Fatalf("expected 1 fused hit, got %d", len(fused))
	}
}

func TestFuseRRF_VectorPayloadWinsForDuplicates(t *testing.T) {
	lexical := []hit.Hit{lexHit("dup", 5.0)}
	vector := []hit.Hit{vecHit("dup", 0.9)}

	fused := fuseRRF(lexical, vector, DefaultTuning())

	if fused[0].Text() != "vec text" {
		t.Errorf("expected vector payload, got %q", fused[0].Text())
	}
	if fused[0].Kind() != hit.KindFusedRRF {
		t.Errorf("Kind() = %q, want fused_rrf", fused[0].Kind())
	}
}

func TestFuseRRF_TieBreakByItemID(t *testing.T) {
	// Equal weights make a rank-1 lexical-only and a rank-1 vector-only hit
	// score identically; the tie resolves by item ID ascending.
	tuning, err := NewTuning(0.5, 0.5, 15, 2)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}

	lexical := []hit.Hit{lexHit("zed", 5.0)}
	vector := []hit.Hit{vecHit("abc", 0.9)}

	fused := fuseRRF(lexical, vector, tuning)

	if len(fused) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(fused))
	}
	if !approxEqual(fused[0].Score(), fused[1].Score()) {
		t.Fatalf("expected equal scores, got %f and %f", fused[0].Score(), fused[1].Score())
	}
	if fused[0].ItemID() != "abc" || fused[1].ItemID() != "zed" {
		t.Errorf("unexpected tie order: %s, %s", fused[0].ItemID(), fused[1].ItemID())
	}
}

func TestFuseRRF_EmptyInputs(t *testing.T) {
	if fused := fuseRRF(nil, nil, DefaultTuning()); len(fused) != 0 {
		t.Errorf("expected empty output, got %d hits", len(fused))
	}

	fused := fuseRRF([]hit.Hit{lexHit("only", 1.0)}, nil, DefaultTuning())
	if len(fused) != 1 || fused[0].ItemID() != "only" {
		t.Errorf("unexpected output for single-source input: %v", fused)
	}
	if !approxEqual(fused[0].Score(), 0.3/16) {
		t.Errorf("score = %f, want %f", fused[0].Score(), 0.3/16)
	}
}

func TestFuseRRF_Deterministic(t *testing.T) {
	lexical := []hit.Hit{lexHit("a", 3.0), lexHit("b", 2.0), lexHit("c", 1.0)}
	vector := []hit.Hit{vecHit("c", 0.9), vecHit("d", 0.8)}

	first := fuseRRF(lexical, vector, DefaultTuning())
	for n := 0; n < 10; n++ {
		again := fuseRRF(lexical, vector, DefaultTuning())
		for i := range first {
			if first[i].ItemID() != again[i].ItemID() {
				t.Fatalf("non-deterministic order at %d: %s vs %s",
					i, first[i].ItemID(), again[i].ItemID())
			}
		}
	}
}
