package retrieval

import (
	"fmt"
	"math"

	"github.com/keeva-cloud/mediadex/internal/domain"
)

// Fusion defaults. The vector-heavy weighting reflects that dense retrieval
// usually carries more signal for natural-language queries, with the lexical
// list acting as a keyword anchor.
const (
	DefaultLexicalWeight   = 0.3
	DefaultVectorWeight    = 0.7
	DefaultRRFConstant     = 15
	DefaultOverfetchFactor = 2
)

// Tuning holds the fusion parameters (immutable value object). A Service is
// constructed with one Tuning and never mutates it; changing weights means
// constructing a new Service.
type Tuning struct {
	lexicalWeight   float64
	vectorWeight    float64
	rrfConstant     int
	overfetchFactor int
}

// NewTuning validates fusion parameters. Weights must be non-negative and sum
// to 1.0; the RRF constant and over-fetch factor must be at least 1.
func NewTuning(lexicalWeight, vectorWeight float64, rrfConstant, overfetchFactor int) (Tuning, error) {
	if lexicalWeight < 0 || vectorWeight < 0 {
		return Tuning{}, fmt.Errorf("%w: fusion weights must not be negative", domain.ErrValidation)
	}
	if math.Abs(lexicalWeight+vectorWeight-1.0) > 1e-9 {
		return Tuning{}, fmt.Errorf("%w: fusion weights must sum to 1.0", domain.ErrValidation)
	}
	if rrfConstant < 1 {
		return Tuning{}, fmt.Errorf("%w: rrf constant must be at least 1", domain.ErrValidation)
	}
	if overfetchFactor < 1 {
		return Tuning{}, fmt.Errorf("%w: overfetch factor must be at least 1", domain.ErrValidation)
	}
	return Tuning{
		lexicalWeight:   lexicalWeight,
		vectorWeight:    vectorWeight,
		rrfConstant:     rrfConstant,
		overfetchFactor: overfetchFactor,
	}, nil
}

// DefaultTuning returns the stock fusion parameters.
func DefaultTuning() Tuning {
	return Tuning{
		lexicalWeight:   DefaultLexicalWeight,
		vectorWeight:    DefaultVectorWeight,
		rrfConstant:     DefaultRRFConstant,
		overfetchFactor: DefaultOverfetchFactor,
	}
}

// LexicalWeight returns the BM25 list weight.
func (t Tuning) LexicalWeight() float64 { return t.lexicalWeight }

// VectorWeight returns the KNN list weight.
func (t Tuning) VectorWeight() float64 { return t.vectorWeight }

// RRFConstant returns the rank-smoothing constant c in w/(rank+c).
func (t Tuning) RRFConstant() int { return t.rrfConstant }

// OverfetchFactor returns the per-source candidate multiplier applied to the
// requested limit before fusing.
func (t Tuning) OverfetchFactor() int { return t.overfetchFactor }
