package db

// Visibility holds the hard equality predicates pushed down into every search.
// They are applied inside the store query, never post-hoc: rows outside the
// tenant (or category, when set) are not fetched at all.
type Visibility struct {
	TenantID string
	Category string // "" = no category filter
}

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Visibility   Visibility
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery is the input for BM25 text search. Tokens are OR-joined: partial
// term overlap still yields results (a conjunctive policy would silently empty
// a multi-token query whenever one token is absent).
type TextQuery struct {
	IndexName    string
	Visibility   Visibility
	Tokens       []string
	TopK         int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
