package redis

import "github.com/redis/rueidis"

// NewStoreForTest wraps an existing rueidis client (typically a mock) in a
// Store. Test-only constructor.
func NewStoreForTest(client rueidis.Client) *Store {
	return &Store{client: client}
}
