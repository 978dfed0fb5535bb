package domain

// KeyPrefix namespaces every mediadex key in the corpus store.
const KeyPrefix = "mediadex:"

// ItemKeyPrefix is the hash key namespace for corpus documents.
const ItemKeyPrefix = KeyPrefix + "item:"

// IndexName is the FT index covering all corpus documents. One corpus, one
// index; tenancy is a filter predicate, not a physical partition.
const IndexName = KeyPrefix + "items:idx"

// ItemKey builds the hash key for a document. Uniqueness is (tenant, item),
// so both segments are part of the key.
func ItemKey(tenantID, itemID string) string {
	return ItemKeyPrefix + tenantID + ":" + itemID
}
