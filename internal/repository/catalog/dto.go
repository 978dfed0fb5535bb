package catalog

import (
	"encoding/binary"
	"encoding/json"
	"math"

	domdoc "github.com/keeva-cloud/mediadex/internal/domain/document"
)

// buildHashFields converts a domain Document into a flat map[string]string for HSET.
func buildHashFields(doc *domdoc.Document) map[string]string {
	m := map[string]string{
		"item_id":   doc.ItemID(),
		"tenant_id": doc.TenantID(),
		"content":   doc.Text(),
		"vector":    vectorToBytes(doc.Embedding()),
	}
	if doc.Category() != "" {
		m["category"] = doc.Category()
	}
	if len(doc.Metadata()) > 0 {
		if data, err := json.Marshal(doc.Metadata()); err == nil {
			m["meta"] = string(data)
		}
	}
	return m
}

// parseHashFields converts a flat hash map back into a domain Document.
func parseHashFields(itemID, tenantID string, m map[string]string) domdoc.Document {
	var metadata map[string]string
	if raw := m["meta"]; raw != "" {
		_ = json.Unmarshal([]byte(raw), &metadata)
	}

	return domdoc.Reconstruct(
		itemID,
		tenantID,
		m["category"],
		m["content"],
		bytesToVector(m["vector"]),
		metadata,
	)
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// bytesToVector deserializes a binary string back to []float32.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
