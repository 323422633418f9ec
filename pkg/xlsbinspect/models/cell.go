package models

// NullHeaderKey is the record key used for a column whose header cell is blank.
const NullHeaderKey = "null"

// Record maps a column name (or header label) to a cell value.
// Values are nil, bool, int64, float64, string or time.Time.
type Record map[string]interface{}

// HeaderKey returns the record key for a possibly blank header.
func HeaderKey(header *string) string {
	if header == nil {
		return NullHeaderKey
	}
	return *header
}
