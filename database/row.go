package database

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Row is one result record with values keyed by the query's RETURN
// projection. Whole nodes and relationships are flattened so their
// properties show up as "alias.property" keys.
type Row map[string]any

// Has reports whether the projection produced a non-null value for key.
// OPTIONAL MATCH misses come back as nulls.
func (r Row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the value for key as a string, or "" when absent or null.
func (r Row) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns the value for key as a bool, false when absent or null.
func (r Row) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Time returns the value for key as a time.Time, the zero time when absent.
// Bolt zoned datetimes arrive as time.Time; local datetimes as
// dbtype.LocalDateTime.
func (r Row) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case dbtype.LocalDateTime:
		return v.Time()
	}
	return time.Time{}
}

// flattenRecord converts a result record into a Row. Scalar projections
// (p.id, u.username) are stored as-is; nodes and relationships are expanded
// so their properties are addressable as "alias.property".
func flattenRecord(keys []string, values []any) Row {
	row := make(Row, len(keys))
	for i, key := range keys {
		switch v := values[i].(type) {
		case dbtype.Node:
			for prop, propVal := range v.Props {
				row[key+"."+prop] = propVal
			}
		case dbtype.Relationship:
			for prop, propVal := range v.Props {
				row[key+"."+prop] = propVal
			}
		default:
			row[key] = v
		}
	}
	return row
}
