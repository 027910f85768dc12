// Package domain defines the persisted document types and their
// write-time validation rules. Field names in bson/json tags mirror
// the wire schema exactly (camelCase, `_id` for document ids).
package domain
