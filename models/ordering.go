package models

// OrderedRef is the id + sortOrder projection the reordering engine works on.
// Both projects and certificates reduce to it, so the engine never needs to
// know which collection it is moving.
type OrderedRef struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}
