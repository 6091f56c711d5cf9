package model

// Category is a catalog grouping label. Names are unique within the
// collection regardless of case.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
