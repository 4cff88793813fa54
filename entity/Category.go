package entity

// Category is static seed data and is never persisted.
type Category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
