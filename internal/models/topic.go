package models

// Topic represents a discussion topic, keyed by its slug
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
