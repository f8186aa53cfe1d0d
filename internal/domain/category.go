package domain

// Category groups reviews. Slug is the natural key.
type Category struct {
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description" yaml:"description"`
}
