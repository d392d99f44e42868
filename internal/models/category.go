package models

// Category is a derived projection row: how many records use a category.
// The wire names (cat/entry) are kept for the existing web client.
type Category struct {
	Name     string `json:"cat"`
	Entries  int    `json:"entry"`
	Archived bool   `json:"-"`
}
