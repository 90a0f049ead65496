package domain

// Map is a downloadable network map. Path is an opaque redirect target.
type Map struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description,omitempty" db:"description"`
	Path         string `json:"path" db:"path"`
	PreviewImage string `json:"preview_image,omitempty" db:"preview_image"`
	HexColour    string `json:"hex_colour" db:"hex_colour"`
	Slug         string `json:"slug" db:"slug"`
}
