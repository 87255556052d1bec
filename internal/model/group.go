package model

// Group is a named collection of palette ids owned by one user.
type Group struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Palettes []string `json:"palettes"`
	UserID   string   `json:"user"`
}
