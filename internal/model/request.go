package model

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type PaletteRequest struct {
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
}

type GroupRequest struct {
	Name     string   `json:"name"`
	Palettes []string `json:"palettes"`
}
