package model

import "regexp"

// shadePattern matches a six-digit hex color such as #1a2B3c.
var shadePattern = regexp.MustCompile(`^#[a-fA-F0-9]{6}$`)

type Color struct {
	Name   string   `json:"name"`
	Shades []string `json:"shades"`
}

type Palette struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
	UserID string  `json:"user"`
}

func ValidShade(shade string) bool {
	return shadePattern.MatchString(shade)
}
