package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AlternateFormThreshold separates species-numbered creatures from the
// alternate forms PokeAPI numbers from 10001 upwards.
const AlternateFormThreshold = 10000

const (
	artworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
	spriteURL  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"
)

var trailingID = regexp.MustCompile(`/(\d+)/$`)

// ExtractID returns the trailing integer of a PokeAPI reference URL such as
// https://pokeapi.co/api/v2/pokemon-species/25/, or 0 when there is none.
func ExtractID(url string) int {
	m := trailingID.FindStringSubmatch(url)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// DisplayName turns a PokeAPI identifier into a label: hyphen-separated parts
// are capitalized and space-joined, gender markers are dropped.
// "mr-mime-galar" becomes "Mr Mime Galar", "nidoran-f" becomes "Nidoran".
func DisplayName(name string) string {
	parts := strings.Split(name, "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "male", "female", "m", "f":
			continue
		}
		out = append(out, capitalize(p))
	}
	return strings.Join(out, " ")
}

// TitleWords capitalizes every space- or hyphen-separated word without the
// gender filtering DisplayName applies.
func TitleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func OfficialArtworkURL(id int) string {
	return fmt.Sprintf(artworkURL, id)
}

func SpriteURL(id int) string {
	return fmt.Sprintf(spriteURL, id)
}

func IsAlternateForm(id int) bool {
	return id > AlternateFormThreshold
}
