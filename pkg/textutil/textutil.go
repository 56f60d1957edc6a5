// Package textutil normaliza texto para búsquedas y códigos (sin tildes, minúsculas).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold quita tildes y diacríticos y pasa a minúsculas: "Café Ñandú" -> "cafe nandu".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// SearchKey concatena y normaliza los campos buscables de un registro.
func SearchKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := Fold(p); f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Slug genera un código en minúsculas separado por guiones: "Bebidas Frías & Jugos" -> "bebidas-frias-jugos".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range Fold(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
