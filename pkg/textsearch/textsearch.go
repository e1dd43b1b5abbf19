// Package textsearch implementa coincidencia de texto insensible a mayúsculas y tildes,
// para que "camara" encuentre "Cámara Domo" igual que lo haría un usuario en el buscador.
package textsearch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza s: descompone (NFD), elimina marcas diacríticas, recompone y aplica case folding.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Contains indica si needle aparece en haystack tras normalizar ambos.
// Un needle vacío coincide siempre.
func Contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAny indica si needle aparece en alguno de los campos.
func ContainsAny(needle string, fields ...string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	folded := Fold(strings.TrimSpace(needle))
	for _, f := range fields {
		if f != "" && strings.Contains(Fold(f), folded) {
			return true
		}
	}
	return false
}
