// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// whitespace matches runs of any whitespace character.
	whitespace = regexp.MustCompile(`\s+`)
)

// transliterations maps accented and Turkish characters to their ASCII
// equivalents before kebab-casing. The map is applied case-insensitively.
var transliterations = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
	"â", "a", "Â", "a",
	"î", "i", "Î", "i",
	"û", "u", "Û", "u",
	"é", "e", "É", "e",
	"è", "e", "È", "e",
	"ê", "e", "Ê", "e",
	"à", "a", "À", "a",
	"ä", "a", "Ä", "a",
	"ß", "ss",
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Yazılım Çözümleri 2026" → "yazilim-cozumleri-2026"
//
// Deriving a slug from an already valid slug returns it unchanged, so
// generation is idempotent.
func Generate(s string) string {
	result := transliterations.Replace(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
