package discovery

import (
	"path/filepath"
	"strings"
	"unicode"
)

// componentExts are the file types an icon component can live in
var componentExts = map[string]bool{
	".tsx": true,
	".jsx": true,
	".ts":  true,
	".js":  true,
	".svg": true,
}

// IconNameFromFile derives the kebab-case icon name from a component file.
// HeartPulse.tsx, IconHeartPulse.tsx and heart-pulse.svg all give "heart-pulse".
// The second return is false for files that are not icon components.
func IconNameFromFile(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !componentExts[ext] {
		return "", false
	}
	stem := strings.TrimSuffix(base, ext)

	// index.ts, Foo.test.tsx, Foo.stories.tsx, types.d.ts
	if stem == "" || strings.Contains(stem, ".") || strings.EqualFold(stem, "index") {
		return "", false
	}
	if strings.HasPrefix(stem, "_") {
		return "", false
	}

	if ext == ".svg" {
		return KebabCase(stem), true
	}

	// components are PascalCase; hooks and helpers are not
	first := []rune(stem)[0]
	if !unicode.IsUpper(first) {
		return "", false
	}

	if trimmed := strings.TrimPrefix(stem, "Icon"); trimmed != stem && trimmed != "" && unicode.IsUpper([]rune(trimmed)[0]) {
		stem = trimmed
	}
	return KebabCase(stem), true
}

// KebabCase converts PascalCase or camelCase to kebab-case.
// Acronym runs and digit runs become their own words: XCircle -> x-circle,
// Volume2 -> volume-2.
func KebabCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if r == '_' || r == ' ' || r == '-' {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
			continue
		}
		if i > 0 && b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
			prev := runes[i-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				b.WriteByte('-')
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteByte('-')
			case unicode.IsDigit(r) && unicode.IsLetter(prev):
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimSuffix(b.String(), "-")
}
