package helper

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// cyrillic maps Uzbek Cyrillic letters to their official Latin spelling.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "j", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "x", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sh", 'ъ': "",
	'ы': "i", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya", 'ў': "o", 'қ': "q",
	'ғ': "g", 'ҳ': "h",
}

// GenerateSlug turns a post title into a URL-safe identifier.
// "O‘zbekiston Konstitutsiyasi" -> "ozbekiston-konstitutsiyasi"
func GenerateSlug(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range strings.ToLower(input) {
		if latin, ok := cyrillic[r]; ok {
			b.WriteString(latin)
			continue
		}
		switch r {
		// o‘ and g‘ are written with several apostrophe look-alikes
		case '\'', '‘', '’', 'ʻ', 'ʼ', '`':
			continue
		case ' ', '_', '.', ',', '/', '\t', '\n':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := slugInvalid.ReplaceAllString(b.String(), "")
	normalized := slugDashes.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
