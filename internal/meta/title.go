package meta

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var (
	separators = regexp.MustCompile(`[_-]`)
	spaces     = regexp.MustCompile(`\s+`)
)

// TitleFromURL guesses a readable title from a URL's structure: the last
// path segment if it looks like words, otherwise the host's domain without
// its TLD, otherwise the full host. Returns the input unchanged when it
// does not parse as a URL.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	if segment := lastPathSegment(u); segment != "" && !isAllNumbers(segment) {
		return cleanupTitle(segment)
	}

	if host := u.Hostname(); host != "" {
		parts := strings.Split(host, ".")
		if len(parts) >= 2 {
			domain := parts[len(parts)-2]
			if !isAllNumbers(domain) {
				return cleanupTitle(domain)
			}
		}
		return host
	}

	return rawURL
}

func lastPathSegment(u *url.URL) string {
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func isAllNumbers(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return len(s) > 0
}

// cleanupTitle turns a slug into words: separators become spaces, runs of
// whitespace collapse, and every word gets an initial capital.
func cleanupTitle(s string) string {
	s = separators.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")

	words := strings.Split(strings.TrimSpace(s), " ")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 && unicode.IsLower(runes[0]) {
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}
