package fields

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// NotFound marks a field the matchers could not locate.
	NotFound = "Not found"
	// NoName is returned by Name for empty input.
	NoName = "N/A"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s()-]{8,}\d`)
)

// Email returns the first email-like token in text, or NotFound.
func Email(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return NotFound
}

// Phone returns the first phone-like token in text, or NotFound.
func Phone(text string) string {
	if m := phonePattern.FindString(text); m != "" {
		return m
	}
	return NotFound
}

// Name returns the first line of text, trimmed, or NoName for empty input.
func Name(text string) string {
	if text == "" {
		return NoName
	}
	first, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(first)
}

// Matcher finds vocabulary skills in text.
type Matcher struct {
	pattern *regexp.Regexp
}

// New compiles a case-insensitive matcher for the given vocabulary.
// Blank entries are ignored; a vocabulary with no usable entries matches nothing.
func New(vocabulary []string) *Matcher {
	var alts []string
	for _, v := range vocabulary {
		if v = strings.TrimSpace(v); v != "" {
			alts = append(alts, regexp.QuoteMeta(v))
		}
	}
	m := &Matcher{}
	if len(alts) > 0 {
		m.pattern = regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
	}
	return m
}

// Skills returns the distinct, title-cased skills found in text, sorted.
// A nil result means no skill matched.
func (m *Matcher) Skills(text string) []string {
	if m == nil || m.pattern == nil {
		return nil
	}
	// Casers are stateful; one per call keeps Matcher safe to share.
	title := cases.Title(language.English)
	seen := make(map[string]struct{})
	var out []string
	for _, raw := range m.pattern.FindAllString(text, -1) {
		skill := titleWords(title, strings.TrimSpace(raw))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// titleWords title-cases every run of cased letters on its own, so a letter
// after any non-letter is capitalised: "node.js" becomes "Node.Js".
func titleWords(title cases.Caser, s string) string {
	var b strings.Builder
	start := -1
	for i, r := range s {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(title.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(title.String(s[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
