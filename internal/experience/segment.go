// Package experience locates the work-experience section of resume text and
// splits it into annotated job entries.
//
// The rules are heuristics: the company is the first capitalised run of
// letters in a block and the date range must close within 40 characters of
// its opening year. Results are best-effort and lossy by nature.
package experience

import (
	"regexp"
	"strings"

	"resume-extractor/internal/rules"
)

// Markers controls how annotations are rendered.
type Markers struct {
	Bullet      string
	CompanyIcon string
	DateIcon    string
}

// DefaultMarkers returns the markdown-flavoured markers.
func DefaultMarkers() Markers {
	return Markers{
		Bullet:      "• ",
		CompanyIcon: "🧑‍💼",
		DateIcon:    "🗓️",
	}
}

var companyPattern = regexp.MustCompile(`[A-Z][A-Za-z &,-]{2,}`)

// Segmenter turns resume text into work-experience entries.
type Segmenter struct {
	section  *regexp.Regexp
	boundary *regexp.Regexp
	date     *regexp.Regexp
	markers  Markers
}

// New compiles a Segmenter from the given rule tables. Rules should be
// validated first; empty tables produce a Segmenter that never matches.
func New(r rules.Experience, markers Markers) *Segmenter {
	s := &Segmenter{markers: markers}

	headers := alternation(r.SectionHeaders)
	terminators := alternation(r.SectionTerminators)
	if headers != "" {
		end := `$`
		if terminators != "" {
			end = terminators + `|$`
		}
		s.section = regexp.MustCompile(`(?is)(?:` + headers + `)(.*?)(?:` + end + `)`)
	}
	if triggers := alternation(r.Triggers()); triggers != "" {
		s.boundary = regexp.MustCompile(`(?i)(?:^|[\n.])\s*(` + triggers + `)`)
	}
	suffix := `\b\d{4}\b`
	if extra := alternation(r.DateSuffixes); extra != "" {
		suffix += `|` + extra
	}
	s.date = regexp.MustCompile(`(?i)\b\d{4}\b[^.\n]{0,40}(?:` + suffix + `)`)
	return s
}

// Segment returns the annotated job entries found in text, in order of
// appearance. It returns an empty, non-nil slice when there is no section.
func (s *Segmenter) Segment(text string) []string {
	out := []string{}
	body, ok := s.Section(text)
	if !ok {
		return out
	}
	for _, block := range s.Blocks(body) {
		if entry := s.Annotate(block); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// Section returns the trimmed body of the first experience-like section.
func (s *Segmenter) Section(text string) (string, bool) {
	if s.section == nil {
		return "", false
	}
	m := s.section.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Blocks splits a section body at boundary triggers. Each block runs from
// its trigger to the separator in front of the next one. Text ahead of the
// first trigger is dropped; a body without triggers is a single block.
func (s *Segmenter) Blocks(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	var matches [][]int
	if s.boundary != nil {
		matches = s.boundary.FindAllStringSubmatchIndex(body, -1)
	}
	if len(matches) == 0 {
		return []string{strings.TrimSpace(body)}
	}

	blocks := make([]string, 0, len(matches))
	for i, m := range matches {
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if block := strings.TrimSpace(body[m[2]:end]); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Annotate highlights the first company-like run and the first date range
// of a block and prefixes it with the bullet marker. Blank blocks yield "".
func (s *Segmenter) Annotate(block string) string {
	if strings.TrimSpace(block) == "" {
		return ""
	}
	type span struct {
		start, end int
		wrap       func(string) string
	}
	var spans []span

	if loc := companyPattern.FindStringIndex(block); loc != nil {
		end := loc[0] + len(strings.TrimRight(block[loc[0]:loc[1]], " ,-"))
		if end > loc[0] {
			spans = append(spans, span{loc[0], end, func(c string) string {
				return "**" + s.markers.CompanyIcon + " " + c + "**"
			}})
		}
	}
	if loc := s.date.FindStringIndex(block); loc != nil {
		// A date inside the company run stays unmarked.
		if len(spans) == 0 || loc[0] >= spans[0].end || loc[1] <= spans[0].start {
			spans = append(spans, span{loc[0], loc[1], func(d string) string {
				return s.markers.DateIcon + " `" + d + "`"
			}})
		}
	}
	if len(spans) == 2 && spans[1].start < spans[0].start {
		spans[0], spans[1] = spans[1], spans[0]
	}

	var b strings.Builder
	b.WriteString(s.markers.Bullet)
	prev := 0
	for _, sp := range spans {
		b.WriteString(block[prev:sp.start])
		b.WriteString(sp.wrap(block[sp.start:sp.end]))
		prev = sp.end
	}
	b.WriteString(block[prev:])
	return strings.TrimSpace(b.String())
}

func alternation(words []string) string {
	var alts []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			alts = append(alts, regexp.QuoteMeta(w))
		}
	}
	return strings.Join(alts, "|")
}
