package records

import (
	"time"

	"resume-extractor/internal/experience"
	"resume-extractor/internal/fields"
	"resume-extractor/internal/rules"
)

// Builder assembles a ResumeRecord from raw resume text.
type Builder struct {
	Skills    *fields.Matcher
	Segmenter *experience.Segmenter
	Now       func() time.Time
}

// NewBuilder compiles matchers for the given rule tables.
func NewBuilder(r rules.Rules) *Builder {
	return &Builder{
		Skills:    fields.New(r.Skills),
		Segmenter: experience.New(r.Experience, experience.DefaultMarkers()),
		Now:       time.Now,
	}
}

// Build runs every matcher over text and stamps the result. It never fails;
// missing fields carry their sentinel values.
func (b *Builder) Build(text string) ResumeRecord {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return ResumeRecord{
		Name:           fields.Name(text),
		Email:          fields.Email(text),
		Phone:          fields.Phone(text),
		Skills:         SkillSet(b.Skills.Skills(text)),
		WorkExperience: b.Segmenter.Segment(text),
		Timestamp:      now().Format(TimestampLayout),
	}
}
