package records

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"resume-extractor/internal/fields"
)

func sampleRecord() ResumeRecord {
	return ResumeRecord{
		Name:           "Jane Doe",
		Email:          "jane@x.com",
		Phone:          "+1 555-123-4567",
		Skills:         SkillSet{"Aws", "Python"},
		WorkExperience: []string{"• **🧑‍💼 Google Engineer** 🗓️ `2019 - 2021` built systems."},
		Timestamp:      "2024-03-09 14:05:07",
	}
}

func TestEncodeLineFormat(t *testing.T) {
	line, err := EncodeLine(sampleRecord())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(line)
	if !strings.HasSuffix(s, "\n") || strings.Count(s, "\n") != 1 {
		t.Fatalf("expected exactly one trailing newline, got %q", s)
	}
	for _, key := range []string{`"Name":`, `"Email":`, `"Phone":`, `"Skills":["Aws","Python"]`, `"Work Experience":`, `"Timestamp":`} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
	if strings.Contains(s, `<`) || strings.Contains(s, `&`) {
		t.Fatalf("unexpected html escaping in %s", s)
	}
}

func TestEncodeLineSkillSentinel(t *testing.T) {
	rec := sampleRecord()
	rec.Skills = nil
	rec.WorkExperience = nil

	line, err := EncodeLine(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(line), `"Skills":"`+fields.NotFound+`"`) {
		t.Fatalf("expected sentinel skills, got %s", line)
	}
	if !strings.Contains(string(line), `"Work Experience":[]`) {
		t.Fatalf("expected empty work list, got %s", line)
	}
}

func TestDecodeLineRoundTrip(t *testing.T) {
	want := sampleRecord()
	line, err := EncodeLine(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeLine(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestDecodeLineSentinelSkills(t *testing.T) {
	for _, skills := range []string{`"Not found"`, `null`, `[]`} {
		line := `{"Name":"A","Email":"Not found","Phone":"Not found","Skills":` + skills + `,"Work Experience":[],"Timestamp":"2024-01-01 00:00:00"}`
		rec, err := DecodeLine([]byte(line))
		if err != nil {
			t.Fatalf("skills %s: decode: %v", skills, err)
		}
		if rec.Skills.Found() {
			t.Fatalf("skills %s: expected sentinel, got %v", skills, rec.Skills)
		}
	}
}

func TestDecodeLineRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":    `{"Name":`,
		"array":       `["a"]`,
		"null":        `null`,
		"missing key": `{"Name":"A","Email":"","Phone":"","Skills":[],"Timestamp":""}`,
		"bad skills":  `{"Name":"A","Email":"","Phone":"","Skills":7,"Work Experience":[],"Timestamp":""}`,
	}
	for name, line := range cases {
		if _, err := DecodeLine([]byte(line)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCorruptLogErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := error(&CorruptLogError{Line: 3, Err: inner})
	if !errors.Is(err, ErrCorruptLog) || !errors.Is(err, inner) {
		t.Fatalf("expected both sentinel and cause, got %v", err)
	}
	var cle *CorruptLogError
	if !errors.As(err, &cle) || cle.Line != 3 {
		t.Fatalf("expected line 3, got %#v", cle)
	}
}
