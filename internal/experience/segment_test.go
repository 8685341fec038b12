package experience

import (
	"reflect"
	"strings"
	"testing"

	"resume-extractor/internal/rules"
)

func newDefault() *Segmenter {
	return New(rules.Default().Experience, DefaultMarkers())
}

func TestSegmentSingleJob(t *testing.T) {
	text := "Jane Doe\njane@x.com\n+1 555-123-4567\nPython and AWS experience.\nExperience\nGoogle Engineer 2019 - 2021 built systems.\nEducation\nMIT"

	got := newDefault().Segment(text)
	want := []string{"• **🧑‍💼 Google Engineer** 🗓️ `2019 - 2021` built systems."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegmentMultipleJobs(t *testing.T) {
	text := "Work History\nGoogle Software Engineer Jan 2020 - Present. Built search.\nAmazon Developer 2017 - 2019\nEducation\nBSc"

	got := newDefault().Segment(text)
	want := []string{
		"• **🧑‍💼 Google Software Engineer Jan** 🗓️ `2020 - Present`. Built search.",
		"• **🧑‍💼 Amazon Developer** 🗓️ `2017 - 2019`",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegmentNoSectionReturnsEmpty(t *testing.T) {
	got := newDefault().Segment("Jane Doe\nEducation\nMIT")
	if got == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %q", got)
	}
}

func TestSegmentDropsTextBeforeFirstTrigger(t *testing.T) {
	text := "Experience\nSummary of roles.\nIntern at Teachnook, 2022 Jun\nEducation"

	got := newDefault().Segment(text)
	want := []string{"• **🧑‍💼 Intern at Teachnook** 🗓️ `2022 Jun`"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegmentBodyWithoutTriggersIsOneBlock(t *testing.T) {
	text := "Professional Background\nfreelance work since 2015 - now\nProjects\nnone"

	got := newDefault().Segment(text)
	want := []string{"• freelance work since 🗓️ `2015 - now`"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegmentPeriodBoundaryAndMissingDate(t *testing.T) {
	text := "Experience\nGoogle Intern 2019.Amazon Analyst 2020 - 2021\nSkills\nGo"

	got := newDefault().Segment(text)
	want := []string{
		"• **🧑‍💼 Google Intern** 2019",
		"• **🧑‍💼 Amazon Analyst** 🗓️ `2020 - 2021`",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSegmentKnownCompaniesAddBoundaries(t *testing.T) {
	text := "Experience\nInfosys Consultant 2018 - 2020\nAcme Corp role\nEducation"

	if got := newDefault().Segment(text); len(got) != 1 {
		t.Fatalf("expected one block without extra companies, got %q", got)
	}

	seg := New(rules.Default().WithCompanies("Infosys", "Acme").Experience, DefaultMarkers())
	got := seg.Segment(text)
	if len(got) != 2 {
		t.Fatalf("expected two blocks, got %q", got)
	}
	if !strings.HasPrefix(got[1], "• **🧑‍💼 Acme Corp role**") {
		t.Fatalf("unexpected second block %q", got[1])
	}
}

func TestSegmentEntriesNeverEmpty(t *testing.T) {
	text := "Experience\n.\nIntern\n.\nEngineer\n\nEducation"
	for _, entry := range newDefault().Segment(text) {
		if strings.TrimSpace(entry) == "" {
			t.Fatalf("empty entry in %q", entry)
		}
	}
}

func TestAnnotate(t *testing.T) {
	seg := New(rules.Default().Experience, Markers{Bullet: "- ", CompanyIcon: "@", DateIcon: "#"})

	tests := []struct {
		name  string
		block string
		want  string
	}{
		{name: "both", block: "Tata Analyst Mar 2021 to 2023", want: "- **@ Tata Analyst Mar** # `2021 to 2023`"},
		{name: "company only", block: "Amazon warehouse", want: "- **@ Amazon warehouse**"},
		{name: "date only", block: "worked 2010 - 2012", want: "- worked # `2010 - 2012`"},
		{name: "neither", block: "misc tasks", want: "- misc tasks"},
		{name: "blank", block: "   ", want: ""},
		{name: "company wrapped at its match", block: "xA1 A, 2019", want: "- xA1 **@ A**, 2019"},
		{name: "date inside company run", block: "2020 - Present at Foo", want: "- 2020 - **@ Present at Foo**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seg.Annotate(tt.block); got != tt.want {
				t.Fatalf("Annotate(%q) = %q, want %q", tt.block, got, tt.want)
			}
		})
	}
}

func TestDateWindowLimit(t *testing.T) {
	seg := newDefault()
	block := "2001 " + strings.Repeat("x", 45) + " 2005"
	if got := seg.Annotate(block); strings.Contains(got, "`") {
		t.Fatalf("expected no date annotation beyond the window, got %q", got)
	}
}
