package records

import (
	"reflect"
	"testing"
)

func withSkills(name string, skills ...string) ResumeRecord {
	rec := sampleRecord()
	rec.Name = name
	if len(skills) == 0 {
		rec.Skills = nil
	} else {
		rec.Skills = SkillSet(skills)
	}
	return rec
}

func TestDistinctSkills(t *testing.T) {
	recs := []ResumeRecord{
		withSkills("a", "Python", "Sql"),
		withSkills("b"),
		withSkills("c", "Aws", "Python"),
	}

	got := DistinctSkills(recs)
	want := []string{"Aws", "Python", "Sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDistinctSkillsGrowsWithRecords(t *testing.T) {
	recs := []ResumeRecord{withSkills("a", "Python")}
	before := DistinctSkills(recs)
	after := DistinctSkills(append(recs, withSkills("b", "Java")))

	for _, s := range before {
		found := false
		for _, v := range after {
			if v == s {
				found = true
			}
		}
		if !found {
			t.Fatalf("skill %q lost after adding records: %v", s, after)
		}
	}
}

func TestDistinctSkillsEmpty(t *testing.T) {
	got := DistinctSkills(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFilter(t *testing.T) {
	a := withSkills("a", "Python", "Sql")
	b := withSkills("b")
	c := withSkills("c", "Aws")
	recs := []ResumeRecord{a, b, c}

	cases := []struct {
		name     string
		selected []string
		want     []ResumeRecord
	}{
		{name: "empty selection is identity", selected: nil, want: recs},
		{name: "any match", selected: []string{"Sql", "Aws"}, want: []ResumeRecord{a, c}},
		{name: "single", selected: []string{"Aws"}, want: []ResumeRecord{c}},
		{name: "disjoint", selected: []string{"Rust"}, want: []ResumeRecord{}},
		{name: "sentinel text never matches", selected: []string{"Not found"}, want: []ResumeRecord{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(recs, tc.selected)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", names(tc.want), names(got))
			}
		})
	}
}

func names(recs []ResumeRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}
