package records

import "sort"

// DistinctSkills returns the sorted union of skills across records.
// Records carrying the sentinel contribute nothing.
func DistinctSkills(recs []ResumeRecord) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, rec := range recs {
		for _, skill := range rec.Skills {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

// Filter keeps records holding at least one of the selected skills.
// An empty selection returns recs unchanged.
func Filter(recs []ResumeRecord, selected []string) []ResumeRecord {
	if len(selected) == 0 {
		return recs
	}
	out := []ResumeRecord{}
	for _, rec := range recs {
		if !rec.Skills.Found() {
			continue
		}
		for _, skill := range selected {
			if rec.Skills.Contains(skill) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
