package records

import (
	"encoding/json"
	"fmt"

	"resume-extractor/internal/fields"
)

// TimestampLayout is the fixed creation-time format of a record.
const TimestampLayout = "2006-01-02 15:04:05"

// ResumeRecord is the structured result of one extraction. Records are
// treated as values: nothing in this package mutates one after Build.
type ResumeRecord struct {
	Name           string
	Email          string
	Phone          string
	Skills         SkillSet
	WorkExperience []string
	Timestamp      string
}

// SkillSet is a deduplicated list of skills. An empty set stands for the
// "Not found" sentinel and is serialized as that string.
type SkillSet []string

// Found reports whether the set holds real skills rather than the sentinel.
func (s SkillSet) Found() bool {
	return len(s) > 0
}

// Contains reports whether skill is in the set.
func (s SkillSet) Contains(skill string) bool {
	for _, v := range s {
		if v == skill {
			return true
		}
	}
	return false
}

// String renders the set for display.
func (s SkillSet) String() string {
	if !s.Found() {
		return fields.NotFound
	}
	return fmt.Sprint([]string(s))
}

// MarshalJSON encodes the set as an array, or the sentinel string when empty.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	if !s.Found() {
		return json.Marshal(fields.NotFound)
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON accepts an array of strings, or any string / null as the sentinel.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.(type) {
	case nil, string:
		*s = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	if len(list) == 0 {
		list = nil
	}
	*s = list
	return nil
}
