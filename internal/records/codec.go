package records

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// logLine is the persisted shape of a record. Key names are part of the
// on-disk format and must not change.
type logLine struct {
	Name           string   `json:"Name"`
	Email          string   `json:"Email"`
	Phone          string   `json:"Phone"`
	Skills         SkillSet `json:"Skills"`
	WorkExperience []string `json:"Work Experience"`
	Timestamp      string   `json:"Timestamp"`
}

var requiredKeys = []string{"Name", "Email", "Phone", "Skills", "Work Experience", "Timestamp"}

// EncodeLine serializes a record as one JSON object terminated by a newline.
func EncodeLine(rec ResumeRecord) ([]byte, error) {
	work := rec.WorkExperience
	if work == nil {
		work = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(logLine{
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Skills:         rec.Skills,
		WorkExperience: work,
		Timestamp:      rec.Timestamp,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeLine parses one log line. The line must be a JSON object carrying
// every record key.
func DecodeLine(data []byte) (ResumeRecord, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return ResumeRecord{}, err
	}
	if keys == nil {
		return ResumeRecord{}, fmt.Errorf("record is not an object")
	}
	for _, k := range requiredKeys {
		if _, ok := keys[k]; !ok {
			return ResumeRecord{}, fmt.Errorf("missing key %q", k)
		}
	}

	var l logLine
	if err := json.Unmarshal(data, &l); err != nil {
		return ResumeRecord{}, err
	}
	work := l.WorkExperience
	if work == nil {
		work = []string{}
	}
	return ResumeRecord{
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Skills:         l.Skills,
		WorkExperience: work,
		Timestamp:      l.Timestamp,
	}, nil
}
