package records

// RecordResponse is the outward-facing representation of a record.
type RecordResponse struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         SkillSet `json:"skills"`
	WorkExperience []string `json:"workExperience"`
	Timestamp      string   `json:"timestamp"`
}

// UploadResponse is returned after an extraction cycle.
type UploadResponse struct {
	Record     RecordResponse `json:"record"`
	Saved      bool           `json:"saved"`
	SaveError  string         `json:"saveError,omitempty"`
	ArchiveKey string         `json:"archiveKey,omitempty"`
}

// ListResponse is returned by the record listing.
type ListResponse struct {
	Total   int              `json:"total"`
	Records []RecordResponse `json:"records"`
	Skills  []string         `json:"skills"`
	Warning string           `json:"warning,omitempty"`
}

type extractTextRequest struct {
	Text string `json:"text"`
}

func toResponse(rec ResumeRecord) RecordResponse {
	work := rec.WorkExperience
	if work == nil {
		work = []string{}
	}
	return RecordResponse{
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Skills:         rec.Skills,
		WorkExperience: work,
		Timestamp:      rec.Timestamp,
	}
}

func toUploadResponse(res UploadResult) UploadResponse {
	out := UploadResponse{
		Record:     toResponse(res.Record),
		Saved:      res.Saved(),
		ArchiveKey: res.ArchiveKey,
	}
	if res.SaveErr != nil {
		out.SaveError = "failed to save record"
	}
	return out
}
