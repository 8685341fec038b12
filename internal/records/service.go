package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-extractor/internal/extract"
	"resume-extractor/internal/shared/metrics"
	"resume-extractor/internal/shared/storage/object"
	"resume-extractor/internal/shared/telemetry"
	"resume-extractor/internal/shared/util"
)

const defaultMaxUploadBytes = 10 << 20

// CorruptLogWarning is the notice shown when stored records cannot be read.
const CorruptLogWarning = "stored resume data is corrupted; no records were loaded"

// UploadResult is the outcome of one extraction cycle. Record is always
// usable; SaveErr reports a failed append.
type UploadResult struct {
	Record     ResumeRecord
	ArchiveKey string
	SaveErr    error
}

// Saved reports whether the record reached the store.
func (r UploadResult) Saved() bool {
	return r.SaveErr == nil
}

// ListResult is a filtered view over the stored records.
type ListResult struct {
	Total   int
	Records []ResumeRecord
	Skills  []string
	Warning string
}

// Service runs extraction cycles and queries the stored records.
type Service struct {
	Builder  *Builder
	Store    Store
	Archive  object.ObjectStore
	MaxBytes int64
	// PDFText converts an uploaded document to text; extract.TextFromPDF when nil.
	PDFText func(ctx context.Context, data []byte) (string, error)
}

// Upload extracts a record from a PDF document and appends it to the store.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (UploadResult, error) {
	if strings.TrimSpace(fileName) == "" || r == nil {
		return UploadResult{}, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}
	start := time.Now()
	metrics.IncExtractionStarted()

	data, err := s.readLimited(r)
	if err != nil {
		metrics.IncExtractionFailed()
		return UploadResult{}, err
	}

	pdfText := s.PDFText
	if pdfText == nil {
		pdfText = extract.TextFromPDF
	}
	text, err := pdfText(ctx, data)
	if err != nil {
		metrics.IncExtractionFailed()
		if errors.Is(err, extract.ErrUnsupported) {
			return UploadResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return UploadResult{}, ctxErr
		}
		return UploadResult{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	archiveKey := s.archive(ctx, fileName, data, text)
	result := s.buildAndAppend(ctx, text)
	result.ArchiveKey = archiveKey

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(metrics.SinceMillis(start))
	return result, nil
}

// ExtractText runs the extraction cycle over already-extracted text.
func (s *Service) ExtractText(ctx context.Context, text string) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}
	start := time.Now()
	metrics.IncExtractionStarted()
	result := s.buildAndAppend(ctx, text)
	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(metrics.SinceMillis(start))
	return result, nil
}

// List loads every record and keeps those holding any of skills.
// A corrupt log yields an empty result with Warning set.
func (s *Service) List(ctx context.Context, skills []string) (ListResult, error) {
	all, warning, err := s.loadAll(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Total:   len(all),
		Records: Filter(all, cleanSkills(skills)),
		Skills:  DistinctSkills(all),
		Warning: warning,
	}, nil
}

// Skills returns the distinct skill vocabulary of the stored records.
func (s *Service) Skills(ctx context.Context) ([]string, string, error) {
	all, warning, err := s.loadAll(ctx)
	if err != nil {
		return nil, "", err
	}
	return DistinctSkills(all), warning, nil
}

func (s *Service) buildAndAppend(ctx context.Context, text string) UploadResult {
	rec := s.Builder.Build(text)
	result := UploadResult{Record: rec}
	if err := s.Store.Append(ctx, rec); err != nil {
		metrics.IncRecordAppendFailed()
		telemetry.Error("records.append.failed", map[string]any{
			"err":  err.Error(),
			"name": rec.Name,
		})
		result.SaveErr = err
	}
	return result
}

func (s *Service) loadAll(ctx context.Context) ([]ResumeRecord, string, error) {
	all, err := s.Store.LoadAll(ctx)
	if err == nil {
		return all, "", nil
	}
	if errors.Is(err, ErrCorruptLog) {
		metrics.IncRecordLogCorrupt()
		telemetry.Warn("records.log.corrupt", map[string]any{"err": err.Error()})
		return []ResumeRecord{}, CorruptLogWarning, nil
	}
	return nil, "", fmt.Errorf("load records: %w", err)
}

func (s *Service) readLimited(r io.Reader) ([]byte, error) {
	limit := s.MaxBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, limit)
	}
	return data, nil
}

// archive keeps the uploaded document and its extracted text. Archiving is
// best-effort: failures are logged and never block extraction.
func (s *Service) archive(ctx context.Context, fileName string, data []byte, text string) string {
	if s.Archive == nil {
		return ""
	}
	key, _, _, err := s.Archive.Save(ctx, util.Digest(data), fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("records.archive.failed", map[string]any{"err": err.Error(), "file_name": fileName})
		return ""
	}
	if _, err := s.Archive.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Error("records.archive.text_failed", map[string]any{"err": err.Error(), "key": key})
	}
	return key
}

func cleanSkills(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
