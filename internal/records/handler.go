package records

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-extractor/internal/shared/server/middleware"
	"resume-extractor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches record routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/records", h.upload)
	rg.POST("/records/text", h.extractText)
	rg.GET("/records", h.list)
	rg.GET("/skills", h.skills)
}

func (h *Handler) upload(c *gin.Context) {
	if h.Svc.MaxBytes > 0 {
		// Leave room for multipart framing around the file part.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxBytes+1<<20)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUnreadable):
			respond.Error(c, http.StatusUnprocessableEntity, "unreadable_document", "unable to extract text from document", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}

	c.Set(middleware.LogKeySaveFailed, !res.Saved())
	respond.JSON(c, http.StatusCreated, toUploadResponse(res))
}

func (h *Handler) extractText(c *gin.Context) {
	var req extractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.ExtractText(c.Request.Context(), req.Text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		return
	}

	c.Set(middleware.LogKeySaveFailed, !res.Saved())
	respond.JSON(c, http.StatusCreated, toUploadResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	res, err := h.Svc.List(c.Request.Context(), c.QueryArray("skill"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load records", nil)
		return
	}

	out := make([]RecordResponse, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, toResponse(rec))
	}
	c.Set(middleware.LogKeyRecordCount, len(out))
	respond.JSON(c, http.StatusOK, ListResponse{
		Total:   res.Total,
		Records: out,
		Skills:  res.Skills,
		Warning: res.Warning,
	})
}

func (h *Handler) skills(c *gin.Context) {
	skills, warning, err := h.Svc.Skills(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load skills", nil)
		return
	}
	body := gin.H{"skills": skills}
	if warning != "" {
		body["warning"] = warning
	}
	respond.JSON(c, http.StatusOK, body)
}
