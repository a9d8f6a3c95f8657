package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolioai/internal/errors"
)

// ResumeHandler handles resume uploads.
type ResumeHandler struct {
	extractor TextExtractor
	enhancer  Enhancer
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(extractor TextExtractor, enhancer Enhancer) *ResumeHandler {
	return &ResumeHandler{
		extractor: extractor,
		enhancer:  enhancer,
	}
}

// ResumeResponse carries the extracted and the rewritten resume.
type ResumeResponse struct {
	Filename     string `json:"filename"`
	OriginalText string `json:"original_text"`
	EnhancedText string `json:"enhanced_text"`
}

// Enhance godoc
// @Summary Extract and rewrite an uploaded resume
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume_file formData file true "Resume (.docx, .pdf or .txt)"
// @Success 200 {object} ResumeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /resume/enhance [post]
func (h *ResumeHandler) Enhance(c echo.Context) error {
	header, err := c.FormFile("resume_file")
	if err != nil {
		return RespondError(c, errors.Validation("multipart field resume_file is required"))
	}

	file, err := header.Open()
	if err != nil {
		return RespondError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return RespondError(c, err)
	}

	text, err := h.extractor.Extract(header.Filename, data)
	if err != nil {
		return RespondError(c, err)
	}

	enhanced, err := h.enhancer.EnhanceResume(c.Request().Context(), text)
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(http.StatusOK, ResumeResponse{
		Filename:     header.Filename,
		OriginalText: text,
		EnhancedText: enhanced,
	})
}
