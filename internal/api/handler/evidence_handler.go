package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/api/metrics"
	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// EvidenceHandler handles evidence upload and reporting endpoints.
type EvidenceHandler struct {
	evidences ports.EvidenceService
}

func NewEvidenceHandler(evidences ports.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidences: evidences}
}

type uploadEvidenceResponse struct {
	OK          bool             `json:"ok"`
	Message     string           `json:"message"`
	NewEvidence *domain.Evidence `json:"newEvidence"`
}

// Upload stores one evidence file for the authenticated student.
//
// @Summary      Upload evidence
// @Tags         evidences
// @Accept       multipart/form-data
// @Produce      json
// @Param        subjectId  query     string  true  "Subject the evidence belongs to"
// @Param        file       formData  file    true  "Evidence file (png, jpg or pdf)"
// @Success      201        {object}  uploadEvidenceResponse
// @Failure      400        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /api/evidences/upload [post]
func (h *EvidenceHandler) Upload(c echo.Context) error {
	subjectID := c.QueryParam("subjectId")
	if subjectID == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "subjectId is required")
	}

	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ErrNoFile
	}
	src, err := fileHeader.Open()
	if err != nil {
		return domain.ErrNoFile
	}
	defer src.Close()

	evidence, err := h.evidences.Upload(c.Request().Context(), ports.UploadEvidenceInput{
		UserID:    userID,
		SubjectID: subjectID,
		FileName:  fileHeader.Filename,
		MIMEType:  fileHeader.Header.Get("Content-Type"),
		Size:      fileHeader.Size,
		Content:   src,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnrolled):
			metrics.EvidenceRejectedTotal.WithLabelValues("not_enrolled").Inc()
		case errors.Is(err, domain.ErrInvalidFormat):
			metrics.EvidenceRejectedTotal.WithLabelValues("invalid_format").Inc()
		case errors.Is(err, domain.ErrEvidenceLimit):
			metrics.EvidenceRejectedTotal.WithLabelValues("evidence_limit").Inc()
		}
		return err
	}

	metrics.EvidenceUploadsTotal.WithLabelValues(string(evidence.Format)).Inc()
	return c.JSON(http.StatusCreated, uploadEvidenceResponse{OK: true, Message: "Evidence created", NewEvidence: evidence})
}

// All lists every evidence. Admin only.
func (h *EvidenceHandler) All(c echo.Context) error {
	evidences, err := h.evidences.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "evidences": evidences})
}

// CountBySubject returns how many evidences exist for a subject. Admin only.
func (h *EvidenceHandler) CountBySubject(c echo.Context) error {
	n, err := h.evidences.CountBySubject(c.Request().Context(), c.Param("subjectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "numberOfEvidences": n})
}

// PercentageByFileType returns the format share breakdown. Admin only.
func (h *EvidenceHandler) PercentageByFileType(c echo.Context) error {
	stats, err := h.evidences.PercentageByFileType(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "percentageByFileType": stats})
}
