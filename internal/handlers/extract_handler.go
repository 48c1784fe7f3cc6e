package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
	"github.com/jobscout-app/jobscout-api/internal/dtos"
	"github.com/jobscout-app/jobscout-api/internal/services"
)

// ExtractHandler exposes the AI intake endpoints.
type ExtractHandler struct {
	Intake *services.IntakeService
	Log    zerolog.Logger
}

func NewExtractHandler(intake *services.IntakeService, log zerolog.Logger) *ExtractHandler {
	return &ExtractHandler{Intake: intake, Log: log}
}

// Analyze is POST /extract/analyze: multipart image/document plus free text,
// returns the model's raw analysis. Nothing is persisted.
func (h *ExtractHandler) Analyze(c *gin.Context) {
	message := c.PostForm("message")
	parts, err := attachedParts(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if message == "" && len(parts) == 0 {
		respondError(c, h.Log, apperr.New(apperr.KindInvalidRequest,
			"provide a message, an image, or a document", nil))
		return
	}

	analysis, err := h.Intake.AnalyzeRaw(c.Request.Context(), message, parts)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

// ExtractPrivate is POST /extract/private: runs the full pipeline and persists
// a private job when the minimum fields were extracted. A record that fails
// the gate still comes back as a 200 with a null database_result.
func (h *ExtractHandler) ExtractPrivate(c *gin.Context) {
	message := c.PostForm("message")
	parts, err := attachedParts(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if message == "" && len(parts) == 0 {
		respondError(c, h.Log, apperr.New(apperr.KindInvalidRequest,
			"provide a message, an image, or a document", nil))
		return
	}

	res, err := h.Intake.IntakePrivate(c.Request.Context(), userIDFrom(c), message, parts)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"analysis":        res.Fields,
		"database_result": res.Row,
	})
}

// ExtractGovernment is POST /extract/government, the vacancy-variant twin of
// ExtractPrivate.
func (h *ExtractHandler) ExtractGovernment(c *gin.Context) {
	message := c.PostForm("message")
	parts, err := attachedParts(c)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	if message == "" && len(parts) == 0 {
		respondError(c, h.Log, apperr.New(apperr.KindInvalidRequest,
			"provide a message, an image, or a document", nil))
		return
	}

	res, err := h.Intake.IntakeGovernment(c.Request.Context(), userIDFrom(c), message, parts)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"analysis":        res.Fields,
		"database_result": res.Row,
	})
}

// ExtractFromURL is POST /extract/url: JSON body referencing a remote image.
// The fetch happens before any model call, so an unreachable URL never costs
// a provider request.
func (h *ExtractHandler) ExtractFromURL(c *gin.Context) {
	var req dtos.URLExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body", "details": err.Error()})
		return
	}
	if req.Message == "" && req.ImageURL == "" {
		respondError(c, h.Log, apperr.New(apperr.KindInvalidRequest,
			"provide a message or an image_url", nil))
		return
	}

	data, err := h.Intake.AnalyzeURL(c.Request.Context(), req.Message, req.ImageURL)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
