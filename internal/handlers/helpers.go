package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
	"github.com/jobscout-app/jobscout-api/internal/content"
)

// HealthCheck is the liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError translates an intake-flow error into the uniform error body.
// The internal error kind is logged; the wire message stays generic for 500s.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperr.HTTPStatus(err)
	log.Error().Str("kind", string(apperr.KindOf(err))).Err(err).Msg("request failed")

	body := gin.H{"success": false, "error": publicMessage(err)}
	if status < http.StatusInternalServerError {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

func publicMessage(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidRequest:
		return "invalid request"
	case apperr.KindRemoteContent:
		return "could not fetch the referenced content"
	case apperr.KindProvider:
		return "AI extraction failed"
	case apperr.KindSchema:
		return "extracted data failed validation"
	case apperr.KindPersistence:
		return "failed to save the extracted job"
	default:
		return "internal error"
	}
}

// userIDFrom reads the authenticated user id set by the upstream auth proxy.
// Auth itself is outside this service.
func userIDFrom(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// attachedParts normalizes the optional "image" and "document" uploads of a
// multipart intake request.
func attachedParts(c *gin.Context) ([]content.Part, error) {
	var parts []content.Part

	if fh, err := c.FormFile("image"); err == nil {
		part, err := content.FromUpload(fh, content.FallbackImageMIME)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if fh, err := c.FormFile("document"); err == nil {
		part, err := content.FromUpload(fh, content.FallbackDocumentMIME)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}
