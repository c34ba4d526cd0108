package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meeraai/site-backend/internal/mailer"
	"github.com/meeraai/site-backend/pkg/logger"
)

// Handler exposes the job-application intake route.
type Handler struct {
	pipeline *Pipeline
}

func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/api/careers/apply", h.apply)
}

func (h *Handler) apply(c *gin.Context) {
	var app JobApplication
	if err := c.ShouldBind(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	if err := h.pipeline.Process(app, resume); err != nil {
		logger.Errorf("error processing application for %q: %v", app.Position, err)
		switch {
		case IsValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case mailer.IsConnectivityErr(err):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to connect to email server. Please try again later."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process application"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
}
