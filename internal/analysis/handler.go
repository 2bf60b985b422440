package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BhargaviBathini/food-allergy/internal/auth"
	"github.com/BhargaviBathini/food-allergy/internal/llm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AnalyzeFood accepts a multipart form with a user_id field and an image
// file, runs the analysis pipeline, and returns the verdict.
func (h *Handler) AnalyzeFood(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	result, err := h.service.AnalyzeFood(c.Request.Context(), userID, imageData)
	if err != nil {
		// Domain errors keep their status codes; only unexpected
		// failures fall through to 500.
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, llm.ErrProvider):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error analyzing food: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
