package api

import (
	"askadam/fitness-assistant/internal/storage"
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler issues presigned URLs so form-check photos and chat images
// upload straight to object storage instead of through the API.
type MediaHandler struct {
	fileStorage storage.FileStorage
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(fileStorage storage.FileStorage) *MediaHandler {
	return &MediaHandler{fileStorage: fileStorage}
}

type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// CreateUploadURL returns a presigned PUT URL under the caller's prefix.
func (h *MediaHandler) CreateUploadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	objectKey := fmt.Sprintf("uploads/%s/%s-%s", userID, uuid.NewString(), path.Base(req.FileName))
	url, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, 0)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not generate upload URL")
		return
	}

	c.JSON(http.StatusOK, UploadURLResponse{UploadURL: url, ObjectKey: objectKey})
}

// GetDownloadURL returns a presigned GET URL for a previously uploaded object.
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "Missing object key")
		return
	}

	url, err := h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), objectKey, 0)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not generate download URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
