package handler

import (
	"log/slog"
	"net/http"

	"newscheck/internal/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	store   storage.FileStore
	maxSize int64
	log     *slog.Logger
}

func NewUploadHandler(store storage.FileStore, maxSize int64, log *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, maxSize: maxSize, log: log}
}

// Upload accepts a multipart file and returns its public URL. Anonymous
// callers are allowed on purpose: avatars are uploaded before registration.
// POST /upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > h.maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		serviceError(c, h.log, err)
		return
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
