package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/01moynul/locify-golang/internal/middleware"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadSize caps request and response images.
const (
	maxUploadSize  = 5 << 20
	uploadOverhead = 1 << 10
)

// UploadImage handles POST /v1/upload
// It saves an image to the upload folder and returns its public URL, which
// clients then send as imageUrl on a request or response.
func (h *Handlers) UploadImage(c *gin.Context) {
	if middleware.UserID(c) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	// 1. Get the file from the request, reading no more than the cap
	// plus room for the multipart framing
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+uploadOverhead)
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image must be 5MB or smaller"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image must be 5MB or smaller"})
		return
	}

	// 2. Only accept images, judged by content rather than the file name
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	mtype, err := mimetype.DetectReader(src)
	src.Close()
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only image uploads are allowed"})
		return
	}

	// 3. Create the upload directory if it doesn't exist
	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		h.Log.Error("create upload dir", zap.Error(err), zap.String("dir", h.UploadDir))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 4. Generate a safe unique filename (uuid + detected extension)
	newFilename := uuid.New().String() + mtype.Extension()
	savePath := filepath.Join(h.UploadDir, newFilename)

	// 5. Save the file
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		h.Log.Error("save upload", zap.Error(err), zap.String("path", savePath))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 6. Return the public URL
	c.JSON(http.StatusOK, gin.H{
		"url": fmt.Sprintf("%s/uploads/%s", h.BaseURL, newFilename),
	})
}
