package handler

import (
	"errors"
	"net/http"
	"path"
	"path/filepath"

	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadsHandler struct {
	images  *repository.ImagesRepo
	dir     string
	baseURL string
}

func NewUploadsHandler(images *repository.ImagesRepo, dir, baseURL string) *UploadsHandler {
	return &UploadsHandler{images: images, dir: dir, baseURL: baseURL}
}

// UploadImage stores the multipart "image" field on disk under a random
// name and registers its URL.
func (h *UploadsHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Missing image file")
		return
	}

	// Random name to keep the on-disk layout flat and collision free
	name := uuid.New().String() + filepath.Ext(file.Filename)
	target := filepath.Join(h.dir, name)

	if err := c.SaveUploadedFile(file, target); err != nil {
		utils.InternalError(c, "Failed to store image")
		return
	}

	image := &model.Image{ImageURL: path.Join(h.baseURL, name)}
	if err := h.images.CreateImage(c.Request.Context(), image); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "Image already registered")
			return
		}
		utils.InternalError(c, "Failed to register image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":  image.ID,
		"url": image.ImageURL,
	})
}
