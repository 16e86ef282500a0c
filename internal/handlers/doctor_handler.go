package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// GetDoctors lists every doctor. Image bytes come back base64-encoded in
// the JSON body.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to list doctors", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor accepts the admin listing form: multipart name, email and an
// image file stored as raw bytes on the record.
func (h *Handler) CreateDoctor(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}

	doctor := models.Doctor{
		Name:  name,
		Email: email,
		Image: image,
	}
	id, err := h.Doctors.Insert(c.Request.Context(), &doctor)
	if err != nil {
		h.Log.Error("failed to insert doctor", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}
