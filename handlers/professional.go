package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"beautybook/services/professional"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfessionalHandler exposes account and profile endpoints.
type ProfessionalHandler struct {
	Service professional.ProfessionalService
}

func NewProfessionalHandler(svc professional.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{Service: svc}
}

// RegisterHandler creates a new professional account.
func (h *ProfessionalHandler) RegisterHandler(c *gin.Context) {
	var req professional.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	prof, token, err := h.Service.Register(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}

	prof.Security.Token = token
	c.JSON(http.StatusCreated, prof)
}

// AuthenticateHandler logs a professional in and rotates the session token.
func (h *ProfessionalHandler) AuthenticateHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	prof, token, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}

	prof.Security.Token = token
	c.JSON(http.StatusOK, prof)
}

// GetProfessionalHandler returns one professional's public profile.
func (h *ProfessionalHandler) GetProfessionalHandler(c *gin.Context) {
	prof, err := h.Service.GetProfile(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Professional not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, prof.PublicView())
}

// ListProfessionalsHandler returns all professionals' public profiles.
func (h *ProfessionalHandler) ListProfessionalsHandler(c *gin.Context) {
	profs, err := h.Service.ListProfessionals()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list professionals", err.Error())
		return
	}
	c.JSON(http.StatusOK, profs)
}

// UpdateProfileHandler applies a partial profile update for the
// authenticated professional.
func (h *ProfessionalHandler) UpdateProfileHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	var update professional.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	prof, err := h.Service.UpdateProfile(id, update)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Profile update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UploadPhotoHandler accepts a multipart photo upload and stores it.
func (h *ProfessionalHandler) UploadPhotoHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	file, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing photo file", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store upload", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.UploadPhoto(c.Request.Context(), id, tmpPath)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Photo upload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
