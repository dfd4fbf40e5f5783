package handlers

import (
	"net/http"

	"beautybook/models"
	"beautybook/services/professional"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler manages the authenticated professional's service catalog.
type ServiceHandler struct {
	Service professional.ProfessionalService
}

func NewServiceHandler(svc professional.ProfessionalService) *ServiceHandler {
	return &ServiceHandler{Service: svc}
}

// ListServicesHandler returns the catalog for a professional. Public.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateServiceHandler adds a catalog entry for the authenticated
// professional.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.AddService(id, svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler replaces a catalog entry.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	svc.ID = c.Param("serviceId")

	if err := h.Service.UpdateService(id, svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a catalog entry.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	if err := h.Service.DeleteService(id, c.Param("serviceId")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to delete service", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
