package handlers

import (
	"net/http"
	"time"

	"beautybook/services/professional"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the authenticated professional's agenda, client
// roster and statistics.
type DashboardHandler struct {
	Service professional.ProfessionalService
}

func NewDashboardHandler(svc professional.ProfessionalService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// AppointmentsHandler lists the professional's appointments, oldest first.
func (h *DashboardHandler) AppointmentsHandler(c *gin.Context) {
	appointments, err := h.Service.Appointments(c.GetString("professionalID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ClientsHandler returns the client roster built from appointment history.
func (h *DashboardHandler) ClientsHandler(c *gin.Context) {
	clients, err := h.Service.Clients(c.GetString("professionalID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// StatisticsHandler summarizes the professional's book of business.
func (h *DashboardHandler) StatisticsHandler(c *gin.Context) {
	stats, err := h.Service.Statistics(c.GetString("professionalID"), time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
