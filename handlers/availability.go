package handlers

import (
	"net/http"
	"strconv"
	"time"

	"beautybook/models"
	"beautybook/services/professional"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the weekly availability editor for the
// authenticated professional.
type AvailabilityHandler struct {
	Service professional.ProfessionalService
}

func NewAvailabilityHandler(svc professional.ProfessionalService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func parseWeekday(raw string) (time.Weekday, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 6 {
		return 0, false
	}
	return time.Weekday(n), true
}

func (h *AvailabilityHandler) load(c *gin.Context) (string, models.WeeklyAvailability, bool) {
	id := c.GetString("professionalID")
	prof, err := h.Service.GetProfile(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Professional not found", err.Error())
		return "", nil, false
	}
	av := prof.Availability
	if av == nil {
		av = models.WeeklyAvailability{}
	}
	return id, av, true
}

func (h *AvailabilityHandler) save(c *gin.Context, id string, av models.WeeklyAvailability) {
	if err := h.Service.SaveAvailability(id, av); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to save availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// GetAvailabilityHandler returns the current weekly template.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	_, av, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// SetAvailabilityHandler replaces the whole weekly template.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	id := c.GetString("professionalID")

	var req struct {
		Availability models.WeeklyAvailability `json:"availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	h.save(c, id, req.Availability)
}

// EnableDayHandler opens a weekday with the default working block.
func (h *AvailabilityHandler) EnableDayHandler(c *gin.Context) {
	day, ok := parseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "expected 0 (Sunday) to 6 (Saturday)")
		return
	}
	id, av, ok := h.load(c)
	if !ok {
		return
	}
	professional.EnableDay(av, day)
	h.save(c, id, av)
}

// DisableDayHandler closes a weekday.
func (h *AvailabilityHandler) DisableDayHandler(c *gin.Context) {
	day, ok := parseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "expected 0 (Sunday) to 6 (Saturday)")
		return
	}
	id, av, ok := h.load(c)
	if !ok {
		return
	}
	professional.DisableDay(av, day)
	h.save(c, id, av)
}

// AddRangeHandler appends a one-hour block after the day's last range.
func (h *AvailabilityHandler) AddRangeHandler(c *gin.Context) {
	day, ok := parseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "expected 0 (Sunday) to 6 (Saturday)")
		return
	}
	id, av, ok := h.load(c)
	if !ok {
		return
	}
	if err := professional.AddRange(av, day); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot add range", err.Error())
		return
	}
	h.save(c, id, av)
}

// RemoveRangeHandler deletes one range; the last range closes the day.
func (h *AvailabilityHandler) RemoveRangeHandler(c *gin.Context) {
	day, ok := parseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "expected 0 (Sunday) to 6 (Saturday)")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid range index", err.Error())
		return
	}
	id, av, ok := h.load(c)
	if !ok {
		return
	}
	if err := professional.RemoveRange(av, day, index); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot remove range", err.Error())
		return
	}
	h.save(c, id, av)
}

// UpdateRangeHandler moves one boundary of a range. Body: {"boundary":
// "start"|"end", "value": 9.5}.
func (h *AvailabilityHandler) UpdateRangeHandler(c *gin.Context) {
	day, ok := parseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", "expected 0 (Sunday) to 6 (Saturday)")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid range index", err.Error())
		return
	}

	var req struct {
		Boundary string  `json:"boundary"`
		Value    float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	id, av, ok := h.load(c)
	if !ok {
		return
	}

	switch req.Boundary {
	case "start":
		err = professional.SetRangeStart(av, day, index, req.Value)
	case "end":
		err = professional.SetRangeEnd(av, day, index, req.Value)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid boundary", "expected \"start\" or \"end\"")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cannot update range", err.Error())
		return
	}
	h.save(c, id, av)
}
