package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	appointmentRepo "beautybook/database/repository/appointment"
	"beautybook/models"
	"beautybook/services/booking"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// monthAvailabilityTTL bounds staleness of the cached month view. New
// bookings show up within this window.
const monthAvailabilityTTL = 60 * time.Second

// BookingHandler exposes the public slot and booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Cache: cache, Logger: logger}
}

// DaySlotsHandler returns the candidate slots for one professional, service
// and date. Date format: 2006-01-02, interpreted in the server location.
func (h *BookingHandler) DaySlotsHandler(c *gin.Context) {
	professionalID := c.Param("id")
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing serviceId query parameter", "")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected format 2006-01-02")
		return
	}

	slots, err := h.Service.DaySlots(professionalID, serviceID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve slots", err.Error())
		return
	}
	if slots == nil {
		slots = []models.CandidateSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// MonthAvailabilityHandler returns, for each day of a month, whether any
// bookable slot remains. Responses are cached briefly in Redis.
func (h *BookingHandler) MonthAvailabilityHandler(c *gin.Context) {
	professionalID := c.Param("id")
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing serviceId query parameter", "")
		return
	}

	month, err := time.ParseInLocation("2006-01", c.Query("month"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid month", "expected format 2006-01")
		return
	}

	cacheKey := fmt.Sprintf("monthAvail:%s:%s:%s", professionalID, serviceID, c.Query("month"))
	ctx := context.Background()
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	days, err := h.Service.MonthAvailability(professionalID, serviceID, month.Year(), month.Month(), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve availability", err.Error())
		return
	}

	body, err := json.Marshal(gin.H{"days": days})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to encode availability", err.Error())
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(ctx, cacheKey, body, monthAvailabilityTTL).Err(); err != nil {
			h.Logger.Warn("failed to cache month availability", zap.Error(err))
		}
	}
	c.Data(http.StatusOK, "application/json", body)
}

// SubmitBookingHandler validates and persists a booking request.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	appt, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "code": verr.Code})
		case errors.Is(err, booking.ErrSubmissionInFlight),
			errors.Is(err, appointmentRepo.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("booking submission failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Booking submission failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}
