package handlers

import (
	professionalRepoPkg "beautybook/database/repository/professional"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfessionalRepo professionalRepoPkg.ProfessionalRepository

	// Account endpoints
	RegisterHandler          gin.HandlerFunc
	AuthenticateHandler      gin.HandlerFunc
	GetProfessionalHandler   gin.HandlerFunc
	ListProfessionalsHandler gin.HandlerFunc
	UpdateProfileHandler     gin.HandlerFunc
	UploadPhotoHandler       gin.HandlerFunc

	// Service catalog endpoints
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Availability editor endpoints
	GetAvailabilityHandler gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	EnableDayHandler       gin.HandlerFunc
	DisableDayHandler      gin.HandlerFunc
	AddRangeHandler        gin.HandlerFunc
	RemoveRangeHandler     gin.HandlerFunc
	UpdateRangeHandler     gin.HandlerFunc

	// Public booking endpoints
	DaySlotsHandler          gin.HandlerFunc
	MonthAvailabilityHandler gin.HandlerFunc
	SubmitBookingHandler     gin.HandlerFunc

	// Dashboard endpoints
	AppointmentsHandler gin.HandlerFunc
	ClientsHandler      gin.HandlerFunc
	StatisticsHandler   gin.HandlerFunc
}
