package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/logger"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// The registries and collaborators the handlers depend on. Declared here so
// tests can swap in fakes; the Mongo stores and the Stripe service satisfy
// them in production.

type UserRegistry interface {
	Insert(ctx context.Context, user *models.User) error
	Upsert(ctx context.Context, user *models.User) error
}

type DoctorRegistry interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (string, error)
}

type AppointmentRegistry interface {
	Insert(ctx context.Context, appt *models.Appointment) (string, error)
	FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	AttachPayment(ctx context.Context, id string, payment *models.Payment) error
}

type AdminGate interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, requesterEmail, targetEmail string) error
}

type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

type Handler struct {
	Users        UserRegistry
	Doctors      DoctorRegistry
	Appointments AppointmentRegistry
	Authz        AdminGate
	Payments     PaymentIntents
	Log          *logger.Logger
}

func NewHandler(users UserRegistry, doctors DoctorRegistry, appts AppointmentRegistry, authz AdminGate, payments PaymentIntents, log *logger.Logger) *Handler {
	return &Handler{
		Users:        users,
		Doctors:      doctors,
		Appointments: appts,
		Authz:        authz,
		Payments:     payments,
		Log:          log,
	}
}

// Greet answers the root path health probe.
func (h *Handler) Greet(c *gin.Context) {
	c.String(http.StatusOK, "Hello doctors portal")
}
