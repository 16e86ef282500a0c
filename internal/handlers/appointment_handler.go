package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

type createAppointmentRequest struct {
	PatientName string  `json:"patientName"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	Treatment   string  `json:"treatment" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Slot        string  `json:"slot"`
	Price       float64 `json:"price"`
}

// CreateAppointment books a slot. The record starts Pending; when slot
// uniqueness is enforced a colliding booking fails with 409.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appt := models.Appointment{
		PatientName: req.PatientName,
		Email:       req.Email,
		Phone:       req.Phone,
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Price:       req.Price,
	}
	id, err := h.Appointments.Insert(c.Request.Context(), &appt)
	if err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "This slot is already booked"})
			return
		}
		h.Log.Error("failed to insert appointment", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

// GetAppointments returns the patient's bookings on one calendar date.
// The identity middleware may have annotated the request, but the listing
// itself never requires it.
func (h *Handler) GetAppointments(c *gin.Context) {
	email := c.Query("email")
	date := c.Query("date")

	appts, err := h.Appointments.FindByEmailAndDate(c.Request.Context(), email, date)
	if err != nil {
		h.Log.Error("failed to find appointments", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointment looks up one booking by id. A miss answers null, matching
// what booking clients already expect; only a malformed id is an error.
func (h *Handler) GetAppointment(c *gin.Context) {
	appt, err := h.Appointments.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusOK, nil)
		default:
			h.Log.Error("failed to find appointment", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AttachPayment finalizes a booking with the provider's payment outcome.
// It succeeds at most once per appointment.
func (h *Handler) AttachPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.Appointments.AttachPayment(c.Request.Context(), c.Param("id"), &payment)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, store.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "Appointment is already paid"})
		default:
			h.Log.Error("failed to attach payment", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": 1})
}
