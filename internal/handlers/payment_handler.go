package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

type paymentIntentRequest struct {
	// When appointmentId is given the charge amount comes from the stored
	// booking, not from the client. price alone is still accepted for
	// older clients.
	AppointmentID string  `json:"appointmentId"`
	Price         float64 `json:"price"`
}

// CreatePaymentIntent asks the provider for a client-usable payment handle
// covering the booking fee.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	amount := req.Price
	if req.AppointmentID != "" {
		appt, err := h.Appointments.FindByID(c.Request.Context(), req.AppointmentID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			default:
				h.Log.Error("failed to find appointment", "err", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
			}
			return
		}
		amount = appt.Price
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment amount"})
			return
		}
		h.Log.Error("payment provider call failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
