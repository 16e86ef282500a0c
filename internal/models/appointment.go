package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment lifecycle. A record is created Pending and moves to Paid
// exactly once, when a payment is attached.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment"`
	Date        string             `bson:"date" json:"date"`
	Slot        string             `bson:"slot,omitempty" json:"slot,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Payment     *Payment           `bson:"payment,omitempty" json:"payment,omitempty"`
}

// Payment records the outcome returned by the payment provider. Presence of
// this field on an appointment means the booking is paid.
type Payment struct {
	Status        string  `bson:"status" json:"status"`
	TransactionID string  `bson:"transactionId" json:"transactionId"`
	Amount        float64 `bson:"amount,omitempty" json:"amount,omitempty"`
}
