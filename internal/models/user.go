package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only privileged role; any other value (or none) means an
// ordinary user.
const RoleAdmin = "admin"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the record carries the admin role. An absent role
// is an ordinary user, not an error.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
