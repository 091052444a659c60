package models

import "strings"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleFor maps a registration username to its role. The literal username
// "admin" in any case combination is the only admin account. The role is
// assigned once at registration and never recomputed afterwards.
func RoleFor(username string) string {
	if strings.EqualFold(username, "admin") {
		return RoleAdmin
	}
	return RoleUser
}

// User is a registered account. The password is stored verbatim; hashing is
// out of scope for this service.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Order is immutable once stored. User is a plain username string, not a
// foreign key into the users collection, and Total is trusted as submitted.
type Order struct {
	ID               int64       `json:"id"`
	Items            []OrderItem `json:"items"`
	Total            float64     `json:"total"`
	User             string      `json:"user"`
	Date             string      `json:"date"`
	ServerReceivedAt string      `json:"serverReceivedAt"`
}

// OrderItem is a MenuItem-shaped cart entry. A resolved customization is
// carried both inside the display name ("Ribeye (Medium Rare)"), which older
// clients render directly, and as the structured Customization field so
// consumers do not have to parse names.
type OrderItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Category      string  `json:"category,omitempty"`
	Customization string  `json:"customization,omitempty"`
}
