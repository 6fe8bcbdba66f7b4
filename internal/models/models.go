package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ImageTypeURL  = "URL"
	ImageTypeFile = "FILE"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s belongs to the closed order status enum.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleUser
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"      json:"id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	UserID    uint      `gorm:"index;not null"  json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `gorm:"not null"        json:"expires_at"`
	Revoked   bool      `gorm:"default:false"   json:"revoked"`
}

// Discount is stored inline on the product row as JSON.
type Discount struct {
	Code        string `json:"code"`
	Percent     int    `json:"percent"`
	Description string `json:"description"`
	MaxCycle    int    `json:"max_cycle"`
}

// ProductSpec carries the open string-keyed attribute map; rendering must
// tolerate missing or extra keys, so values stay untyped here.
type ProductSpec struct {
	Attributes map[string]any `json:"attributes"`
}

type Product struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"not null"                 json:"name"`
	ServiceType  string      `gorm:"index"                    json:"service_type"`
	MonthlyPrice float64     `json:"monthly_price"`
	YearlyPrice  float64     `json:"yearly_price"`
	Hot          bool        `gorm:"default:false"            json:"hot"`
	Active       bool        `gorm:"default:true"             json:"active"`
	Discount     *Discount   `gorm:"serializer:json"          json:"discount,omitempty"`
	Spec         ProductSpec `gorm:"serializer:json"          json:"spec"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Slide is a homepage carousel entry managed from the admin console.
type Slide struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ImageType    string    `gorm:"default:URL"              json:"image_type"`
	DisplayOrder int       `gorm:"index"                    json:"display_order"`
	Active       bool      `gorm:"default:true"             json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Banner is a hosting promotion block; Image resolves per ImageType
// (URL verbatim, FILE relative to the asset host).
type Banner struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ImageType    string    `gorm:"default:URL"              json:"image_type"`
	DisplayOrder int       `gorm:"index"                    json:"display_order"`
	Features     []string  `gorm:"serializer:json"          json:"features"`
	Promotions   []string  `gorm:"serializer:json"          json:"promotions"`
	Price        float64   `json:"price"`
	PriceUnit    string    `json:"price_unit"`
	Active       bool      `gorm:"default:false"            json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string    `gorm:"unique;not null"          json:"order_number"`
	UserID      uint      `gorm:"index"                    json:"user_id"`
	Customer    string    `json:"customer"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Amount      float64   `json:"amount"`
	Status      string    `gorm:"default:pending"          json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
