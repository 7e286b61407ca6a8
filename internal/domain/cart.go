package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem es la unidad comprable que sale de un armado confirmado.
// No guarda referencia al Build de origen.
type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Parts     []string        `json:"parts"`
	CreatedAt time.Time       `json:"created_at"`
}

// CartItem es la fila persistida del carrito.
type CartItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Owner      string          `gorm:"size:64;uniqueIndex:idx_cart_items_owner_line,priority:1" json:"-"`
	LineItemID string          `gorm:"size:64;uniqueIndex:idx_cart_items_owner_line,priority:2" json:"line_item_id"`
	Name       string          `gorm:"size:180" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Image      string          `gorm:"size:255" json:"image"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
	Parts      []string        `gorm:"type:jsonb;serializer:json" json:"parts"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Confirmation es la respuesta del carrito al recibir un line item.
type Confirmation struct {
	CartItemID  uuid.UUID `json:"cart_item_id"`
	LineItemID  string    `json:"line_item_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}
