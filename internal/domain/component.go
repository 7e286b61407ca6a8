package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Component es un registro inmutable del catálogo seleccionable en el armador.
type Component struct {
	ID        string            `gorm:"primaryKey;size:64" json:"id"`
	Name      string            `gorm:"size:180;not null" json:"name"`
	Brand     string            `gorm:"size:100" json:"brand"`
	Category  Slot              `gorm:"type:varchar(30);index" json:"category"`
	Image     string            `gorm:"size:255" json:"image"`
	Price     decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"price"`
	Discount  decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Rating    float64           `gorm:"type:decimal(3,2);default:0" json:"rating"`
	Reviews   int               `gorm:"default:0" json:"reviews"`
	Stock     int               `gorm:"default:0" json:"stock"`
	Specs     map[string]string `gorm:"type:jsonb;serializer:json" json:"specs"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

// Spec devuelve el primer atributo no vacío entre las claves dadas.
// Las claves se comparan sin distinguir mayúsculas.
func (c Component) Spec(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := c.Specs[k]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		for sk, v := range c.Specs {
			if strings.EqualFold(sk, k) && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v), true
			}
		}
	}
	return "", false
}

func (c Component) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: id vacío", ErrInvalidComponent)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("%w: %s: %w", ErrInvalidComponent, c.ID, ErrUnknownSlot)
	}
	if c.Price.IsNegative() {
		return fmt.Errorf("%w: %s: negative price", ErrInvalidComponent, c.ID)
	}
	if c.Discount.IsNegative() || c.Discount.GreaterThan(c.Price) {
		return fmt.Errorf("%w: %s: discount must be between 0 and price", ErrInvalidComponent, c.ID)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("%w: %s: rating out of range", ErrInvalidComponent, c.ID)
	}
	if c.Reviews < 0 || c.Stock < 0 {
		return fmt.Errorf("%w: %s: negative counters", ErrInvalidComponent, c.ID)
	}
	return nil
}

type ComponentFilter struct {
	Category Slot
	Query    string
	Sort     string // price | name | popularity
	Desc     bool
	InStock  bool
}
