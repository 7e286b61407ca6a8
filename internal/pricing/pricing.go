package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

// Policy son las constantes comerciales del armador.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	AssemblyFee           decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(1000),
		ShippingFee:           decimal.RequireFromString("49.99"),
		AssemblyFee:           decimal.RequireFromString("99.99"),
	}
}

type Line struct {
	Slot      domain.Slot     `json:"slot"`
	Label     string          `json:"label"`
	Component string          `json:"component"`
	Price     decimal.Decimal `json:"price"`
}

type Breakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Savings     decimal.Decimal `json:"savings"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	AssemblyFee decimal.Decimal `json:"assembly_fee"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	// cuánto falta para el envío gratis; 0 si ya califica o el armado está vacío
	FreeShippingRemaining decimal.Decimal `json:"free_shipping_remaining"`
	Lines                 []Line          `json:"lines"`
}

// Compute calcula el desglose de precios del armado.
//
// El descuento de cada componente es informativo ("you save"): el precio
// unitario ya es neto, así que Savings nunca se resta del subtotal.
// Un armado vacío no paga envío ni armado.
func Compute(b *domain.Build, p Policy) Breakdown {
	out := Breakdown{
		Subtotal:              decimal.Zero,
		Savings:               decimal.Zero,
		ShippingFee:           decimal.Zero,
		AssemblyFee:           decimal.Zero,
		GrandTotal:            decimal.Zero,
		FreeShippingRemaining: decimal.Zero,
		Lines:                 []Line{},
	}
	sel := b.Selected()
	if len(sel) == 0 {
		return out
	}
	for _, s := range sel {
		out.Subtotal = out.Subtotal.Add(s.Component.Price)
		out.Savings = out.Savings.Add(s.Component.Discount)
		out.Lines = append(out.Lines, Line{
			Slot:      s.Slot,
			Label:     s.Slot.Label(),
			Component: s.Component.Name,
			Price:     s.Component.Price,
		})
	}
	if out.Subtotal.GreaterThan(p.FreeShippingThreshold) {
		out.ShippingFee = decimal.Zero
	} else {
		out.ShippingFee = p.ShippingFee
		out.FreeShippingRemaining = p.FreeShippingThreshold.Sub(out.Subtotal)
	}
	out.AssemblyFee = p.AssemblyFee
	out.GrandTotal = out.Subtotal.Add(out.ShippingFee).Add(out.AssemblyFee)
	return out
}
