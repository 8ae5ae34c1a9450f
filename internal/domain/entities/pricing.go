package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Costs are the four internal cost lines plus the margin applied on top of them.
type Costs struct {
	Materials     float64 `json:"v_mat"`
	Expenses      float64 `json:"v_despesas"`
	Hardware      float64 `json:"v_ferr"`
	Other         float64 `json:"v_outros"`
	MarginPercent float64 `json:"v_margem"`
}

func (c Costs) Subtotal() float64 {
	return c.Materials + c.Expenses + c.Hardware + c.Other
}

// Total is subtotal * (1 + margin/100). No bounds are enforced on the margin.
func (c Costs) Total() float64 {
	return ComputeTotal(c.Materials, c.Expenses, c.Hardware, c.Other, c.MarginPercent)
}

func ComputeTotal(materials, expenses, hardware, other, marginPercent float64) float64 {
	subtotal := materials + expenses + hardware + other
	return subtotal + subtotal*(marginPercent/100)
}

// PriceBreakdown is what the pricing step of the wizard shows.
type PriceBreakdown struct {
	Subtotal          float64 `json:"subtotal"`
	Profit            float64 `json:"lucro"`
	Total             float64 `json:"total"`
	SubtotalFormatted string  `json:"subtotal_formatado"`
	ProfitFormatted   string  `json:"lucro_formatado"`
	TotalFormatted    string  `json:"total_formatado"`
}

func (c Costs) Breakdown() PriceBreakdown {
	subtotal := c.Subtotal()
	profit := subtotal * (c.MarginPercent / 100)
	total := c.Total()
	return PriceBreakdown{
		Subtotal:          subtotal,
		Profit:            profit,
		Total:             total,
		SubtotalFormatted: FormatBRL(subtotal),
		ProfitFormatted:   FormatBRL(profit),
		TotalFormatted:    FormatBRL(total),
	}
}

// FormatBRL renders an amount as "R$ 1.950,00". Rounding to cents happens here only.
func FormatBRL(v float64) string {
	fixed := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return "R$ " + sign + b.String() + "," + frac
}
