package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	ProposalTitle       = "PROPOSTA DE ORÇAMENTO PARA MÓVEIS PLANEJADOS"
	DefaultExclusions   = "Não contempla itens não mencionados."
	DefaultVendorName   = "Fifty+"
	maxFilenameClientSz = 30
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// IssueDate is the quote's creation date, or now for quotes never saved.
func IssueDate(q Quote, now time.Time) time.Time {
	if q.CreatedAt.IsZero() {
		return now
	}
	return q.CreatedAt
}

// ProposalFilename is Proposta_<client>_<dd-mm-yyyy>.pdf with the client name
// reduced to ASCII letters, digits and underscores.
func ProposalFilename(q Quote, issued time.Time) string {
	name := strings.TrimSpace(q.ClientName)
	if name == "" {
		name = "Cliente"
	}
	name = nonAlphanumeric.ReplaceAllString(name, "_")
	if len(name) > maxFilenameClientSz {
		name = name[:maxFilenameClientSz]
	}
	return fmt.Sprintf("Proposta_%s_%s.pdf", name, issued.Format("02-01-2006"))
}

// PieceLine is the bullet shown for a piece in the proposal document.
func PieceLine(p Piece, unit MeasurementUnit) string {
	name := p.Name
	if name == "" {
		name = "Peça"
	}
	line := "• " + name + ": "
	if p.HasDimensions() {
		line += fmt.Sprintf("%s%s (L) x %s%s (A) x %s%s (P)",
			formatDimension(p.Width), unit,
			formatDimension(p.Height), unit,
			formatDimension(p.Depth), unit)
	}
	return line
}

func formatDimension(v FlexFloat) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// PaymentConditions lists the payment lines of a proposal in display order.
func PaymentConditions(q Quote) []string {
	var lines []string
	pg := q.Payment
	if pg.Condition != "" {
		lines = append(lines, "Condição: "+pg.Condition)
	}
	if len(pg.Methods) > 0 {
		lines = append(lines, "Formas: "+strings.Join(pg.Methods, ", ")+".")
	}
	if pg.Installments > 1 {
		interest := "sem juros"
		if pg.Interest {
			interest = "com juros"
		}
		lines = append(lines, fmt.Sprintf("Parcelamento: %dx %s.", pg.Installments, interest))
	}
	if pg.PixKey != "" {
		lines = append(lines, "PIX: "+pg.PixKey)
	}
	if q.Technical.DeadlineNotes != "" {
		lines = append(lines, "Prazo: "+q.Technical.DeadlineNotes)
	}
	return lines
}

// TechnicalSpecs lists the filled technical fields of a proposal.
func TechnicalSpecs(t TechnicalDetails) []string {
	var lines []string
	for _, f := range []struct{ label, value string }{
		{"Material", t.Sheet},
		{"Acabamento", t.Finish},
		{"Ferragens", t.Hardware},
		{"Observações", t.Notes},
	} {
		if f.value != "" {
			lines = append(lines, f.label+": "+f.value)
		}
	}
	return lines
}
