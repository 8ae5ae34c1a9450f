// Package record holds the at-rest layout of a quote and the only code that
// knows about its historical shapes. Repositories store and load QuoteRow;
// everything above them sees entities.Quote.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/domain/entities"
)

var ErrMalformedMeasurements = errors.New("malformed medidas column")

// QuoteRow mirrors the propostas table. The flat technical, financial and
// payment columns are only read; new rows keep those values inside Medidas.
type QuoteRow struct {
	ID          string
	UserID      string
	Numero      int
	ClienteNome string
	ClienteWpp  string
	ClienteEnd  string
	ClienteRef  string
	TipoMovel   string
	Validade    string
	Status      string
	VTotal      float64
	Medidas     json.RawMessage
	Ambientes   json.RawMessage

	Chapa      string
	Acabamento string
	Ferragens  string
	Detalhes   string
	Inicio     string
	Entrega    string
	PrazoObs   string
	Garantia   string
	Incluso    string
	Excluso    string
	ObsFinal   string

	VMat      float64
	VDespesas float64
	VFerr     float64
	VOutros   float64
	VMargem   float64

	PgtoFormas   []string
	PgtoParcelas int
	PgtoJuros    bool
	PgtoPix      string
	PgtoPixTipo  string
	PgtoCondicao string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type measurements struct {
	Ambientes        []entities.Environment    `json:"ambientes"`
	Cliente          clientGroup               `json:"cliente"`
	Financeiro       financialGroup            `json:"financeiro"`
	DetalhesTecnicos entities.TechnicalDetails `json:"detalhes_tecnicos"`
	Pgto             paymentGroup              `json:"pgto"`
}

type clientGroup struct {
	Endereco   string `json:"endereco"`
	Referencia string `json:"referencia"`
}

type financialGroup struct {
	VMat      entities.FlexFloat `json:"v_mat"`
	VDespesas entities.FlexFloat `json:"v_despesas"`
	VFerr     entities.FlexFloat `json:"v_ferr"`
	VOutros   entities.FlexFloat `json:"v_outros"`
	VMargem   entities.FlexFloat `json:"v_margem"`
}

type paymentGroup struct {
	Formas   []string          `json:"formas"`
	Parcelas entities.FlexInt  `json:"parcelas"`
	Juros    entities.FlexBool `json:"juros"`
	Pix      string            `json:"pix"`
	PixTipo  string            `json:"pix_tipo"`
	Condicao string            `json:"condicao"`
}

// Serialize lays a quote out in the nested medidas shape.
func Serialize(q entities.Quote) (QuoteRow, error) {
	envs := q.Environments
	if envs == nil {
		envs = []entities.Environment{}
	}
	m := measurements{
		Ambientes: envs,
		Cliente:   clientGroup{Endereco: q.ClientAddress, Referencia: q.ClientReference},
		Financeiro: financialGroup{
			VMat:      entities.FlexFloat(q.Costs.Materials),
			VDespesas: entities.FlexFloat(q.Costs.Expenses),
			VFerr:     entities.FlexFloat(q.Costs.Hardware),
			VOutros:   entities.FlexFloat(q.Costs.Other),
			VMargem:   entities.FlexFloat(q.Costs.MarginPercent),
		},
		DetalhesTecnicos: q.Technical,
		Pgto: paymentGroup{
			Formas:   q.Payment.Methods,
			Parcelas: entities.FlexInt(q.Payment.Installments),
			Juros:    entities.FlexBool(q.Payment.Interest),
			Pix:      q.Payment.PixKey,
			PixTipo:  q.Payment.PixKeyType,
			Condicao: q.Payment.Condition,
		},
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return QuoteRow{}, fmt.Errorf("marshal medidas: %w", err)
	}

	return QuoteRow{
		ID:          q.ID,
		UserID:      q.UserID,
		Numero:      q.Number,
		ClienteNome: q.ClientName,
		ClienteWpp:  q.ClientPhone,
		TipoMovel:   entities.DeriveFurnitureType(q.Environments),
		Validade:    q.Validity,
		Status:      string(q.Status),
		VTotal:      q.Total,
		Medidas:     raw,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}, nil
}

type shape int

const (
	shapeFlat shape = iota
	shapeNested
	shapeEnvironmentList
)

// Deserialize resolves whichever of the three stored layouts the row uses.
// When both nested and flat values exist, nested wins.
func Deserialize(row QuoteRow) (entities.Quote, error) {
	q := flatQuote(row)

	raw := unwrapJSONString(row.Medidas)
	switch classify(raw) {
	case shapeNested:
		var m measurements
		if err := decodeLenient(raw, &m); err != nil {
			return entities.Quote{}, fmt.Errorf("%w: %v", ErrMalformedMeasurements, err)
		}
		applyNested(&q, m)
	case shapeEnvironmentList:
		var envs []entities.Environment
		if err := decodeLenient(raw, &envs); err != nil {
			return entities.Quote{}, fmt.Errorf("%w: %v", ErrMalformedMeasurements, err)
		}
		if len(envs) > 0 && len(q.Environments) == 0 {
			q.Environments = envs
		}
	}

	if q.Environments == nil {
		q.Environments = []entities.Environment{}
	}
	if q.Costs.Subtotal() != 0 {
		q.Total = q.Costs.Total()
	}
	return q, nil
}

func flatQuote(row QuoteRow) entities.Quote {
	q := entities.Quote{
		ID:              row.ID,
		UserID:          row.UserID,
		Number:          row.Numero,
		ClientName:      row.ClienteNome,
		ClientPhone:     row.ClienteWpp,
		ClientAddress:   row.ClienteEnd,
		ClientReference: row.ClienteRef,
		FurnitureType:   row.TipoMovel,
		Validity:        row.Validade,
		Status:          entities.NormalizeStatus(row.Status),
		Total:           row.VTotal,
		Technical: entities.TechnicalDetails{
			Sheet:         row.Chapa,
			Finish:        row.Acabamento,
			Hardware:      row.Ferragens,
			Notes:         row.Detalhes,
			Start:         row.Inicio,
			Delivery:      row.Entrega,
			DeadlineNotes: row.PrazoObs,
			Warranty:      row.Garantia,
			Included:      row.Incluso,
			Excluded:      row.Excluso,
			FinalNotes:    row.ObsFinal,
		},
		Costs: entities.Costs{
			Materials:     row.VMat,
			Expenses:      row.VDespesas,
			Hardware:      row.VFerr,
			Other:         row.VOutros,
			MarginPercent: row.VMargem,
		},
		Payment: entities.PaymentTerms{
			Methods:      row.PgtoFormas,
			Installments: row.PgtoParcelas,
			Interest:     row.PgtoJuros,
			PixKey:       row.PgtoPix,
			PixKeyType:   row.PgtoPixTipo,
			Condition:    row.PgtoCondicao,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if a := bytes.TrimSpace(row.Ambientes); len(a) > 0 && a[0] == '[' {
		var envs []entities.Environment
		if err := decodeLenient(a, &envs); err == nil {
			q.Environments = envs
		}
	}
	return q
}

func applyNested(q *entities.Quote, m measurements) {
	q.Environments = m.Ambientes
	if m.Cliente.Endereco != "" {
		q.ClientAddress = m.Cliente.Endereco
	}
	if m.Cliente.Referencia != "" {
		q.ClientReference = m.Cliente.Referencia
	}
	q.Costs = entities.Costs{
		Materials:     float64(m.Financeiro.VMat),
		Expenses:      float64(m.Financeiro.VDespesas),
		Hardware:      float64(m.Financeiro.VFerr),
		Other:         float64(m.Financeiro.VOutros),
		MarginPercent: float64(m.Financeiro.VMargem),
	}
	q.Technical = m.DetalhesTecnicos

	p := entities.PaymentTerms{
		Methods:      m.Pgto.Formas,
		Installments: int(m.Pgto.Parcelas),
		Interest:     bool(m.Pgto.Juros),
		PixKey:       m.Pgto.Pix,
		PixKeyType:   m.Pgto.PixTipo,
		Condition:    m.Pgto.Condicao,
	}
	if p.Methods == nil {
		p.Methods = entities.DefaultPaymentMethods()
	}
	if p.Installments == 0 {
		p.Installments = 1
	}
	if p.PixKeyType == "" {
		p.PixKeyType = entities.DefaultPixKeyType
	}
	q.Payment = p
}

func classify(raw []byte) shape {
	if len(raw) == 0 {
		return shapeFlat
	}
	switch raw[0] {
	case '{':
		return shapeNested
	case '[':
		return shapeEnvironmentList
	default:
		return shapeFlat
	}
}

// unwrapJSONString handles drivers that hand back a JSON column as a quoted string.
func unwrapJSONString(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err == nil {
			return bytes.TrimSpace([]byte(inner))
		}
	}
	return raw
}

// decodeLenient keeps whatever decoded when individual fields have the wrong type.
func decodeLenient(raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return err
	}
	return nil
}

// MarshalStringList is used by backends that keep string lists in a JSON column.
func MarshalStringList(v []string) json.RawMessage {
	if v == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return b
}

func UnmarshalStringList(raw []byte) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var out []string
	if err := decodeLenient(raw, &out); err != nil {
		return nil
	}
	return out
}

