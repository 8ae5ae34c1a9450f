package entities

import (
	"strings"
	"time"
)

// QuoteStatus is the lifecycle of a proposal. Only two values are ever written;
// older rows may carry the legacy labels handled by NormalizeStatus.
type QuoteStatus string

const (
	QuoteStatusNotSent QuoteStatus = "nao_enviada"
	QuoteStatusSent    QuoteStatus = "enviada"
)

const (
	DefaultFurnitureType   = "Móvel Planejado"
	DefaultEnvironmentType = "Cozinha Planejada"
	DefaultMarginPercent   = 30
	DefaultPixKeyType      = "CPF"
)

// DefaultPaymentMethods is applied when a stored quote carries no payment methods.
func DefaultPaymentMethods() []string {
	return []string{"Dinheiro", "PIX"}
}

// NormalizeStatus folds legacy and English labels onto the two stored values.
func NormalizeStatus(s string) QuoteStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enviada", "sent", "fechada", "closed":
		return QuoteStatusSent
	default:
		return QuoteStatusNotSent
	}
}

// ParseStatusFilter returns false when s does not restrict the list.
func ParseStatusFilter(s string) (QuoteStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todas":
		return "", false
	}
	return NormalizeStatus(s), true
}

// ParseStatusLabel accepts only the known status labels, legacy ones included.
func ParseStatusLabel(s string) (QuoteStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enviada", "sent", "fechada", "closed":
		return QuoteStatusSent, true
	case "nao_enviada", "not_sent", "ativa", "active":
		return QuoteStatusNotSent, true
	default:
		return "", false
	}
}

// Piece is one furniture module. Dimensions are in the account's unit.
type Piece struct {
	Name   string    `json:"nome"`
	Width  FlexFloat `json:"l"`
	Height FlexFloat `json:"a"`
	Depth  FlexFloat `json:"p"`
}

func (p Piece) HasDimensions() bool {
	return p.Width != 0 || p.Height != 0 || p.Depth != 0
}

// Environment is a room within a quote.
type Environment struct {
	ID      string  `json:"id"`
	Type    string  `json:"tipo"`
	Details string  `json:"detalhes,omitempty"`
	Pieces  []Piece `json:"pecas"`
}

// TechnicalDetails are the free-text specification fields of a proposal.
type TechnicalDetails struct {
	Sheet         string `json:"chapa"`
	Finish        string `json:"acabamento"`
	Hardware      string `json:"ferragens"`
	Notes         string `json:"detalhes"`
	Start         string `json:"inicio"`
	Delivery      string `json:"entrega"`
	DeadlineNotes string `json:"prazo_obs"`
	Warranty      string `json:"garantia"`
	Included      string `json:"incluso"`
	Excluded      string `json:"excluso"`
	FinalNotes    string `json:"obs_final"`
}

// PaymentTerms describes how the client may pay.
type PaymentTerms struct {
	Methods      []string `json:"formas"`
	Installments int      `json:"parcelas"`
	Interest     bool     `json:"juros"`
	PixKey       string   `json:"pix"`
	PixKeyType   string   `json:"pix_tipo"`
	Condition    string   `json:"condicao"`
}

// Quote is the canonical in-memory proposal. Storage shapes are resolved
// before a Quote is built, so nothing past the persistence boundary ever
// inspects how the row was laid out.
type Quote struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Number          int              `json:"numero"`
	ClientName      string           `json:"cliente_nome"`
	ClientPhone     string           `json:"cliente_wpp"`
	ClientAddress   string           `json:"cliente_end"`
	ClientReference string           `json:"cliente_ref"`
	FurnitureType   string           `json:"tipo_movel"`
	Environments    []Environment    `json:"ambientes"`
	Technical       TechnicalDetails `json:"detalhes_tecnicos"`
	Costs           Costs            `json:"financeiro"`
	Total           float64          `json:"v_total"`
	Payment         PaymentTerms     `json:"pgto"`
	Validity        string           `json:"validade"`
	Status          QuoteStatus      `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// MatchesStatus compares after normalizing legacy labels.
func (q Quote) MatchesStatus(status QuoteStatus) bool {
	return NormalizeStatus(string(q.Status)) == NormalizeStatus(string(status))
}

// MatchesSearch is a case-insensitive match on client name or furniture type.
func (q Quote) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.ClientName), term) ||
		strings.Contains(strings.ToLower(q.FurnitureType), term)
}

// DeriveFurnitureType is the first environment's type or the generic label.
func DeriveFurnitureType(envs []Environment) string {
	if len(envs) > 0 && strings.TrimSpace(envs[0].Type) != "" {
		return envs[0].Type
	}
	return DefaultFurnitureType
}

// NewDraft is the state the wizard starts from.
func NewDraft() Quote {
	return Quote{
		Environments: []Environment{{ID: "1", Type: DefaultEnvironmentType, Pieces: []Piece{}}},
		Technical: TechnicalDetails{
			Sheet:    "MDF 15mm",
			Finish:   "Lacca Fosco",
			Hardware: "Padrão",
		},
		Costs: Costs{MarginPercent: DefaultMarginPercent},
		Payment: PaymentTerms{
			Methods:      DefaultPaymentMethods(),
			Installments: 1,
			PixKeyType:   DefaultPixKeyType,
		},
		Status: QuoteStatusNotSent,
	}
}
