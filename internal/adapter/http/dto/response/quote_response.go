package response

import (
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase"
)

// QuoteResponse is the flat quote shape the wizard works with.
type QuoteResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	Numero          int                    `json:"numero"`
	NumeroDuplicado bool                   `json:"numero_duplicado"`
	ClienteNome     string                 `json:"cliente_nome"`
	ClienteWpp      string                 `json:"cliente_wpp"`
	ClienteEnd      string                 `json:"cliente_end"`
	ClienteRef      string                 `json:"cliente_ref"`
	TipoMovel       string                 `json:"tipo_movel"`
	Ambientes       []entities.Environment `json:"ambientes"`
	Chapa           string                 `json:"chapa"`
	Acabamento      string                 `json:"acabamento"`
	Ferragens       string                 `json:"ferragens"`
	Detalhes        string                 `json:"detalhes"`
	Inicio          string                 `json:"inicio"`
	Entrega         string                 `json:"entrega"`
	PrazoObs        string                 `json:"prazo_obs"`
	Garantia        string                 `json:"garantia"`
	Incluso         string                 `json:"incluso"`
	Excluso         string                 `json:"excluso"`
	ObsFinal        string                 `json:"obs_final"`
	VMat            float64                `json:"v_mat"`
	VDespesas       float64                `json:"v_despesas"`
	VFerr           float64                `json:"v_ferr"`
	VOutros         float64                `json:"v_outros"`
	VMargem         float64                `json:"v_margem"`
	VTotal          float64                `json:"v_total"`
	VTotalFormatado string                 `json:"v_total_formatado"`
	PgtoFormas      []string               `json:"pgto_formas"`
	PgtoParcelas    int                    `json:"pgto_parcelas"`
	PgtoJuros       bool                   `json:"pgto_juros"`
	PgtoPix         string                 `json:"pgto_pix"`
	PgtoPixTipo     string                 `json:"pgto_pix_tipo"`
	PgtoCondicao    string                 `json:"pgto_condicao"`
	Validade        string                 `json:"validade"`
	Status          string                 `json:"status"`
	CreatedAt       *time.Time             `json:"created_at,omitempty"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	envs := q.Environments
	if envs == nil {
		envs = []entities.Environment{}
	}
	furniture := q.FurnitureType
	if furniture == "" {
		furniture = entities.DeriveFurnitureType(q.Environments)
	}
	methods := q.Payment.Methods
	if methods == nil {
		methods = []string{}
	}
	return QuoteResponse{
		ID:              q.ID,
		UserID:          q.UserID,
		Numero:          q.Number,
		ClienteNome:     q.ClientName,
		ClienteWpp:      q.ClientPhone,
		ClienteEnd:      q.ClientAddress,
		ClienteRef:      q.ClientReference,
		TipoMovel:       furniture,
		Ambientes:       envs,
		Chapa:           q.Technical.Sheet,
		Acabamento:      q.Technical.Finish,
		Ferragens:       q.Technical.Hardware,
		Detalhes:        q.Technical.Notes,
		Inicio:          q.Technical.Start,
		Entrega:         q.Technical.Delivery,
		PrazoObs:        q.Technical.DeadlineNotes,
		Garantia:        q.Technical.Warranty,
		Incluso:         q.Technical.Included,
		Excluso:         q.Technical.Excluded,
		ObsFinal:        q.Technical.FinalNotes,
		VMat:            q.Costs.Materials,
		VDespesas:       q.Costs.Expenses,
		VFerr:           q.Costs.Hardware,
		VOutros:         q.Costs.Other,
		VMargem:         q.Costs.MarginPercent,
		VTotal:          q.Total,
		VTotalFormatado: entities.FormatBRL(q.Total),
		PgtoFormas:      methods,
		PgtoParcelas:    q.Payment.Installments,
		PgtoJuros:       q.Payment.Interest,
		PgtoPix:         q.Payment.PixKey,
		PgtoPixTipo:     q.Payment.PixKeyType,
		PgtoCondicao:    q.Payment.Condition,
		Validade:        q.Validity,
		Status:          string(entities.NormalizeStatus(string(q.Status))),
		CreatedAt:       timePtr(q.CreatedAt),
		UpdatedAt:       timePtr(q.UpdatedAt),
	}
}

func FromQuoteSummaries(list []usecase.QuoteSummary) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, s := range list {
		r := FromQuote(s.Quote)
		r.NumeroDuplicado = s.DuplicateNumber
		out = append(out, r)
	}
	return out
}

type PricingResponse struct {
	Subtotal          float64 `json:"subtotal"`
	Lucro             float64 `json:"lucro"`
	Total             float64 `json:"total"`
	SubtotalFormatado string  `json:"subtotal_formatado"`
	LucroFormatado    string  `json:"lucro_formatado"`
	TotalFormatado    string  `json:"total_formatado"`
}

func FromPriceBreakdown(b entities.PriceBreakdown) PricingResponse {
	return PricingResponse{
		Subtotal:          b.Subtotal,
		Lucro:             b.Profit,
		Total:             b.Total,
		SubtotalFormatado: b.SubtotalFormatted,
		LucroFormatado:    b.ProfitFormatted,
		TotalFormatado:    b.TotalFormatted,
	}
}

type EnvironmentsResponse struct {
	Ambientes []entities.Environment `json:"ambientes"`
	TipoMovel string                 `json:"tipo_movel"`
}

type PixKeyResponse struct {
	Valor string `json:"valor"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
