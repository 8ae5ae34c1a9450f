package request

import (
	"fiftymais/internal/domain/entities"
)

// QuoteRequest is the flat wizard state posted by the client. Numeric
// fields accept numbers, numeric strings or empty values.
type QuoteRequest struct {
	ID           string                 `json:"id"`
	Numero       entities.FlexInt       `json:"numero"`
	ClienteNome  string                 `json:"cliente_nome"`
	ClienteWpp   string                 `json:"cliente_wpp"`
	ClienteEnd   string                 `json:"cliente_end"`
	ClienteRef   string                 `json:"cliente_ref"`
	Ambientes    []entities.Environment `json:"ambientes"`
	Chapa        string                 `json:"chapa"`
	Acabamento   string                 `json:"acabamento"`
	Ferragens    string                 `json:"ferragens"`
	Detalhes     string                 `json:"detalhes"`
	Inicio       string                 `json:"inicio"`
	Entrega      string                 `json:"entrega"`
	PrazoObs     string                 `json:"prazo_obs"`
	Garantia     string                 `json:"garantia"`
	Incluso      string                 `json:"incluso"`
	Excluso      string                 `json:"excluso"`
	ObsFinal     string                 `json:"obs_final"`
	VMat         entities.FlexFloat     `json:"v_mat"`
	VDespesas    entities.FlexFloat     `json:"v_despesas"`
	VFerr        entities.FlexFloat     `json:"v_ferr"`
	VOutros      entities.FlexFloat     `json:"v_outros"`
	VMargem      entities.FlexFloat     `json:"v_margem"`
	PgtoFormas   []string               `json:"pgto_formas"`
	PgtoParcelas entities.FlexInt       `json:"pgto_parcelas"`
	PgtoJuros    entities.FlexBool      `json:"pgto_juros"`
	PgtoPix      string                 `json:"pgto_pix"`
	PgtoPixTipo  string                 `json:"pgto_pix_tipo"`
	PgtoCondicao string                 `json:"pgto_condicao"`
	Validade     string                 `json:"validade"`
	Status       string                 `json:"status"`
}

func (r QuoteRequest) Costs() entities.Costs {
	return entities.Costs{
		Materials:     float64(r.VMat),
		Expenses:      float64(r.VDespesas),
		Hardware:      float64(r.VFerr),
		Other:         float64(r.VOutros),
		MarginPercent: float64(r.VMargem),
	}
}

func (r QuoteRequest) ToEntity() entities.Quote {
	installments := int(r.PgtoParcelas)
	if installments < 1 {
		installments = 1
	}
	pixType := r.PgtoPixTipo
	if pixType == "" {
		pixType = entities.DefaultPixKeyType
	}
	return entities.Quote{
		ID:              r.ID,
		Number:          int(r.Numero),
		ClientName:      r.ClienteNome,
		ClientPhone:     r.ClienteWpp,
		ClientAddress:   r.ClienteEnd,
		ClientReference: r.ClienteRef,
		Environments:    r.Ambientes,
		Technical: entities.TechnicalDetails{
			Sheet:         r.Chapa,
			Finish:        r.Acabamento,
			Hardware:      r.Ferragens,
			Notes:         r.Detalhes,
			Start:         r.Inicio,
			Delivery:      r.Entrega,
			DeadlineNotes: r.PrazoObs,
			Warranty:      r.Garantia,
			Included:      r.Incluso,
			Excluded:      r.Excluso,
			FinalNotes:    r.ObsFinal,
		},
		Costs: r.Costs(),
		Payment: entities.PaymentTerms{
			Methods:      r.PgtoFormas,
			Installments: installments,
			Interest:     bool(r.PgtoJuros),
			PixKey:       r.PgtoPix,
			PixKeyType:   pixType,
			Condition:    r.PgtoCondicao,
		},
		Validity: r.Validade,
		Status:   entities.NormalizeStatus(r.Status),
	}
}

type PricingRequest struct {
	VMat      entities.FlexFloat `json:"v_mat"`
	VDespesas entities.FlexFloat `json:"v_despesas"`
	VFerr     entities.FlexFloat `json:"v_ferr"`
	VOutros   entities.FlexFloat `json:"v_outros"`
	VMargem   entities.FlexFloat `json:"v_margem"`
}

func (r PricingRequest) Costs() entities.Costs {
	return entities.Costs{
		Materials:     float64(r.VMat),
		Expenses:      float64(r.VDespesas),
		Hardware:      float64(r.VFerr),
		Other:         float64(r.VOutros),
		MarginPercent: float64(r.VMargem),
	}
}

// EnvironmentOpRequest applies one list operation to the posted environments.
type EnvironmentOpRequest struct {
	Ambientes  []entities.Environment `json:"ambientes"`
	Op         string                 `json:"op" binding:"required,oneof=add_environment remove_environment update_environment add_piece update_piece remove_piece"`
	AmbienteID string                 `json:"ambiente_id"`
	Tipo       string                 `json:"tipo"`
	Detalhes   string                 `json:"detalhes"`
	PecaIndex  int                    `json:"peca_index"`
	Campo      string                 `json:"campo"`
	Valor      string                 `json:"valor"`
}

type PixKeyRequest struct {
	Valor string `json:"valor"`
	Tipo  string `json:"tipo" binding:"required"`
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
