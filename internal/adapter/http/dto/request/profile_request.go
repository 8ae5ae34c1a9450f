package request

import "fiftymais/internal/domain/entities"

type ProfileRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Responsavel   string `json:"responsavel"`
	CPF           string `json:"cpf"`
	Wpp           string `json:"wpp"`
	Insta         string `json:"insta"`
	Cidade        string `json:"cidade"`
	Especialidade string `json:"especialidade"`
	Endereco      string `json:"endereco"`
	Logo          string `json:"logo"`
	Unidade       string `json:"unidade" binding:"omitempty,oneof=mm cm"`
	Validade      string `json:"validade"`
	PrazoMin      string `json:"prazo_min"`
	PrazoMax      string `json:"prazo_max"`
	Rodape        string `json:"rodape"`
}

func (r ProfileRequest) ToEntity() entities.Profile {
	return entities.Profile{
		CompanyName: r.Nome,
		OwnerName:   r.Responsavel,
		TaxID:       r.CPF,
		Phone:       r.Wpp,
		Instagram:   r.Insta,
		City:        r.Cidade,
		Specialty:   r.Especialidade,
		Address:     r.Endereco,
		Logo:        r.Logo,
		Unit:        entities.MeasurementUnit(r.Unidade),
		Validity:    r.Validade,
		DeadlineMin: r.PrazoMin,
		DeadlineMax: r.PrazoMax,
		Footer:      r.Rodape,
	}
}
