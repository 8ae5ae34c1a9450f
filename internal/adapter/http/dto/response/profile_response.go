package response

import (
	"time"

	"fiftymais/internal/domain/entities"
)

type ProfileResponse struct {
	ID                   string     `json:"id"`
	Nome                 string     `json:"nome"`
	Responsavel          string     `json:"responsavel"`
	CPF                  string     `json:"cpf"`
	Wpp                  string     `json:"wpp"`
	Insta                string     `json:"insta"`
	Cidade               string     `json:"cidade"`
	Especialidade        string     `json:"especialidade"`
	Endereco             string     `json:"endereco"`
	Logo                 string     `json:"logo"`
	Unidade              string     `json:"unidade"`
	Validade             string     `json:"validade"`
	PrazoMin             string     `json:"prazo_min"`
	PrazoMax             string     `json:"prazo_max"`
	Rodape               string     `json:"rodape"`
	IsActive             bool       `json:"is_active"`
	StripeCustomerID     string     `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string     `json:"stripe_subscription_id,omitempty"`
	SubscriptionStatus   string     `json:"subscription_status,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                   p.ID,
		Nome:                 p.CompanyName,
		Responsavel:          p.OwnerName,
		CPF:                  p.TaxID,
		Wpp:                  p.Phone,
		Insta:                p.Instagram,
		Cidade:               p.City,
		Especialidade:        p.Specialty,
		Endereco:             p.Address,
		Logo:                 p.Logo,
		Unidade:              string(p.DisplayUnit()),
		Validade:             p.Validity,
		PrazoMin:             p.DeadlineMin,
		PrazoMax:             p.DeadlineMax,
		Rodape:               p.Footer,
		IsActive:             p.Subscription.Active,
		StripeCustomerID:     p.Subscription.CustomerID,
		StripeSubscriptionID: p.Subscription.SubscriptionID,
		SubscriptionStatus:   p.Subscription.Status,
		UpdatedAt:            timePtr(p.UpdatedAt),
	}
}
