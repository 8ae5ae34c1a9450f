package entities

import "time"

type MeasurementUnit string

const (
	UnitMillimeters MeasurementUnit = "mm"
	UnitCentimeters MeasurementUnit = "cm"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"
)

// Profile is one per account and shares the account id.
type Profile struct {
	ID           string          `json:"id"`
	CompanyName  string          `json:"nome"`
	OwnerName    string          `json:"responsavel"`
	TaxID        string          `json:"cpf"`
	Phone        string          `json:"wpp"`
	Instagram    string          `json:"insta"`
	City         string          `json:"cidade"`
	Specialty    string          `json:"especialidade"`
	Address      string          `json:"endereco"`
	Logo         string          `json:"logo"`
	Unit         MeasurementUnit `json:"unidade"`
	Validity     string          `json:"validade"`
	DeadlineMin  string          `json:"prazo_min"`
	DeadlineMax  string          `json:"prazo_max"`
	Footer       string          `json:"rodape"`
	Subscription Subscription    `json:"assinatura"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Subscription is the billing state attached to a profile by the webhook.
type Subscription struct {
	Active         bool      `json:"is_active"`
	CustomerID     string    `json:"stripe_customer_id"`
	SubscriptionID string    `json:"stripe_subscription_id"`
	Status         string    `json:"subscription_status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DisplayUnit falls back to centimeters.
func (p Profile) DisplayUnit() MeasurementUnit {
	if p.Unit == UnitMillimeters {
		return UnitMillimeters
	}
	return UnitCentimeters
}
