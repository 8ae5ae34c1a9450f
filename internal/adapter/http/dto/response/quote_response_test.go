package response

import (
	"testing"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:           "q1",
		Number:       2,
		ClientName:   "Ana",
		Environments: []entities.Environment{{ID: "1", Type: "Closet"}},
		Costs:        entities.Costs{Materials: 1000, Expenses: 500, MarginPercent: 30},
		Total:        1950,
		Status:       "fechada",
		CreatedAt:    now,
	}

	res := FromQuote(q)
	if res.ID != "q1" || res.Numero != 2 || res.TipoMovel != "Closet" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.VTotal != 1950 || res.VTotalFormatado != "R$ 1.950,00" {
		t.Fatalf("unexpected total: %+v", res)
	}
	if res.Status != "enviada" {
		t.Fatalf("expected normalized status, got %q", res.Status)
	}
	if res.CreatedAt == nil || !res.CreatedAt.Equal(now) || res.UpdatedAt != nil {
		t.Fatalf("unexpected dates: %v %v", res.CreatedAt, res.UpdatedAt)
	}
	if res.PgtoFormas == nil {
		t.Fatalf("expected empty payment methods list, got nil")
	}
}

func TestFromQuoteSummaries(t *testing.T) {
	res := FromQuoteSummaries([]usecase.QuoteSummary{
		{Quote: entities.Quote{ID: "a", Number: 1}, DuplicateNumber: true},
		{Quote: entities.Quote{ID: "b", Number: 2}},
	})
	if len(res) != 2 || !res[0].NumeroDuplicado || res[1].NumeroDuplicado {
		t.Fatalf("unexpected summaries: %+v", res)
	}
}

func TestFromProfile(t *testing.T) {
	res := FromProfile(entities.Profile{
		ID:           "u1",
		CompanyName:  "Marcenaria",
		Subscription: entities.Subscription{Active: true, CustomerID: "cus_1", Status: "active"},
	})
	if res.Nome != "Marcenaria" || res.Unidade != "cm" || !res.IsActive || res.StripeCustomerID != "cus_1" {
		t.Fatalf("unexpected profile: %+v", res)
	}
}
