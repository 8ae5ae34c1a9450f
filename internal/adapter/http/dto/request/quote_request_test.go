package request

import (
	"encoding/json"
	"testing"

	"fiftymais/internal/domain/entities"
)

func TestQuoteRequest_ToEntity(t *testing.T) {
	body := `{
		"id": "q1",
		"numero": "3",
		"cliente_nome": "Ana",
		"cliente_wpp": "11999990000",
		"ambientes": [{"id":"1","tipo":"Closet","pecas":[{"nome":"Porta","l":"60","a":210,"p":""}]}],
		"v_mat": "1000",
		"v_despesas": 500,
		"v_ferr": "",
		"v_margem": "30",
		"pgto_parcelas": "0",
		"pgto_juros": "true",
		"status": "ativa"
	}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := r.ToEntity()

	if q.ID != "q1" || q.Number != 3 || q.ClientName != "Ana" {
		t.Fatalf("unexpected identity fields: %+v", q)
	}
	if q.Costs.Total() != 1950 {
		t.Fatalf("expected total 1950, got %v", q.Costs.Total())
	}
	if q.Payment.Installments != 1 || !q.Payment.Interest || q.Payment.PixKeyType != entities.DefaultPixKeyType {
		t.Fatalf("unexpected payment terms: %+v", q.Payment)
	}
	if q.Status != entities.QuoteStatusNotSent {
		t.Fatalf("expected legacy status to normalize, got %q", q.Status)
	}
	p := q.Environments[0].Pieces[0]
	if p.Width != 60 || p.Height != 210 || p.Depth != 0 {
		t.Fatalf("unexpected piece: %+v", p)
	}
}

func TestPricingRequest_Costs(t *testing.T) {
	var r PricingRequest
	if err := json.Unmarshal([]byte(`{"v_mat":"abc","v_despesas":"200","v_margem":50}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Costs().Total(); got != 300 {
		t.Fatalf("expected 300, got %v", got)
	}
}

func TestProfileRequest_ToEntity(t *testing.T) {
	p := ProfileRequest{Nome: "Marcenaria", CPF: "123", Unidade: "mm"}.ToEntity()
	if p.CompanyName != "Marcenaria" || p.TaxID != "123" || p.Unit != entities.UnitMillimeters {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
