package record

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"fiftymais/internal/domain/entities"
)

func fullQuote() entities.Quote {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:              "q-1",
		UserID:          "u-1",
		Number:          7,
		ClientName:      "Maria",
		ClientPhone:     "11999990000",
		ClientAddress:   "Rua A, 10",
		ClientReference: "portão azul",
		Environments: []entities.Environment{
			{ID: "e1", Type: "Cozinha", Details: "ilha", Pieces: []entities.Piece{{Name: "Balcão", Width: 2.4, Height: 0.9, Depth: 0.6}}},
			{ID: "e2", Type: "Closet", Pieces: []entities.Piece{}},
		},
		Technical: entities.TechnicalDetails{
			Sheet: "MDF 18mm", Finish: "Laca", Hardware: "Blum", Notes: "n", Start: "01/04", Delivery: "30/04",
			DeadlineNotes: "após medição", Warranty: "5 anos", Included: "instalação", Excluded: "pedras", FinalNotes: "obrigado",
		},
		Costs: entities.Costs{Materials: 1000, Expenses: 200, Hardware: 300, Other: 0, MarginPercent: 30},
		Payment: entities.PaymentTerms{
			Methods: []string{"PIX", "Cartão"}, Installments: 3, Interest: true,
			PixKey: "123.456.789-01", PixKeyType: "CPF", Condition: "50% entrada",
		},
		Validity:  "15 dias",
		Status:    entities.QuoteStatusSent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.Total = q.Costs.Total()
	return q
}

func TestSerialize(t *testing.T) {
	row, err := Serialize(fullQuote())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.TipoMovel != "Cozinha" {
		t.Fatalf("expected tipo_movel from first environment, got %q", row.TipoMovel)
	}
	if row.VTotal != 1950 {
		t.Fatalf("expected total 1950, got %v", row.VTotal)
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(row.Medidas, &nested); err != nil {
		t.Fatalf("medidas is not an object: %v", err)
	}
	for _, key := range []string{"ambientes", "cliente", "financeiro", "detalhes_tecnicos", "pgto"} {
		if _, ok := nested[key]; !ok {
			t.Fatalf("missing nested key %q", key)
		}
	}

	empty, _ := Serialize(entities.Quote{})
	if empty.TipoMovel != entities.DefaultFurnitureType {
		t.Fatalf("expected fallback furniture type, got %q", empty.TipoMovel)
	}
}

func TestRoundTrip(t *testing.T) {
	in := fullQuote()
	row, err := Serialize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(out.Environments, in.Environments) {
		t.Fatalf("environments differ:\n got  %+v\n want %+v", out.Environments, in.Environments)
	}
	if out.Costs != in.Costs || out.Total != in.Total {
		t.Fatalf("pricing differs: got %+v / %v", out.Costs, out.Total)
	}
	if !reflect.DeepEqual(out.Payment, in.Payment) {
		t.Fatalf("payment differs: got %+v", out.Payment)
	}
	if out.Technical != in.Technical {
		t.Fatalf("technical differs: got %+v", out.Technical)
	}
	if out.ClientAddress != in.ClientAddress || out.ClientReference != in.ClientReference {
		t.Fatalf("client fields differ: %+v", out)
	}
}

func TestRoundTrip_EmptyPaymentMethods(t *testing.T) {
	in := fullQuote()
	in.Payment.Methods = []string{}

	row, err := Serialize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(row.Medidas), `"formas":[]`) {
		t.Fatalf("expected an explicit empty list in medidas, got %s", row.Medidas)
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Payment.Methods == nil || len(out.Payment.Methods) != 0 {
		t.Fatalf("expected empty payment methods to survive, got %v", out.Payment.Methods)
	}
}

func TestRoundTrip_MissingPaymentMethodsGetDefaults(t *testing.T) {
	in := fullQuote()
	in.Payment.Methods = nil

	row, err := Serialize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out.Payment.Methods, []string{"Dinheiro", "PIX"}) {
		t.Fatalf("expected default payment methods, got %v", out.Payment.Methods)
	}
}

func TestDeserialize_LegacyEnvironmentArray(t *testing.T) {
	row := QuoteRow{
		ID:      "q-old",
		Medidas: json.RawMessage(`[{"id":"1","tipo":"Kitchen","pecas":[]}]`),
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []entities.Environment{{ID: "1", Type: "Kitchen", Pieces: []entities.Piece{}}}
	if !reflect.DeepEqual(out.Environments, want) {
		t.Fatalf("expected %+v, got %+v", want, out.Environments)
	}
}

func TestDeserialize_LegacyArrayLosesToAmbientesColumn(t *testing.T) {
	row := QuoteRow{
		Medidas:   json.RawMessage(`[{"id":"1","tipo":"Kitchen","pecas":[]}]`),
		Ambientes: json.RawMessage(`[{"id":"9","tipo":"Sala","pecas":[]}]`),
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Environments) != 1 || out.Environments[0].ID != "9" {
		t.Fatalf("expected ambientes column to be kept, got %+v", out.Environments)
	}
}

func TestDeserialize_LegacyFlatColumns(t *testing.T) {
	row := QuoteRow{
		ClienteEnd:   "Rua B",
		Chapa:        "MDP",
		VMat:         100,
		VMargem:      10,
		VTotal:       110,
		PgtoFormas:   []string{"Boleto"},
		PgtoParcelas: 2,
		Status:       "ativa",
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ClientAddress != "Rua B" || out.Technical.Sheet != "MDP" || out.Costs.Materials != 100 {
		t.Fatalf("flat fields not restored: %+v", out)
	}
	if out.Payment.Installments != 2 || out.Payment.Methods[0] != "Boleto" {
		t.Fatalf("flat payment not restored: %+v", out.Payment)
	}
	if out.Status != entities.QuoteStatusNotSent {
		t.Fatalf("expected legacy status normalized, got %s", out.Status)
	}
	if out.Environments == nil {
		t.Fatalf("expected empty environment list, got nil")
	}
}

func TestDeserialize_NestedWinsOverFlat(t *testing.T) {
	row := QuoteRow{
		ClienteEnd: "flat address",
		Chapa:      "flat sheet",
		VMat:       999,
		Medidas: json.RawMessage(`{
			"ambientes":[{"id":"x","tipo":"Sala","pecas":[{"nome":"Painel","l":"2.2","a":"","p":0.3}]}],
			"cliente":{"endereco":"nested address"},
			"financeiro":{"v_mat":"100","v_despesas":"","v_ferr":null,"v_outros":"abc","v_margem":50},
			"detalhes_tecnicos":{"chapa":"nested sheet"},
			"pgto":{}
		}`),
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ClientAddress != "nested address" || out.Technical.Sheet != "nested sheet" {
		t.Fatalf("nested values must win: %+v", out)
	}
	if out.Costs.Materials != 100 || out.Costs.Expenses != 0 || out.Costs.Other != 0 || out.Total != 150 {
		t.Fatalf("unexpected pricing: %+v total=%v", out.Costs, out.Total)
	}
	p := out.Environments[0].Pieces[0]
	if p.Width != 2.2 || p.Height != 0 || p.Depth != 0.3 {
		t.Fatalf("unexpected piece: %+v", p)
	}
	if !reflect.DeepEqual(out.Payment.Methods, []string{"Dinheiro", "PIX"}) || out.Payment.Installments != 1 ||
		out.Payment.Interest || out.Payment.PixKeyType != "CPF" {
		t.Fatalf("payment defaults not applied: %+v", out.Payment)
	}
}

func TestDeserialize_NestedFallsBackToFlatClientFields(t *testing.T) {
	row := QuoteRow{
		ClienteEnd: "flat address",
		ClienteRef: "flat ref",
		Medidas:    json.RawMessage(`{"ambientes":[],"cliente":{}}`),
	}
	out, err := Deserialize(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ClientAddress != "flat address" || out.ClientReference != "flat ref" {
		t.Fatalf("expected flat client fields as fallback: %+v", out)
	}
}

func TestDeserialize_DoubleEncodedColumn(t *testing.T) {
	inner := `[{"id":"1","tipo":"Kitchen","pecas":[]}]`
	encoded, _ := json.Marshal(inner)
	out, err := Deserialize(QuoteRow{Medidas: encoded})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Environments) != 1 || out.Environments[0].Type != "Kitchen" {
		t.Fatalf("unexpected environments: %+v", out.Environments)
	}
}

func TestDeserialize_MalformedMeasurements(t *testing.T) {
	_, err := Deserialize(QuoteRow{Medidas: json.RawMessage(`{"ambientes":`)})
	if !errors.Is(err, ErrMalformedMeasurements) {
		t.Fatalf("expected ErrMalformedMeasurements, got %v", err)
	}
}

func TestStringList(t *testing.T) {
	raw := MarshalStringList([]string{"PIX"})
	if got := UnmarshalStringList(raw); len(got) != 1 || got[0] != "PIX" {
		t.Fatalf("unexpected list: %v", got)
	}
	if MarshalStringList(nil) != nil || UnmarshalStringList(nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
