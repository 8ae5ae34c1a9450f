package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"fiftymais/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:            "q-1",
		ClientName:    "João Pereira",
		ClientPhone:   "11999990000",
		ClientAddress: "Rua das Acácias, 120 - São Paulo",
		Environments: []entities.Environment{
			{ID: "1", Type: "Cozinha Planejada", Details: "Puxador perfil", Pieces: []entities.Piece{
				{Name: "Armário superior", Width: 180, Height: 70, Depth: 35},
				{Name: "Nicho"},
			}},
		},
		Technical: entities.TechnicalDetails{Sheet: "MDF 18mm", Finish: "Laca fosca"},
		Costs:     entities.Costs{Materials: 1000, Expenses: 500, MarginPercent: 30},
		Total:     1950,
		Payment:   entities.PaymentTerms{Methods: []string{"PIX"}, Installments: 3, PixKey: "123.456.789-09"},
		Validity:  "15 dias",
		CreatedAt: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestProposalRenderer_Render(t *testing.T) {
	r := NewProposalRenderer()

	t.Run("renders a pdf document", func(t *testing.T) {
		out, err := r.Render(sampleQuote(), entities.Profile{CompanyName: "Marcenaria Silva", Phone: "11988887777"})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("embeds a png logo", func(t *testing.T) {
		out, err := r.Render(sampleQuote(), entities.Profile{Logo: onePixelPNG})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("unreadable logo falls back without failing", func(t *testing.T) {
		out, err := r.Render(sampleQuote(), entities.Profile{Logo: "data:image/png;base64,bm90IGFuIGltYWdl"})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("long quotes span pages", func(t *testing.T) {
		q := sampleQuote()
		for i := 0; i < 40; i++ {
			q.Environments = append(q.Environments, entities.Environment{
				ID:     fmt.Sprint(i),
				Type:   "Dormitório",
				Pieces: []entities.Piece{{Name: "Guarda-roupa", Width: 250, Height: 260, Depth: 60}},
			})
		}
		out, err := r.Render(q, entities.Profile{})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	})

	t.Run("empty quote", func(t *testing.T) {
		_, err := r.Render(entities.Quote{}, entities.Profile{})
		require.NoError(t, err)
	})
}

func TestDecodeDataURL(t *testing.T) {
	_, kind, ok := decodeDataURL(onePixelPNG)
	assert.True(t, ok)
	assert.Equal(t, "png", kind)

	_, kind, ok = decodeDataURL("data:image/jpeg;base64,/9j/")
	assert.True(t, ok)
	assert.Equal(t, "jpg", kind)

	for _, s := range []string{"", "https://example.com/logo.png", "data:image/gif;base64,R0lG", "data:image/png;base64,%%%"} {
		_, _, ok := decodeDataURL(s)
		assert.False(t, ok, s)
	}
}
