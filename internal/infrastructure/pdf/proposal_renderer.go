package pdf

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth      = 210.0
	margin         = 15.0
	contentWidth   = pageWidth - 2*margin
	pageBreakLimit = 280.0
	lineSpacing    = 7.0
	sectionSpacing = 10.0
	logoWidth      = 40.0
	logoHeight     = 25.0
)

// ProposalRenderer lays out an A4 proposal with core fonts.
type ProposalRenderer struct {
	now func() time.Time
}

var _ interfaces.IProposalRenderer = (*ProposalRenderer)(nil)

func NewProposalRenderer() *ProposalRenderer {
	return &ProposalRenderer{now: time.Now}
}

type page struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (p *page) ensure(space float64) {
	if p.y+space > pageBreakLimit {
		p.doc.AddPage()
		p.y = 20
	}
}

func (p *page) font(style string, size float64) {
	p.doc.SetFont("Helvetica", style, size)
}

func (p *page) text(x float64, s string) {
	p.doc.SetXY(x, p.y)
	p.doc.CellFormat(0, 5, p.tr(s), "", 0, "L", false, 0, "")
}

// wrapped writes s in a column of the given width and returns its height.
func (p *page) wrapped(x, width, lineHeight float64, s string) float64 {
	p.doc.SetXY(x, p.y)
	p.doc.MultiCell(width, lineHeight, p.tr(s), "", "L", false)
	return p.doc.GetY() - p.y
}

func (r *ProposalRenderer) Render(q entities.Quote, vendor entities.Profile) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, 20, margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Proposta - "+q.ClientName, true)
	doc.SetCreator(entities.DefaultVendorName, true)
	doc.AddPage()

	p := &page{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), y: 20}
	vendorName := vendor.CompanyName
	if vendorName == "" {
		vendorName = entities.DefaultVendorName
	}

	r.header(p, vendor.Logo, vendorName)
	r.client(p, q)
	r.environments(p, q.Environments, vendor.DisplayUnit())
	r.specs(p, q.Technical)

	p.ensure(30)
	p.font("B", 11)
	p.text(margin, "INVESTIMENTO TOTAL")
	p.y += 7
	p.font("B", 12)
	p.text(margin, entities.FormatBRL(q.Total))
	p.y += sectionSpacing

	p.ensure(40)
	p.font("B", 11)
	p.text(margin, "CONDIÇÕES DE PAGAMENTO")
	p.y += 7
	p.font("", 9)
	for _, c := range entities.PaymentConditions(q) {
		p.ensure(8)
		p.y += p.wrapped(margin, contentWidth, 5, c) + 1
	}
	p.y += sectionSpacing

	r.vendor(p, vendor, vendorName)

	p.ensure(30)
	p.font("B", 9)
	p.text(margin, "CONSIDERAÇÕES IMPORTANTES")
	p.y += 7
	p.font("", 9)
	exclusions := q.Technical.Excluded
	if exclusions == "" {
		exclusions = entities.DefaultExclusions
	}
	p.wrapped(margin, contentWidth, 5, exclusions)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *ProposalRenderer) header(p *page, logo, vendorName string) {
	if img, kind, ok := decodeDataURL(logo); ok {
		opts := fpdf.ImageOptions{ImageType: kind}
		p.doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(img))
		if p.doc.Ok() {
			p.doc.ImageOptions("logo", (pageWidth-logoWidth)/2, p.y, logoWidth, logoHeight, false, opts, 0, "")
			p.y += logoHeight + 12
		} else {
			p.doc.ClearError()
			p.y += 10
		}
	} else {
		p.font("B", 22)
		p.doc.SetXY(margin, p.y)
		p.doc.CellFormat(contentWidth, 10, p.tr(vendorName), "", 0, "C", false, 0, "")
		p.y += 15
	}

	p.font("B", 14)
	p.y += p.wrapped(margin, contentWidth, 7, entities.ProposalTitle) + 2

	p.doc.SetDrawColor(220, 220, 220)
	p.doc.SetLineWidth(0.2)
	p.doc.Line(margin, p.y, pageWidth-margin, p.y)
	p.y += sectionSpacing
}

func (r *ProposalRenderer) client(p *page, q entities.Quote) {
	p.font("B", 10)
	p.text(margin, "CLIENTE: ")
	p.font("", 10)
	p.text(margin+20, strings.ToUpper(orDash(q.ClientName)))
	p.y += lineSpacing

	p.font("B", 10)
	p.text(margin, "LOCAL: ")
	p.font("", 10)
	p.y += p.wrapped(margin+15, pageWidth-margin-35, 5, orDash(q.ClientAddress)) + 2

	p.font("B", 10)
	p.text(margin, "DATA: ")
	p.font("", 10)
	p.text(margin+15, entities.IssueDate(q, r.now()).Format("02/01/2006"))
	p.y += lineSpacing

	if q.Validity != "" {
		p.font("B", 10)
		p.text(margin, "VALIDADE: ")
		p.font("", 10)
		p.text(margin+22, q.Validity)
		p.y += sectionSpacing
	} else {
		p.y += 5
	}
}

func (r *ProposalRenderer) environments(p *page, envs []entities.Environment, unit entities.MeasurementUnit) {
	p.font("B", 11)
	p.text(margin, "DETALHAMENTO DO PROJETO")
	p.y += 7

	for i, env := range envs {
		p.ensure(25)
		p.font("B", 10)
		p.text(margin, strconv.Itoa(i+1)+". "+strings.ToUpper(env.Type))
		p.y += 6

		p.font("", 9)
		p.doc.SetTextColor(80, 80, 80)
		for _, piece := range env.Pieces {
			p.ensure(8)
			p.y += p.wrapped(margin+5, contentWidth-8, 5, entities.PieceLine(piece, unit))
		}
		if env.Details != "" {
			p.ensure(8)
			p.font("I", 8)
			p.y += p.wrapped(margin+5, contentWidth-10, 4, "Obs: "+env.Details) + 2
		}
		p.y += 3
		p.doc.SetTextColor(0, 0, 0)
	}
}

func (r *ProposalRenderer) specs(p *page, t entities.TechnicalDetails) {
	p.ensure(30)
	p.y += 5
	p.font("B", 10)
	p.text(margin, "ESPECIFICAÇÕES TÉCNICAS")
	p.y += 6
	p.font("", 9)
	p.doc.SetTextColor(80, 80, 80)
	for _, s := range entities.TechnicalSpecs(t) {
		p.ensure(8)
		p.y += p.wrapped(margin, contentWidth, 5, s)
	}
	p.y += sectionSpacing
	p.doc.SetTextColor(0, 0, 0)
}

func (r *ProposalRenderer) vendor(p *page, v entities.Profile, name string) {
	p.ensure(40)
	p.font("B", 9)
	p.text(margin, "DADOS DO FORNECEDOR")
	p.y += 7
	p.font("", 9)
	p.text(margin, name)
	p.y += 5
	if v.TaxID != "" {
		p.text(margin, "CNPJ/CPF: "+v.TaxID)
		p.y += 5
	}
	p.text(margin, "WhatsApp: "+orDash(v.Phone))
	p.y += 5
	if v.Instagram != "" {
		p.text(margin, "Instagram: "+v.Instagram)
		p.y += 5
	}
	p.y += sectionSpacing
}

// decodeDataURL accepts data:image/png|jpeg;base64 logos.
func decodeDataURL(s string) ([]byte, string, bool) {
	meta, data, ok := strings.Cut(s, ",")
	if !ok || !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
		return nil, "", false
	}
	kind := strings.TrimSuffix(strings.TrimPrefix(meta, "data:image/"), ";base64")
	switch kind {
	case "png":
	case "jpeg", "jpg":
		kind = "jpg"
	default:
		return nil, "", false
	}
	img, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(img) == 0 {
		return nil, "", false
	}
	return img, kind, true
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
