package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/allisson/employees/internal/employee/domain"
)

type pdfColumn struct {
	title string
	width float64
	value func(e *domain.Employee) string
}

var pdfColumns = []pdfColumn{
	{"Full name", 50, func(e *domain.Employee) string { return e.FullName }},
	{"Email", 65, func(e *domain.Employee) string { return e.Email }},
	{"Designation", 45, func(e *domain.Employee) string { return e.Designation }},
	{"Phone", 35, func(e *domain.Employee) string { return e.PhoneNumber }},
	{"Active", 15, func(e *domain.Employee) string {
		if e.IsActive {
			return "yes"
		}
		return "no"
	}},
	{"Started", 25, func(e *domain.Employee) string { return e.CreatedAt.UTC().Format(time.DateOnly) }},
	{"Manager", 42, func(e *domain.Employee) string { return valueOr(e.ManagerID, "-") }},
}

type pdfRenderer struct {
	now func() time.Time
}

func (r pdfRenderer) Render(w io.Writer, employees []*domain.Employee) error {
	now := time.Now
	if r.now != nil {
		now = r.now
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; UTF-8 names and addresses must be translated first.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Employee directory", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Employee directory")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d employees", now().UTC().Format("2006-01-02 15:04"), len(employees)))
	pdf.Ln(9)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, e := range employees {
		if pdf.GetY()+6 > pageHeight-bottom-12 {
			pdf.AddPage()
			header()
		}
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, cellText(pdf, tr, col.value(e), col.width-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// cellText encodes s for the core fonts and shortens it with an ellipsis so it fits in
// width millimetres. The encoding is single-byte, so truncation works on bytes.
func cellText(pdf *gofpdf.Fpdf, tr func(string) string, s string, width float64) string {
	encoded := tr(s)
	if pdf.GetStringWidth(encoded) <= width {
		return encoded
	}
	for len(encoded) > 0 && pdf.GetStringWidth(encoded+"...") > width {
		encoded = encoded[:len(encoded)-1]
	}
	return encoded + "..."
}
