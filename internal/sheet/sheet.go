// Package sheet prints a saved pig design as a one-page PDF: which part fills
// each slot, the chosen colors, and every connection point a builder needs to
// line the parts up by hand.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"pigpen/internal/pig"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageW     = 595
	margin    = 40
	rowH      = 16
	fontSize  = 9
	titleSize = 18
	maxCell   = 38
)

var (
	tableCols  = []float64{90, 140, 200, 85}
	pointsCols = []float64{140, 140, 120, 115}
)

// PartLookup resolves part ids. *pig.Catalog and *pig.Configurator both
// satisfy it.
type PartLookup interface {
	PartByID(id string) (pig.Part, bool)
}

// Generate returns PDF bytes for snapshot s, resolving its ids through parts.
// Ids that no longer resolve are printed as missing rather than failing.
func Generate(s pig.Snapshot, parts PartLookup) ([]byte, error) {
	if parts == nil {
		return nil, errors.New("sheet: nil part lookup")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("Pig design: "+s.Label, true)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(248, 214, 220)
	pdf.Rect(0, 0, pageW, 90, "F")
	pdf.SetTextColor(90, 40, 50)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin-6)
	pdf.CellFormat(pageW-2*margin, 22, "Pig Design", "", 1, "L", false, 0, "")
	label := s.Label
	if label == "" {
		label = "Untitled"
	}
	pdf.SetFont("Helvetica", "I", fontSize+2)
	pdf.CellFormat(pageW-2*margin, 14, tr(truncate(label, 80)), "", 1, "L", false, 0, "")

	pdf.SetY(110)
	pdf.SetTextColor(40, 25, 30)
	header(pdf, tableCols, "Slot", "Part", "Asset", "Color")

	var resolved []pig.Part
	for _, cat := range pig.Categories {
		ids := s.IDs(cat)
		if len(ids) == 0 {
			row(pdf, tr, tableCols, string(cat), "-", "", "")
			continue
		}
		for _, id := range ids {
			p, ok := parts.PartByID(id)
			if !ok || p.Category != cat {
				row(pdf, tr, tableCols, string(cat), id+" (missing)", "", "")
				continue
			}
			resolved = append(resolved, p)
			row(pdf, tr, tableCols, string(cat), p.DisplayName(), p.AssetPath, s.Colors[cat])
		}
	}

	pdf.Ln(rowH)
	pdf.SetFont("Helvetica", "B", fontSize+3)
	pdf.CellFormat(pageW-2*margin, 18, "Connection points", "", 1, "L", false, 0, "")
	header(pdf, pointsCols, "Part", "Point", "X", "Y")
	for _, p := range resolved {
		var names []string
		for name := range p.ConnectionPoints {
			names = append(names, name)
		}
		slices.Sort(names)
		if len(names) == 0 {
			row(pdf, tr, pointsCols, p.DisplayName(), "none", "", "")
			continue
		}
		for _, name := range names {
			pt := p.ConnectionPoints[name]
			row(pdf, tr, pointsCols, p.DisplayName(), name,
				fmt.Sprintf("%.1f", pt.X), fmt.Sprintf("%.1f", pt.Y))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render design sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func header(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(90, 40, 50)
	pdf.SetTextColor(255, 255, 255)
	for i, c := range cells {
		pdf.CellFormat(widths[i], rowH, c, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(40, 25, 30)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, cells ...string) {
	pdf.SetFont("Helvetica", "", fontSize)
	for i, c := range cells {
		pdf.CellFormat(widths[i], rowH, tr(truncate(c, maxCell)), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
