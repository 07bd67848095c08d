package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	chartImageName = "chart"
	fontFamily     = "Helvetica"
)

// pdfMeta is written into the document information dictionary.
type pdfMeta struct {
	Title     string
	Subject   string
	Creator   string
	CreatedAt time.Time
}

// writePDF draws layout with fpdf. Automatic page breaks are off: pages come
// from the layout only.
func writePDF(layout Layout, chart image.Image, meta pdfMeta) ([]byte, error) {
	g := layout.Geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.CreatedAt)
	pdf.SetModificationDate(meta.CreatedAt)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, chart); err != nil {
		return nil, fmt.Errorf("%w: encoding chart: %w", ErrChartCaptureUnavailable, err)
	}
	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(chartImageName, imgOpts, &encoded)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range layout.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch el.Kind {
			case ElementText:
				setFont(pdf, el)
				setTextColor(pdf, el.Color)
				pdf.Text(el.X, el.Y, tr(el.Text))
			case ElementRect:
				if el.Fill {
					setFillColor(pdf, el.Color)
					pdf.Rect(el.X, el.Y, el.W, el.H, "F")
				} else {
					setDrawColor(pdf, el.Color)
					pdf.Rect(el.X, el.Y, el.W, el.H, "D")
				}
			case ElementBadge:
				setFont(pdf, el)
				setFillColor(pdf, el.Color)
				setTextColor(pdf, whiteColor)
				pdf.SetXY(el.X, el.Y)
				pdf.CellFormat(el.W, el.H, tr(el.Text), "", 0, "CM", true, 0, "")
			case ElementImage:
				pdf.ImageOptions(chartImageName, el.X, el.Y, el.W, el.H, false, imgOpts, 0, "")
			}
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return out.Bytes(), nil
}

func setFont(pdf *fpdf.Fpdf, el Element) {
	style := ""
	if el.Bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, el.FontSize)
}

func setTextColor(pdf *fpdf.Fpdf, hex string) {
	c := colorOrBlack(hex)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *fpdf.Fpdf, hex string) {
	c := colorOrBlack(hex)
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDrawColor(pdf *fpdf.Fpdf, hex string) {
	c := colorOrBlack(hex)
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func colorOrBlack(hex string) color.RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
