package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatTZS renders a whole-shilling price, e.g. "TSh 125,000".
func FormatTZS(price *int64) string {
	if price == nil {
		return "-"
	}
	return pricePrinter.Sprintf("TSh %d", *price)
}

// GenerateCatalogReport renders the admin oversight report of one catalog
// kind: summary stats followed by every item with its moderation status.
func GenerateCatalogReport(c *catalog.Collection, generatedAt time.Time) (*bytes.Buffer, error) {
	stats := c.Stats()

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("CATALOG REPORT", props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {
		m.Col(6, func() {
			m.Text("CRAFT ART MARKET", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated %s", generatedAt.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {})

	// Summary
	summary := [][2]string{
		{"Kind", string(stats.Kind)},
		{"Items", fmt.Sprintf("%d", stats.TotalItems)},
		{"Featured", fmt.Sprintf("%d", stats.FeaturedItems)},
		{"In stock", fmt.Sprintf("%d", stats.InStockItems)},
		{"Average rating", fmt.Sprintf("%.2f", stats.AverageRating)},
		{"Average price", pricePrinter.Sprintf("TSh %.0f", stats.AveragePrice)},
	}
	for _, line := range summary {
		m.Row(5, func() {
			m.Col(4, func() {
				m.Text(line[0], props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
			})
			m.Col(8, func() {
				m.Text(line[1], props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(8, func() {})

	// Items table
	header := []string{"ID", "Name", "Category", "Price", "Rating", "Status"}
	contents := make([][]string, 0, len(c.Items))
	for _, item := range c.Items {
		contents = append(contents, []string{
			item.ID,
			item.Name,
			item.Category,
			FormatTZS(item.Price),
			fmt.Sprintf("%.1f", item.Rating),
			item.Status,
		})
	}
	m.TableList(header, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      8,
			GridSizes: []uint{2, 3, 2, 2, 1, 2},
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: []uint{2, 3, 2, 2, 1, 2},
		},
		Align:              consts.Left,
		HeaderContentSpace: 2,
		Line:               true,
	})

	m.Row(10, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Moderation statuses are informational; catalog data is read-only.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render catalog report: %w", err)
	}
	return &buf, nil
}

// ReportFilename names the PDF of a kind on a day.
func ReportFilename(kind models.CatalogKind, at time.Time) string {
	return fmt.Sprintf("catalog-%s-%s.pdf", kind, at.Format("2006-01-02"))
}
