package render

import (
	"fmt"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// EstimatePDF renders the customer-facing estimate summary as a PDF.
// Hidden options and disabled systems are excluded; only the selected
// option per system is priced.
func EstimatePDF(estimate entities.Estimate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, estimate)
	addSystemsTable(m, estimate)
	addAddOns(m, estimate)
	addTotals(m, estimate)
	addSignatureLine(m, estimate)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, estimate entities.Estimate) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("CoolSeason HVAC Estimate", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	muted := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Estimate: %s", estimate.EstimateNumber), props.Text{Size: 9, Align: align.Left, Color: muted}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", estimate.EstimateDate.Format("Jan 2, 2006")), props.Text{Size: 9, Align: align.Right, Color: muted}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", estimate.CustomerName), props.Text{Size: 9, Align: align.Left, Color: muted}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Status: %s", estimate.Status), props.Text{Size: 9, Align: align.Right, Color: muted}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Address: %s", estimate.Address), props.Text{Size: 9, Align: align.Left, Color: muted}),
			),
		),
		row.New(4),
	)
}

func addSystemsTable(m core.Maroto, estimate entities.Estimate) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("System", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Configuration", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Selected Option", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
		),
	)

	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}

	for _, sys := range estimate.Systems {
		if !sys.Enabled {
			continue
		}
		optionLabel := "No selection"
		priceLabel := "-"
		if selected, ok := sys.SelectedOption(); ok {
			optionLabel = fmt.Sprintf("%s • %s", selected.Tier.DisplayName(), selected.Stage)
			if selected.Seer > 0 {
				optionLabel = fmt.Sprintf("%s • %d SEER", optionLabel, int(selected.Seer))
			}
			priceLabel = usecase.FormatCurrency(selected.Price)
		}
		m.AddRows(
			row.New(7).Add(
				col.New(4).Add(text.New(sys.Name, baseText)),
				col.New(3).Add(text.New(fmt.Sprintf("%s • %s", sys.EquipmentType.DisplayName(), usecase.FormatCapacity(sys.Tonnage, sys.EquipmentType)), baseText)),
				col.New(3).Add(text.New(optionLabel, baseText)),
				col.New(2).Add(text.New(priceLabel, rightText)),
			),
		)
	}
}

func addAddOns(m core.Maroto, estimate entities.Estimate) {
	enabled := make([]entities.AddOn, 0, len(estimate.AddOns))
	for _, addOn := range estimate.AddOns {
		if addOn.Enabled {
			enabled = append(enabled, addOn)
		}
	}
	if len(enabled) == 0 {
		return
	}

	m.AddRows(
		row.New(6),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Additional Equipment", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}
	for _, addOn := range enabled {
		m.AddRows(
			row.New(6).Add(
				col.New(7).Add(text.New(addOn.Name, baseText)),
				col.New(3).Add(text.New(addOn.Description, baseText)),
				col.New(2).Add(text.New(usecase.FormatCurrency(addOn.Price), rightText)),
			),
		)
	}
}

func addTotals(m core.Maroto, estimate entities.Estimate) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	rows := []struct {
		label string
		value float64
	}{
		{"Systems Subtotal", estimate.SystemsSubtotal},
		{"Add-Ons Subtotal", estimate.AddOnsSubtotal},
		{"Grand Total", estimate.GrandTotal},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(usecase.FormatCurrency(r.value), labelStyle)).WithStyle(summaryCell),
			),
		)
	}
}

func addSignatureLine(m core.Maroto, estimate entities.Estimate) {
	m.AddRows(row.New(10))

	signed := "Signature: ____________________________"
	if len(estimate.CustomerSignature) > 0 {
		signed = "Signed by customer"
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(signed, props.Text{Size: 9, Align: align.Left}),
			),
		),
	)
}
