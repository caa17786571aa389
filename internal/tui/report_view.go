package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/dosecalc/internal/consumption"
)

// RenderDetails renders label/value pairs aligned on the label column.
func RenderDetails(details []consumption.Detail) string {
	width := 0
	for _, d := range details {
		width = max(width, lipgloss.Width(d.Label))
	}

	var sb strings.Builder
	for i, d := range details {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(LabelStyle.Render(d.Label + ":" + strings.Repeat(" ", width-lipgloss.Width(d.Label)+1)))
		sb.WriteString(ValueStyle.Render(d.Value))
	}
	return sb.String()
}

// RenderDrinkReport renders the result panel of the alcohol calculator.
func RenderDrinkReport(r consumption.DrinkReport) string {
	var sb strings.Builder

	sb.WriteString(HighlightStyle.Render(r.Headline))
	sb.WriteString("\n\n")
	sb.WriteString(RenderDetails(r.Details))
	sb.WriteString("\n\n")
	sb.WriteString(LabelStyle.Render("Calculation: "))
	sb.WriteString(r.Calculation)

	if len(r.Breakdown) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(HeaderStyle.Render("Breakdown"))
		sb.WriteString("\n")
		sb.WriteString(RenderDetails(r.Breakdown))
	}

	if r.Visual != "" {
		sb.WriteString("\n\n")
		sb.WriteString(r.Visual)
	}

	return PanelStyle.Render(sb.String())
}

// RenderNicotineReport renders the result panel of the nicotine calculator.
func RenderNicotineReport(r consumption.NicotineReport) string {
	var sb strings.Builder

	for i, h := range r.Headlines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(HighlightStyle.Render(h))
	}
	sb.WriteString("\n\n")
	sb.WriteString(RenderDetails(r.Details))
	sb.WriteString("\n\n")
	sb.WriteString(HeaderStyle.Render("Calculation"))
	for _, c := range r.Calculations {
		sb.WriteString("\n  ")
		sb.WriteString(c)
	}
	sb.WriteString("\n\n")
	sb.WriteString(r.Visual)

	if r.Warning != "" {
		sb.WriteString("\n\n")
		sb.WriteString(WarningStyle.Render("Warning: " + r.Warning))
	}

	return PanelStyle.Render(sb.String())
}

// RenderError renders a validation error in place of a result panel.
func RenderError(err error) string {
	return PanelStyle.BorderForeground(ColorError).Render(ErrorStyle.Render("Error: " + err.Error()))
}

// RenderDrinkReference renders the standard drink reference table.
func RenderDrinkReference() string {
	t := newReferenceTable("Beverage", "Typical Volume", "ABV", "Standard Drinks")
	for _, row := range consumption.DrinkReferenceTable() {
		t.Row(row.Beverage, row.TypicalVolume, row.ABVDisplay, row.StandardDrinks)
	}
	return HeaderStyle.Render("Standard Drink Reference") + "\n" + t.Render()
}

// RenderNicotineReference renders the nicotine strength reference table.
func RenderNicotineReference() string {
	t := newReferenceTable("Strength", "mg/mL", "Example (2 mL/day)")
	for _, row := range consumption.NicotineReferenceTable() {
		t.Row(row.PercentDisplay, row.MgPerMl, row.Example)
	}
	return HeaderStyle.Render("Nicotine Strength Reference") + "\n" + t.Render()
}

// RenderHealthNotes renders the information footer.
func RenderHealthNotes() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Health Information"))
	for _, note := range consumption.HealthNotes() {
		sb.WriteString("\n")
		sb.WriteString(MutedStyle.Render("• " + note))
	}
	return sb.String()
}

func newReferenceTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1)
		})
}
