package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const formLabelWidth = 18

// View renders the current view.
func (m *FormModel) View() string {
	switch m.state {
	case FormStateQuitting:
		return ""
	case FormStateReference:
		return m.renderReferenceView()
	case FormStateEditing:
		// Handled below
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Dose Calculator"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	if m.tab == TabNicotine {
		sb.WriteString(m.renderNicotineForm())
		sb.WriteString("\n\n")
		if m.nicotineErr != nil {
			sb.WriteString(RenderError(m.nicotineErr))
		} else if m.nicotineReport != nil {
			sb.WriteString(RenderNicotineReport(*m.nicotineReport))
		}
	} else {
		sb.WriteString(m.renderAlcoholForm())
		sb.WriteString("\n\n")
		if m.drinkErr != nil {
			sb.WriteString(RenderError(m.drinkErr))
		} else if m.drinkReport != nil {
			sb.WriteString(RenderDrinkReport(*m.drinkReport))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(RenderFormHelp())
	return sb.String()
}

func (m *FormModel) renderTabs() string {
	tabs := []struct {
		tab  Tab
		name string
	}{
		{TabAlcohol, "1 Standard Drinks"},
		{TabNicotine, "2 Nicotine"},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.tab == m.tab {
			parts = append(parts, ActiveTabStyle.Render(t.name))
		} else {
			parts = append(parts, InactiveTabStyle.Render(t.name))
		}
	}
	return strings.Join(parts, " ")
}

func (m *FormModel) renderAlcoholForm() string {
	rows := []string{
		m.renderSelector(fieldBeverage, "Beverage", m.beverages[m.beverageIdx].Title()),
		m.renderSelector(fieldUnit, "Volume unit", string(m.units[m.unitIdx])),
		m.renderInput(fieldVolume, fmt.Sprintf("Volume (%s)", m.units[m.unitIdx]), m.drinkInputs[0]),
		m.renderInput(fieldABV, "ABV (0-1)", m.drinkInputs[1]),
		m.renderInput(fieldQuantity, "Number of drinks", m.drinkInputs[2]),
	}
	return strings.Join(rows, "\n")
}

func (m *FormModel) renderNicotineForm() string {
	rows := []string{
		m.renderInput(fieldPercent, "Nicotine (%)", m.nicotineInputs[0]),
		m.renderInput(fieldCapacity, "Capacity (mL)", m.nicotineInputs[1]),
		m.renderInput(fieldDays, "Days to finish", m.nicotineInputs[2]),
	}
	return strings.Join(rows, "\n")
}

func (m *FormModel) renderSelector(field int, label, value string) string {
	prefix, labelText := m.rowPrefix(field, label)
	v := ValueStyle.Render(value)
	if m.focus == field {
		v = HighlightStyle.Render("◀ " + value + " ▶")
	}
	return prefix + labelText + v
}

func (m *FormModel) renderInput(field int, label string, in textinput.Model) string {
	prefix, labelText := m.rowPrefix(field, label)
	return prefix + labelText + in.View()
}

func (m *FormModel) rowPrefix(field int, label string) (string, string) {
	prefix := "  "
	if m.focus == field {
		prefix = "→ "
	}
	return prefix, LabelStyle.Render(fmt.Sprintf("%-*s", formLabelWidth, label))
}

func (m *FormModel) renderReferenceView() string {
	var sb strings.Builder
	sb.WriteString(RenderDrinkReference())
	sb.WriteString("\n\n")
	sb.WriteString(RenderNicotineReference())
	sb.WriteString("\n\n")
	sb.WriteString(RenderHealthNotes())
	sb.WriteString("\n\n")
	sb.WriteString(MutedStyle.Render("r/esc: back  q: quit"))
	return sb.String()
}

// RenderFormHelp renders the key bindings line.
func RenderFormHelp() string {
	return MutedStyle.Render("tab/↑↓: move  ←→: change selection  ctrl+t: switch calculator  r: reference  q/esc: quit")
}
