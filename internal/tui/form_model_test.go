package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dosecalc/internal/consumption"
)

func newTestForm() *FormModel {
	return NewFormModel(context.Background(), consumption.DefaultDrinkRequest(), consumption.DefaultNicotineInput())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *FormModel, msgs ...tea.Msg) *FormModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(*FormModel)
	}
	return m
}

func TestNewFormModel(t *testing.T) {
	m := newTestForm()

	assert.Equal(t, TabAlcohol, m.ActiveTab())
	assert.Equal(t, FormStateEditing, m.State())

	drink, err := m.DrinkReport()
	require.NoError(t, err)
	require.NotNil(t, drink)
	assert.InDelta(t, 330*0.05/17.05, drink.Result.TotalStandardDrinks, 1e-9)

	nic, err := m.NicotineReport()
	require.NoError(t, err)
	require.NotNil(t, nic)
	assert.InDelta(t, 900.0/7/21, nic.Result.PacksPerDayEquivalent, 1e-9)
}

func TestFormModel_BeverageResetsABV(t *testing.T) {
	m := newTestForm()

	// Focus starts on the beverage selector; beer -> wine.
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})

	drink, err := m.DrinkReport()
	require.NoError(t, err)
	assert.Equal(t, consumption.BeverageWine, drink.Request.Beverage)
	assert.InDelta(t, 0.12, drink.Request.ABV, 1e-9)

	// Wraps backwards past the first entry.
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	drink, err = m.DrinkReport()
	require.NoError(t, err)
	assert.Equal(t, consumption.BeverageCustom, drink.Request.Beverage)
}

func TestFormModel_UnitResetsVolume(t *testing.T) {
	m := newTestForm()

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})

	drink, err := m.DrinkReport()
	require.NoError(t, err)
	assert.Equal(t, consumption.UnitLiters, drink.Request.Unit)
	assert.InDelta(t, 0.33, drink.Request.Volume, 1e-9)
	assert.InDelta(t, 330.0, drink.Result.Input.VolumeMilliliters, 1e-9)
}

func TestFormModel_EditQuantity(t *testing.T) {
	m := newTestForm()

	m = press(m,
		tea.KeyMsg{Type: tea.KeyShiftTab}, // wraps to quantity
		tea.KeyMsg{Type: tea.KeyBackspace},
		keyRunes("3"),
	)

	drink, err := m.DrinkReport()
	require.NoError(t, err)
	assert.Equal(t, 3, drink.Request.Quantity)
	assert.Len(t, drink.Breakdown, 2)
}

func TestFormModel_InvalidInputShowsError(t *testing.T) {
	m := newTestForm()

	m = press(m,
		tea.KeyMsg{Type: tea.KeyShiftTab},
		tea.KeyMsg{Type: tea.KeyBackspace},
		keyRunes("0"),
	)

	drink, err := m.DrinkReport()
	assert.Nil(t, drink)
	assert.ErrorIs(t, err, consumption.ErrInvalidInput)
	assert.Contains(t, m.View(), "Error:")
}

func TestFormModel_LettersIgnoredInInputs(t *testing.T) {
	m := newTestForm()

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, keyRunes("x"))

	drink, err := m.DrinkReport()
	require.NoError(t, err)
	assert.Equal(t, 1, drink.Request.Quantity)
}

func TestFormModel_NicotineTab(t *testing.T) {
	m := newTestForm()

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, TabNicotine, m.ActiveTab())

	// days field: clear "7" and type "0"
	m = press(m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyBackspace},
		keyRunes("0"),
	)
	nic, err := m.NicotineReport()
	assert.Nil(t, nic)
	require.ErrorIs(t, err, consumption.ErrInvalidInput)

	// "0.5" days is accepted but flagged
	m = press(m, keyRunes("."), keyRunes("5"))
	nic, err = m.NicotineReport()
	require.NoError(t, err)
	assert.NotEmpty(t, nic.Warning)
	assert.Contains(t, m.View(), "Warning")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, TabAlcohol, m.ActiveTab())
}

func TestFormModel_ReferenceToggle(t *testing.T) {
	m := newTestForm()

	m = press(m, keyRunes("r"))
	assert.Equal(t, FormStateReference, m.State())
	assert.Contains(t, m.View(), "Standard Drink Reference")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FormStateEditing, m.State())
}

func TestFormModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyRunes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestForm()
			next, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, FormStateQuitting, next.(*FormModel).State())
			assert.Empty(t, next.View())
		})
	}
}

func TestFormModel_NumberKeysSwitchTabsOnSelector(t *testing.T) {
	m := newTestForm()
	m = press(m, keyRunes("2"))
	assert.Equal(t, TabNicotine, m.ActiveTab())

	// On the nicotine tab the focus is a text input, so "1" is typed.
	m = press(m, keyRunes("1"))
	assert.Equal(t, TabNicotine, m.ActiveTab())
}

func TestFormModel_WindowSize(t *testing.T) {
	m := newTestForm()
	m = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
