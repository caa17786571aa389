package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/dosecalc/internal/consumption"
	"github.com/rshade/dosecalc/internal/logging"
)

// Tab selects the calculator shown by the form.
type Tab int

const (
	// TabAlcohol is the standard drinks calculator.
	TabAlcohol Tab = iota
	// TabNicotine is the nicotine consumption calculator.
	TabNicotine
)

// FormState represents the current state of the form.
type FormState int

const (
	// FormStateEditing indicates the user is editing inputs.
	FormStateEditing FormState = iota
	// FormStateReference shows the reference tables.
	FormStateReference
	// FormStateQuitting indicates the application is exiting.
	FormStateQuitting
)

// Alcohol tab fields, in focus order.
const (
	fieldBeverage = iota
	fieldUnit
	fieldVolume
	fieldABV
	fieldQuantity
	alcoholFieldCount
)

// Nicotine tab fields, in focus order.
const (
	fieldPercent = iota
	fieldCapacity
	fieldDays
	nicotineFieldCount
)

const (
	numberInputCharLimit = 12
	numberInputWidth     = 14
)

// FormModel is the Bubble Tea model for the two-tab calculator form. Results
// are recomputed on every edit.
type FormModel struct {
	ctx   context.Context
	tab   Tab
	state FormState
	focus int

	beverages   []consumption.Beverage
	units       []consumption.VolumeUnit
	beverageIdx int
	unitIdx     int

	// volume, abv, quantity
	drinkInputs []textinput.Model
	// percent, capacity, days
	nicotineInputs []textinput.Model

	drinkReport    *consumption.DrinkReport
	drinkErr       error
	nicotineReport *consumption.NicotineReport
	nicotineErr    error

	width  int
	height int
}

// NewFormModel creates a form pre-filled with the given presets.
func NewFormModel(
	ctx context.Context,
	drinkPreset consumption.DrinkRequest,
	nicotinePreset consumption.NicotineInput,
) *FormModel {
	m := &FormModel{
		ctx:       ctx,
		state:     FormStateEditing,
		beverages: consumption.Beverages(),
		units:     consumption.VolumeUnits(),
	}

	m.beverageIdx = indexOf(m.beverages, drinkPreset.Beverage)
	m.unitIdx = indexOf(m.units, drinkPreset.Unit)

	m.drinkInputs = []textinput.Model{
		newNumberInput("volume", drinkPreset.Volume),
		newNumberInput("abv", drinkPreset.ABV),
		newNumberInput("quantity", float64(drinkPreset.Quantity)),
	}
	m.nicotineInputs = []textinput.Model{
		newNumberInput("percent", nicotinePreset.NicotinePercent),
		newNumberInput("capacity", nicotinePreset.CapacityMilliliters),
		newNumberInput("days", nicotinePreset.DaysToFinish),
	}

	m.recalculate()
	return m
}

func newNumberInput(placeholder string, v float64) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = numberInputCharLimit
	ti.Width = numberInputWidth
	ti.Prompt = ""
	ti.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
	return ti
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

// Init initializes the model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if m.state == FormStateReference && msg.Type == tea.KeyEsc {
			m.state = FormStateEditing
			return m, nil
		}
		m.state = FormStateQuitting
		return m, tea.Quit

	case tea.KeyCtrlT:
		m.switchTab()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		if m.cycleSelector(msg.Type == tea.KeyRight) {
			return m, nil
		}

	case tea.KeyRunes:
		if cmd, handled := m.handleCommandRune(msg); handled {
			return m, cmd
		}
	}

	if m.state != FormStateEditing {
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

// handleCommandRune handles letter shortcuts; digits fall through to the inputs.
func (m *FormModel) handleCommandRune(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch string(msg.Runes) {
	case "q":
		m.state = FormStateQuitting
		return tea.Quit, true
	case "r":
		if m.state == FormStateReference {
			m.state = FormStateEditing
		} else {
			m.state = FormStateReference
		}
		return nil, true
	case "1":
		if m.focusedInput() == nil {
			m.setTab(TabAlcohol)
			return nil, true
		}
	case "2":
		if m.focusedInput() == nil {
			m.setTab(TabNicotine)
			return nil, true
		}
	}

	for _, r := range msg.Runes {
		if !strings.ContainsRune("0123456789.-", r) {
			return nil, true
		}
	}
	return nil, false
}

func (m *FormModel) switchTab() {
	if m.tab == TabAlcohol {
		m.setTab(TabNicotine)
	} else {
		m.setTab(TabAlcohol)
	}
}

func (m *FormModel) setTab(tab Tab) {
	m.tab = tab
	m.focus = 0
	m.syncFocus()
}

func (m *FormModel) fieldCount() int {
	if m.tab == TabNicotine {
		return nicotineFieldCount
	}
	return alcoholFieldCount
}

func (m *FormModel) moveFocus(delta int) {
	n := m.fieldCount()
	m.focus = (m.focus + delta + n) % n
	m.syncFocus()
}

// syncFocus focuses the text input under the cursor and blurs the rest.
func (m *FormModel) syncFocus() {
	for i := range m.drinkInputs {
		m.drinkInputs[i].Blur()
	}
	for i := range m.nicotineInputs {
		m.nicotineInputs[i].Blur()
	}
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
}

// focusedInput returns the text input under the cursor, or nil on a selector.
func (m *FormModel) focusedInput() *textinput.Model {
	if m.tab == TabNicotine {
		return &m.nicotineInputs[m.focus]
	}
	if m.focus < fieldVolume {
		return nil
	}
	return &m.drinkInputs[m.focus-fieldVolume]
}

// cycleSelector moves the beverage or unit selection. Choosing a beverage
// resets ABV to its default; choosing a unit resets the volume preset.
func (m *FormModel) cycleSelector(forward bool) bool {
	if m.tab != TabAlcohol || m.state != FormStateEditing {
		return false
	}

	step := -1
	if forward {
		step = 1
	}

	switch m.focus {
	case fieldBeverage:
		m.beverageIdx = (m.beverageIdx + step + len(m.beverages)) % len(m.beverages)
		abv := m.beverages[m.beverageIdx].DefaultABV()
		m.drinkInputs[fieldABV-fieldVolume].SetValue(strconv.FormatFloat(abv, 'f', -1, 64))
	case fieldUnit:
		m.unitIdx = (m.unitIdx + step + len(m.units)) % len(m.units)
		vol := m.units[m.unitIdx].DefaultVolume()
		m.drinkInputs[0].SetValue(strconv.FormatFloat(vol, 'f', -1, 64))
	default:
		return false
	}

	m.recalculate()
	return true
}

func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := m.focusedInput()
	if in == nil {
		return nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.recalculate()
	return cmd
}

// recalculate recomputes both calculators from the current inputs.
func (m *FormModel) recalculate() {
	log := logging.FromContext(m.ctx)

	req, err := m.drinkRequest()
	if err == nil {
		var report consumption.DrinkReport
		report, err = consumption.EstimateDrinks(req)
		m.drinkReport = &report
	}
	if err != nil {
		m.drinkReport = nil
		log.Debug().Err(err).Msg("drink inputs invalid")
	}
	m.drinkErr = err

	in, err := m.nicotineInput()
	if err == nil {
		var report consumption.NicotineReport
		report, err = consumption.EstimateNicotine(in)
		m.nicotineReport = &report
	}
	if err != nil {
		m.nicotineReport = nil
		log.Debug().Err(err).Msg("nicotine inputs invalid")
	}
	m.nicotineErr = err
}

func (m *FormModel) drinkRequest() (consumption.DrinkRequest, error) {
	volume, err := parseNumber("volume", m.drinkInputs[0].Value())
	if err != nil {
		return consumption.DrinkRequest{}, err
	}
	abv, err := parseNumber("ABV", m.drinkInputs[1].Value())
	if err != nil {
		return consumption.DrinkRequest{}, err
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(m.drinkInputs[2].Value()))
	if err != nil {
		return consumption.DrinkRequest{}, fmt.Errorf("%w: quantity %q is not a whole number",
			consumption.ErrInvalidInput, m.drinkInputs[2].Value())
	}

	return consumption.DrinkRequest{
		Beverage: m.beverages[m.beverageIdx],
		Volume:   volume,
		Unit:     m.units[m.unitIdx],
		ABV:      abv,
		Quantity: quantity,
	}, nil
}

func (m *FormModel) nicotineInput() (consumption.NicotineInput, error) {
	var values [nicotineFieldCount]float64
	names := [nicotineFieldCount]string{"nicotine %", "capacity", "days"}
	for i := range values {
		v, err := parseNumber(names[i], m.nicotineInputs[i].Value())
		if err != nil {
			return consumption.NicotineInput{}, err
		}
		values[i] = v
	}

	return consumption.NicotineInput{
		NicotinePercent:     values[fieldPercent],
		CapacityMilliliters: values[fieldCapacity],
		DaysToFinish:        values[fieldDays],
	}, nil
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", consumption.ErrInvalidInput, name, s)
	}
	return v, nil
}

// ActiveTab returns the selected calculator.
func (m *FormModel) ActiveTab() Tab {
	return m.tab
}

// State returns the current form state.
func (m *FormModel) State() FormState {
	return m.state
}

// DrinkReport returns the last valid alcohol result, or nil with the error.
func (m *FormModel) DrinkReport() (*consumption.DrinkReport, error) {
	return m.drinkReport, m.drinkErr
}

// NicotineReport returns the last valid nicotine result, or nil with the error.
func (m *FormModel) NicotineReport() (*consumption.NicotineReport, error) {
	return m.nicotineReport, m.nicotineErr
}
