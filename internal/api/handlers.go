package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rshade/dosecalc/internal/consumption"
)

// DrinksRequest is the body of POST /v1/drinks. Omitted fields use the
// server presets; a beverage without abv uses the beverage default and a
// unit without volume uses the unit preset.
type DrinksRequest struct {
	Beverage string   `json:"beverage,omitempty"`
	Volume   *float64 `json:"volume,omitempty"   validate:"omitempty,gte=0"`
	Unit     string   `json:"unit,omitempty"`
	ABV      *float64 `json:"abv,omitempty"      validate:"omitempty,gte=0,lte=1"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

// NicotineRequest is the body of POST /v1/nicotine.
type NicotineRequest struct {
	Percent    *float64 `json:"nicotine_percent,omitempty" validate:"omitempty,gte=0,lte=50"`
	CapacityMl *float64 `json:"capacity_ml,omitempty"      validate:"omitempty,gte=0"`
	Days       *float64 `json:"days_to_finish,omitempty"   validate:"omitempty,gt=0"`
}

// BeverageInfo is one entry of GET /v1/beverages.
type BeverageInfo struct {
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	DefaultABV float64 `json:"default_abv"`
}

// UnitInfo is one volume unit with its preset volume.
type UnitInfo struct {
	Unit          string  `json:"unit"`
	DefaultVolume float64 `json:"default_volume"`
}

// Catalog is the body of GET /v1/beverages.
type Catalog struct {
	Beverages []BeverageInfo `json:"beverages"`
	Units     []UnitInfo     `json:"units"`
}

// NicotineReferenceBody is the body of GET /v1/reference/nicotine.
type NicotineReferenceBody struct {
	DailyMl float64                         `json:"daily_ml"`
	Rows    []consumption.NicotineReference `json:"rows"`
	Notes   []string                        `json:"notes"`
}

// DrinkReferenceBody is the body of GET /v1/reference/drinks.
type DrinkReferenceBody struct {
	Rows  []consumption.DrinkReference `json:"rows"`
	Notes []string                     `json:"notes"`
}

// Handler serves the calculator endpoints.
type Handler struct {
	drinkPreset    consumption.DrinkRequest
	nicotinePreset consumption.NicotineInput
}

// NewHandler creates a Handler that fills omitted request fields from the presets.
func NewHandler(drinkPreset consumption.DrinkRequest, nicotinePreset consumption.NicotineInput) *Handler {
	return &Handler{drinkPreset: drinkPreset, nicotinePreset: nicotinePreset}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Beverages lists beverage categories and volume units with their defaults.
func (h *Handler) Beverages(w http.ResponseWriter, r *http.Request) {
	var catalog Catalog
	for _, b := range consumption.Beverages() {
		catalog.Beverages = append(catalog.Beverages, BeverageInfo{
			Name:       string(b),
			Title:      b.Title(),
			DefaultABV: b.DefaultABV(),
		})
	}
	for _, u := range consumption.VolumeUnits() {
		catalog.Units = append(catalog.Units, UnitInfo{Unit: string(u), DefaultVolume: u.DefaultVolume()})
	}
	JSONResponse(w, r, http.StatusOK, catalog)
}

// Drinks computes standard drinks.
func (h *Handler) Drinks(w http.ResponseWriter, r *http.Request) {
	var body DrinksRequest
	if err := ParseJSONBody(w, r, &body); err != nil {
		ErrorResponse(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := validateRequest(body); err != nil {
		writeCalcError(w, r, err)
		return
	}

	req, err := consumption.DrinkOverrides{
		Beverage: body.Beverage,
		Volume:   body.Volume,
		Unit:     body.Unit,
		ABV:      body.ABV,
		Quantity: body.Quantity,
	}.Apply(h.drinkPreset)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}

	report, err := consumption.EstimateDrinks(req)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Debug().
		Str("beverage", string(req.Beverage)).
		Float64("total_standard_drinks", report.Result.TotalStandardDrinks).
		Msg("drinks computed")
	JSONResponse(w, r, http.StatusOK, report)
}

// Nicotine computes nicotine consumption.
func (h *Handler) Nicotine(w http.ResponseWriter, r *http.Request) {
	var body NicotineRequest
	if err := ParseJSONBody(w, r, &body); err != nil {
		ErrorResponse(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := validateRequest(body); err != nil {
		writeCalcError(w, r, err)
		return
	}

	in := consumption.NicotineOverrides{
		Percent:    body.Percent,
		CapacityMl: body.CapacityMl,
		Days:       body.Days,
	}.Apply(h.nicotinePreset)

	report, err := consumption.EstimateNicotine(in)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}

	log := zerolog.Ctx(r.Context())
	if report.Warning != "" {
		log.Warn().Float64("days_to_finish", in.DaysToFinish).Msg(report.Warning)
	}
	log.Debug().Float64("packs_per_day", report.Result.PacksPerDayEquivalent).Msg("nicotine computed")
	JSONResponse(w, r, http.StatusOK, report)
}

// DrinkReference returns the standard drink reference table.
func (h *Handler) DrinkReference(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, r, http.StatusOK, DrinkReferenceBody{
		Rows:  consumption.DrinkReferenceTable(),
		Notes: consumption.HealthNotes(),
	})
}

// NicotineReference returns the nicotine strength reference table.
func (h *Handler) NicotineReference(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, r, http.StatusOK, NicotineReferenceBody{
		DailyMl: consumption.ReferenceDailyMl,
		Rows:    consumption.NicotineReferenceTable(),
		Notes:   consumption.HealthNotes(),
	})
}

// writeCalcError maps invalid input to 400 and anything else to 500.
func writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, consumption.ErrInvalidInput) {
		ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("calculation failed")
	ErrorResponse(w, r, http.StatusInternalServerError, "internal error")
}
