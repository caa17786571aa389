package consumption

import (
	"fmt"
	"math"
	"strings"
)

// Icons used by the visual summaries.
const (
	IconDrink       = "🥃"
	IconPartialSip  = "🥄"
	IconPack        = "📦"
	IconPartialPack = "📋"
)

// DrinkIcons renders total standard drinks as glasses: one per whole drink
// and a spoon for a remainder of at least half a drink. Above MaxIcons
// the count is written out instead. Zero or less yields "".
func DrinkIcons(total float64) string {
	if total <= 0 {
		return ""
	}
	return iconRow(total, IconDrink, IconPartialSip, "drinks")
}

// PackIcons renders a pack-per-day figure as boxes: one per whole pack and a
// half-pack icon for a remainder of at least half. Below one pack it returns
// a single half-pack icon with a note.
func PackIcons(ppd float64) string {
	if ppd < 1 {
		return IconPartialPack + " (less than 1 pack equivalent)"
	}
	return iconRow(ppd, IconPack, IconPartialPack, "packs")
}

// iconRow draws v as repeated full icons plus an optional partial icon.
// Counts above MaxIcons are compared as floats so that any magnitude takes
// the compact form.
func iconRow(v float64, full, partial, noun string) string {
	whole, frac := math.Modf(v)
	showPartial := frac >= PartialIconThreshold

	if whole > MaxIcons {
		s := fmt.Sprintf("%s × %s %s", full, FormatFloat(whole, 0), noun)
		if showPartial {
			s += " + " + partial
		}
		return s
	}

	n := int(whole)
	icons := make([]string, 0, n+1)
	for range n {
		icons = append(icons, full)
	}
	if showPartial {
		icons = append(icons, partial)
	}
	return strings.Join(icons, " ")
}
