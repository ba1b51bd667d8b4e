package view

import "villa_site/internal/widget"

// Lookup tables for CMS enum values. Every lookup has a fallback so an
// editor adding a new value never breaks rendering.

var amenityIcons = map[string]string{
	"sun":      "sun",
	"home":     "home",
	"bell":     "bell",
	"spa":      "sparkles",
	"utensils": "utensils",
	"wifi":     "wifi",
	"car":      "car",
	"shield":   "shield",
}

var highlightIcons = map[string]string{
	"palmtree": "palmtree",
	"waves":    "waves",
	"users":    "users",
	"heart":    "heart",
	"pool":     "waves",
	"sun":      "sun",
	"utensils": "utensils",
	"wifi":     "wifi",
	"car":      "car",
	"plane":    "plane",
}

var bedTypeLabels = map[string]string{
	"king":   "King Size Bed",
	"queen":  "Queen Size Bed",
	"twin":   "Twin Beds",
	"single": "Single Bed",
}

var categoryLabels = map[string]string{
	"villa":        "Villa",
	"pool":         "Pool",
	"rooms":        "Rooms",
	"interior":     "Interior",
	"garden":       "Garden",
	"views":        "Views",
	"surroundings": "Surroundings",
}

var tagLabels = map[string]string{
	"adventure":    "Adventure",
	"culture":      "Culture",
	"wildlife":     "Wildlife",
	"water-sports": "Water Sports",
	"family":       "Family",
	"food-drink":   "Food & Drink",
	"history":      "History",
	"photography":  "Photography",
	"relaxation":   "Relaxation",
}

var unitLabels = map[string]string{
	"night":  " / night",
	"person": " / person",
	"day":    " / day",
	"hour":   " / hour",
	"trip":   " / trip",
	"stay":   " / stay",
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// AmenityIcon defaults to "home".
func AmenityIcon(key string) string { return lookup(amenityIcons, key, "home") }

// HighlightIcon defaults to "heart".
func HighlightIcon(key string) string { return lookup(highlightIcons, key, "heart") }

// BedTypeLabel is empty for unknown bed types.
func BedTypeLabel(key string) string { return lookup(bedTypeLabels, key, "") }

func CategoryLabel(key string) string {
	if key == widget.FilterAll {
		return "All"
	}
	return lookup(categoryLabels, key, key)
}

func TagLabel(key string) string { return lookup(tagLabels, key, key) }

// UnitLabel is the price suffix for an extra, e.g. " / night".
func UnitLabel(unit string) string {
	if unit == "" {
		return ""
	}
	return lookup(unitLabels, unit, " / "+unit)
}
