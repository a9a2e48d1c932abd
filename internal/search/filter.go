// Package search implements the pure filter/sort pipeline over the room
// catalog. Apply never mutates its input and is safe to call on every
// interaction.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/utsavdotdev/basobas/internal/models"
)

// Sort keys accepted by Filter.SortBy.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Default price range bounds.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 5000
)

// Filter is the set of active search/filter/sort criteria. The zero value is
// NOT a usable default; use DefaultFilter.
type Filter struct {
	Search      string   `json:"search"`
	Location    string   `json:"location"`
	Type        string   `json:"type"` // a models.RoomType or "all"
	Bathroom    bool     `json:"bathroom"`
	Kitchen     bool     `json:"kitchen"`
	Wifi        bool     `json:"wifi"`
	WaterSupply bool     `json:"waterSupply"`
	Parking     bool     `json:"parking"`
	Furnished   bool     `json:"furnished"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
	SortBy      string   `json:"sortBy"`
}

// DefaultFilter returns the filter with every dimension at its neutral value.
func DefaultFilter() Filter {
	return Filter{
		Type:     "all",
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		SortBy:   SortNewest,
	}
}

// Apply filters rooms by every active clause of f (logical AND), then orders
// the survivors by f.SortBy. The sort is stable: rooms with equal sort keys
// keep their relative input order. An inverted price range (min > max) yields
// an empty result rather than an error.
func Apply(rooms []models.Room, f Filter) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if matches(room, f) {
			out = append(out, room)
		}
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return parseCreatedAt(out[i].CreatedAt).After(parseCreatedAt(out[j].CreatedAt))
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return parseCreatedAt(out[i].CreatedAt).Before(parseCreatedAt(out[j].CreatedAt))
		})
	}

	return out
}

// matches reports whether room satisfies every active clause of f.
func matches(room models.Room, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(room.Title), q) &&
			!strings.Contains(strings.ToLower(room.Location), q) {
			return false
		}
	}

	if f.Location != "" &&
		!strings.Contains(strings.ToLower(room.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.Type != "all" && string(room.Type) != f.Type {
		return false
	}

	// An enabled facility flag requires the room to have it; a disabled flag
	// imposes no constraint.
	if f.Bathroom && !room.Facilities.Bathroom {
		return false
	}
	if f.Kitchen && !room.Facilities.Kitchen {
		return false
	}
	if f.Wifi && !room.Facilities.Wifi {
		return false
	}
	if f.WaterSupply && !room.Facilities.WaterSupply {
		return false
	}
	if f.Parking && !room.Facilities.Parking {
		return false
	}
	if f.Furnished && !room.Facilities.Furnished {
		return false
	}

	if room.Price < f.PriceMin || room.Price > f.PriceMax {
		return false
	}

	return true
}

// ActiveDimensions reports, per filter dimension, whether it deviates from
// its default. The price range counts as a single dimension.
func ActiveDimensions(f Filter) []bool {
	return []bool{
		f.Search != "",
		f.Location != "",
		f.Type != "all",
		f.Bathroom,
		f.Kitchen,
		f.Wifi,
		f.WaterSupply,
		f.Parking,
		f.Furnished,
		f.PriceMin != DefaultPriceMin || f.PriceMax != DefaultPriceMax,
	}
}

// ActiveCount returns how many filter dimensions are active. It drives the
// filter badge and the "clear all" affordance.
func ActiveCount(f Filter) int {
	n := 0
	for _, active := range ActiveDimensions(f) {
		if active {
			n++
		}
	}
	return n
}

// parseCreatedAt accepts either an RFC3339 timestamp or a bare ISO date.
// Unparseable values sort as the zero time.
func parseCreatedAt(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
