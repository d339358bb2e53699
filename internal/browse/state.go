// Package browse tracks a storefront visitor's filter selection and
// product-line scope, and derives the visible pedal list from them. The
// state machine is plain data over the catalog's pure queries; nothing
// here touches the catalog records themselves.
package browse

import (
	"fmt"

	"pedal-storefront/internal/catalog"
	"pedal-storefront/internal/models"
)

// scopeKind distinguishes the three product-line scope states.
type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeLine
	scopeUnknownLine
)

// State is the filter-state controller for one browsing context. Zero
// scope and the All filter are the initial state; the derived view is
// recomputed on demand, never stored.
type State struct {
	catalog *catalog.Catalog

	filter        models.FilterID
	unknownFilter string

	scope   scopeKind
	line    models.ProductLine
	rawLine string
}

// NewState returns a controller in the initial state: filter All, no
// product-line scope.
func NewState(c *catalog.Catalog) *State {
	return &State{catalog: c, filter: models.FilterAll}
}

// SetFilter replaces the selected filter. The product-line scope is
// unaffected.
func (s *State) SetFilter(f models.FilterID) {
	s.filter = f
	s.unknownFilter = ""
}

// SetFilterParam applies a raw filter value from outside the core. An
// empty value keeps the current selection; an unrecognized value falls
// back to All and surfaces a notice rather than flowing through as a
// classification.
func (s *State) SetFilterParam(raw string) {
	if raw == "" {
		return
	}
	if f, ok := models.ParseFilterID(raw); ok {
		s.SetFilter(f)
		return
	}
	s.filter = models.FilterAll
	s.unknownFilter = raw
}

// SetProductLineScope applies a raw navigation parameter. Empty means no
// scope; a known line scopes to that line; anything else behaves as no
// scope for data purposes and surfaces a notice.
func (s *State) SetProductLineScope(raw string) {
	switch {
	case raw == "":
		s.scope = scopeNone
		s.line = ""
		s.rawLine = ""
	default:
		if line, ok := models.ParseProductLine(raw); ok {
			s.scope = scopeLine
			s.line = line
			s.rawLine = raw
			return
		}
		s.scope = scopeUnknownLine
		s.line = ""
		s.rawLine = raw
	}
}

// ViewKind is the shape of the derived output.
type ViewKind string

const (
	// ViewGrid is the normal product grid.
	ViewGrid ViewKind = "grid"
	// ViewCustom replaces the grid with the static custom-order content.
	// It is a distinct variant, not a filtered empty list.
	ViewCustom ViewKind = "custom"
	// ViewEmpty means the narrowed set has no pedals. Presentation shows
	// a message and a recovery link instead of a bare empty grid.
	ViewEmpty ViewKind = "empty"
)

// View is the derived browsing output.
type View struct {
	Kind           ViewKind
	Heading        string
	Notice         string
	EmptyMessage   string
	Pedals         []models.Pedal
	AvailableTypes []models.PedalType
}

const emptyCatalogMessage = "No pedals are currently available. Check back soon or browse all pedals."

// View computes the visible pedal list from the current scope and
// filter.
func (s *State) View() View {
	v := View{
		Kind:           ViewGrid,
		Heading:        "All Pedals",
		AvailableTypes: s.catalog.AvailableTypes(),
	}

	var base []models.Pedal
	switch s.scope {
	case scopeNone:
		base = s.catalog.Available()
	case scopeUnknownLine:
		base = s.catalog.Available()
		v.Notice = fmt.Sprintf("We don't have a %q product line yet, so we're showing all pedals instead.", s.rawLine)
	case scopeLine:
		if s.line == models.LineCustom {
			// Custom orders bypass the grid entirely.
			v.Kind = ViewCustom
			v.Heading = "Custom Orders"
			return v
		}
		base = s.catalog.ByProductLine(s.line)
		if s.line == models.LineTarot {
			v.Heading = "Tarot Series"
		} else {
			v.Heading = fmt.Sprintf("%s Line", s.line)
		}
	}

	if s.unknownFilter != "" {
		notice := fmt.Sprintf("We don't have a %q pedal type, so no type filter is applied.", s.unknownFilter)
		if v.Notice != "" {
			v.Notice += " "
		}
		v.Notice += notice
	}

	v.Pedals = base
	if s.filter != models.FilterAll {
		v.Pedals = make([]models.Pedal, 0, len(base))
		for _, p := range base {
			if p.Type == models.PedalType(s.filter) {
				v.Pedals = append(v.Pedals, p)
			}
		}
	}

	if len(v.Pedals) == 0 {
		v.Kind = ViewEmpty
		if s.scope == scopeLine {
			v.EmptyMessage = fmt.Sprintf("No pedals are currently available in the %s line. Check back soon or browse all pedals.", s.line)
		} else {
			v.EmptyMessage = emptyCatalogMessage
		}
	}
	return v
}
