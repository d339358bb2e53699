package models

// ProductStatus is the availability state of a pedal.
type ProductStatus string

const (
	StatusAvailable  ProductStatus = "available"
	StatusSold       ProductStatus = "sold"
	StatusComingSoon ProductStatus = "coming_soon"
)

var productStatuses = []ProductStatus{
	StatusAvailable,
	StatusSold,
	StatusComingSoon,
}

// ParseProductStatus maps a raw string to a known status. Unknown values
// are rejected, not passed through.
func ParseProductStatus(raw string) (ProductStatus, bool) {
	for _, s := range productStatuses {
		if raw == string(s) {
			return s, true
		}
	}
	return "", false
}

// PedalType is the effect category of a pedal.
type PedalType string

const (
	TypeOverdrive  PedalType = "Overdrive"
	TypeDistortion PedalType = "Distortion"
	TypeFuzz       PedalType = "Fuzz"
	TypeDelay      PedalType = "Delay"
	TypeModulation PedalType = "Modulation"
	TypeBoost      PedalType = "Boost"
	TypePreamp     PedalType = "Preamp"
	TypeUtility    PedalType = "Utility"
	TypeBuffers    PedalType = "Buffers"
	TypeAmpSim     PedalType = "Amp Sim"
)

// PedalTypes lists every effect category, in display order.
var PedalTypes = []PedalType{
	TypeOverdrive,
	TypeDistortion,
	TypeFuzz,
	TypeDelay,
	TypeModulation,
	TypeBoost,
	TypePreamp,
	TypeUtility,
	TypeBuffers,
	TypeAmpSim,
}

// ParsePedalType maps a raw string to a known effect category. Unknown
// values are rejected, not passed through.
func ParsePedalType(raw string) (PedalType, bool) {
	for _, t := range PedalTypes {
		if raw == string(t) {
			return t, true
		}
	}
	return "", false
}

// ProductLine is a named series grouping (Tarot, Limited, ...). The empty
// value means the pedal belongs to no line.
type ProductLine string

const (
	LineTarot        ProductLine = "Tarot"
	LineLimited      ProductLine = "Limited"
	LineCustom       ProductLine = "Custom"
	LineHandwired    ProductLine = "Handwired"
	LinePointToPoint ProductLine = "Point to Point"
)

// ProductLines lists every known line.
var ProductLines = []ProductLine{
	LineTarot,
	LineLimited,
	LineCustom,
	LineHandwired,
	LinePointToPoint,
}

// ParseProductLine maps a raw string to a known product line. Unknown
// values are rejected, not passed through.
func ParseProductLine(raw string) (ProductLine, bool) {
	for _, l := range ProductLines {
		if raw == string(l) {
			return l, true
		}
	}
	return "", false
}

// FilterID is a pedal-grid filter selection: the All sentinel or a
// specific pedal type.
type FilterID string

// FilterAll is the canonical "no filter" sentinel.
const FilterAll FilterID = "All"

// ParseFilterID maps a raw string to the All sentinel or a known pedal
// type. Unknown values are rejected, not passed through.
func ParseFilterID(raw string) (FilterID, bool) {
	if raw == string(FilterAll) {
		return FilterAll, true
	}
	if t, ok := ParsePedalType(raw); ok {
		return FilterID(t), true
	}
	return "", false
}

// Pedal is one sellable item in the catalog. Records are read-only values
// shared by all queries; nothing mutates them after startup.
type Pedal struct {
	Slug             string        `json:"slug" yaml:"slug"`
	Name             string        `json:"name" yaml:"name"`
	PriceCents       int64         `json:"price_cents" yaml:"price_cents"`
	Status           ProductStatus `json:"status" yaml:"status"`
	Type             PedalType     `json:"type" yaml:"type"`
	ProductLine      ProductLine   `json:"product_line,omitempty" yaml:"product_line,omitempty"`
	Tags             []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	ImageURL         string        `json:"image_url" yaml:"image_url"`
	HeroImageURL     string        `json:"hero_image_url,omitempty" yaml:"hero_image_url,omitempty"`
	DescriptionShort string        `json:"description_short,omitempty" yaml:"description_short,omitempty"`
	DescriptionLong  string        `json:"description_long,omitempty" yaml:"description_long,omitempty"`
	// StripePriceID is the opaque payment-catalog reference. Never exposed
	// over the API.
	StripePriceID string `json:"-" yaml:"stripe_price_id,omitempty"`
}

// CheckoutEligible reports whether the pedal can be purchased right now:
// it must be available and carry a payment-catalog price reference.
func (p Pedal) CheckoutEligible() bool {
	return p.Status == StatusAvailable && p.StripePriceID != ""
}

// HasTag reports whether the pedal carries the given free-text tag.
func (p Pedal) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
