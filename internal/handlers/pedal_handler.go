package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedal-storefront/internal/browse"
	"pedal-storefront/internal/catalog"
	"pedal-storefront/internal/models"
	"pedal-storefront/internal/money"
)

type PedalHandler struct {
	catalog *catalog.Catalog
}

func NewPedalHandler(cat *catalog.Catalog) *PedalHandler {
	return &PedalHandler{catalog: cat}
}

type pedalResponse struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	PriceCents       int64    `json:"price_cents"`
	Price            string   `json:"price"`
	Status           string   `json:"status"`
	Type             string   `json:"type"`
	ProductLine      string   `json:"product_line,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	ImageURL         string   `json:"image_url"`
	HeroImageURL     string   `json:"hero_image_url,omitempty"`
	DescriptionShort string   `json:"description_short,omitempty"`
	DescriptionLong  string   `json:"description_long,omitempty"`
}

type browseResponse struct {
	Kind           string          `json:"kind"`
	Heading        string          `json:"heading"`
	Notice         string          `json:"notice,omitempty"`
	EmptyMessage   string          `json:"empty_message,omitempty"`
	Pedals         []pedalResponse `json:"pedals"`
	AvailableTypes []string        `json:"available_types"`
}

func toPedalResponse(p models.Pedal) pedalResponse {
	return pedalResponse{
		Slug:             p.Slug,
		Name:             p.Name,
		PriceCents:       p.PriceCents,
		Price:            money.FormatPrice(p.PriceCents),
		Status:           string(p.Status),
		Type:             string(p.Type),
		ProductLine:      string(p.ProductLine),
		Tags:             p.Tags,
		ImageURL:         p.ImageURL,
		HeroImageURL:     p.HeroImageURL,
		DescriptionShort: p.DescriptionShort,
		DescriptionLong:  p.DescriptionLong,
	}
}

func toBrowseResponse(v browse.View) browseResponse {
	resp := browseResponse{
		Kind:           string(v.Kind),
		Heading:        v.Heading,
		Notice:         v.Notice,
		EmptyMessage:   v.EmptyMessage,
		Pedals:         make([]pedalResponse, 0, len(v.Pedals)),
		AvailableTypes: make([]string, 0, len(v.AvailableTypes)),
	}
	for _, p := range v.Pedals {
		resp.Pedals = append(resp.Pedals, toPedalResponse(p))
	}
	for _, t := range v.AvailableTypes {
		resp.AvailableTypes = append(resp.AvailableTypes, string(t))
	}
	return resp
}

// GET /v1/pedals
//
// Query params: productLine scopes the grid to a line, filter narrows it
// to a pedal type. Unrecognized values fall back to the unscoped view
// with a notice; they are never treated as classifications.
func (h *PedalHandler) BrowsePedals(c *gin.Context) {
	state := browse.NewState(h.catalog)
	state.SetProductLineScope(c.Query("productLine"))
	state.SetFilterParam(c.Query("filter"))

	c.JSON(http.StatusOK, toBrowseResponse(state.View()))
}

// GET /v1/pedals/:slug
func (h *PedalHandler) GetPedal(c *gin.Context) {
	pedal, ok := h.catalog.BySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "pedal not found"})
		return
	}
	c.JSON(http.StatusOK, toPedalResponse(pedal))
}
