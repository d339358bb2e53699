package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedal-storefront/internal/catalog"
	"pedal-storefront/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Pedal{
		{Slug: "tree-fiddy", Name: "Tree Fiddy", Status: models.StatusAvailable, Type: models.TypeOverdrive, StripePriceID: "price_tf"},
		{Slug: "son-of-a-b", Name: "Son of a B!", Status: models.StatusAvailable, Type: models.TypeFuzz, ProductLine: models.LineTarot, StripePriceID: "price_sob"},
		{Slug: "super-dolt", Name: "Super Dolt", Status: models.StatusAvailable, Type: models.TypeOverdrive, ProductLine: models.LineTarot, StripePriceID: "price_sd"},
		{Slug: "night-vicar", Name: "Night Vicar", Status: models.StatusSold, Type: models.TypePreamp, ProductLine: models.LineLimited},
	})
	require.NoError(t, err)
	return c
}

func slugs(pedals []models.Pedal) []string {
	out := make([]string, 0, len(pedals))
	for _, p := range pedals {
		out = append(out, p.Slug)
	}
	return out
}

func TestInitialState(t *testing.T) {
	s := NewState(testCatalog(t))
	v := s.View()

	assert.Equal(t, ViewGrid, v.Kind)
	assert.Equal(t, "All Pedals", v.Heading)
	assert.Empty(t, v.Notice)
	assert.Equal(t, []string{"tree-fiddy", "son-of-a-b", "super-dolt"}, slugs(v.Pedals))
}

func TestSetFilterNarrowsGrid(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetFilter(models.FilterID(models.TypeOverdrive))
	v := s.View()

	assert.Equal(t, []string{"tree-fiddy", "super-dolt"}, slugs(v.Pedals))

	// Back to All restores the full grid.
	s.SetFilter(models.FilterAll)
	assert.Len(t, s.View().Pedals, 3)
}

func TestProductLineScope(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Tarot")
	v := s.View()

	assert.Equal(t, ViewGrid, v.Kind)
	assert.Equal(t, "Tarot Series", v.Heading)
	assert.Equal(t, []string{"son-of-a-b", "super-dolt"}, slugs(v.Pedals))

	// Filter applies on top of the scope without touching it.
	s.SetFilter(models.FilterID(models.TypeFuzz))
	v = s.View()
	assert.Equal(t, "Tarot Series", v.Heading)
	assert.Equal(t, []string{"son-of-a-b"}, slugs(v.Pedals))
}

func TestLineHeading(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Limited")
	assert.Equal(t, "Limited Line", s.View().Heading)
}

func TestUnknownLineFallsBackWithNotice(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Signature")
	v := s.View()

	assert.Equal(t, ViewGrid, v.Kind)
	assert.Contains(t, v.Notice, `"Signature"`)
	// Base set equals the available pedals, as if no scope were set.
	assert.Equal(t, []string{"tree-fiddy", "son-of-a-b", "super-dolt"}, slugs(v.Pedals))
}

func TestCustomLineBypassesGrid(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Custom")
	v := s.View()

	assert.Equal(t, ViewCustom, v.Kind)
	assert.Equal(t, "Custom Orders", v.Heading)
	assert.Empty(t, v.Pedals)
	assert.Empty(t, v.EmptyMessage, "Custom is a distinct variant, not an empty grid")
}

func TestEmptyLineExposesEmptySignal(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Handwired")
	v := s.View()

	assert.Equal(t, ViewEmpty, v.Kind)
	assert.Contains(t, v.EmptyMessage, "Handwired")
}

func TestEmptyAfterFilter(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Tarot")
	s.SetFilter(models.FilterID(models.TypeDelay))
	v := s.View()

	assert.Equal(t, ViewEmpty, v.Kind)
	assert.NotEmpty(t, v.EmptyMessage)
}

func TestSetFilterParam(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		s := NewState(testCatalog(t))
		s.SetFilterParam("Fuzz")
		assert.Equal(t, []string{"son-of-a-b"}, slugs(s.View().Pedals))
	})

	t.Run("unknown value falls back to All with notice", func(t *testing.T) {
		s := NewState(testCatalog(t))
		s.SetFilterParam("Wah")
		v := s.View()
		assert.Len(t, v.Pedals, 3)
		assert.Contains(t, v.Notice, `"Wah"`)
	})

	t.Run("empty value keeps current selection", func(t *testing.T) {
		s := NewState(testCatalog(t))
		s.SetFilter(models.FilterID(models.TypeOverdrive))
		s.SetFilterParam("")
		assert.Len(t, s.View().Pedals, 2)
	})
}

func TestAvailableTypesAlwaysPopulated(t *testing.T) {
	s := NewState(testCatalog(t))
	s.SetProductLineScope("Handwired")
	v := s.View()

	// The filter bar is driven by site-wide availability even when the
	// scoped grid is empty.
	assert.Equal(t, []models.PedalType{models.TypeOverdrive, models.TypeFuzz}, v.AvailableTypes)
}
