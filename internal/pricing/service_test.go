package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/platform/httpx"
	"github.com/jjyanangomez/Simulador-Costos-Emprendimiento-sub001/internal/products"
)

type mockSource struct {
	products   map[int64]products.Product
	additional []products.AdditionalCost
	priceErr   error
}

func newMockSource() *mockSource {
	return &mockSource{products: make(map[int64]products.Product)}
}

func (m *mockSource) Get(ctx context.Context, businessID, id int64) (products.Product, error) {
	p, ok := m.products[id]
	if !ok || p.BusinessID != businessID {
		return products.Product{}, httpx.ErrNotFound
	}
	return p, nil
}

func (m *mockSource) ListByBusiness(ctx context.Context, businessID int64) ([]products.Product, error) {
	var list []products.Product
	for _, p := range m.products {
		if p.BusinessID == businessID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *mockSource) CountByBusiness(ctx context.Context, businessID int64) (int, error) {
	list, _ := m.ListByBusiness(ctx, businessID)
	return len(list), nil
}

func (m *mockSource) UpdateClientPrice(ctx context.Context, businessID, id int64, price float64) error {
	if m.priceErr != nil {
		return m.priceErr
	}
	p, ok := m.products[id]
	if !ok || p.BusinessID != businessID {
		return httpx.ErrNotFound
	}
	p.ClientPrice = price
	m.products[id] = p
	return nil
}

func (m *mockSource) ListAdditionalCosts(ctx context.Context, businessID int64) ([]products.AdditionalCost, error) {
	return m.additional, nil
}

func TestComputeProductPricing(t *testing.T) {
	source := newMockSource()
	source.products[1] = products.Product{
		ID: 1, BusinessID: 7, Name: "Jugo", Type: products.TypeResale,
		ResaleCost: 4, ClientPrice: 5,
	}
	source.products[2] = products.Product{
		ID: 2, BusinessID: 7, Name: "Empanada", Type: products.TypeRecipe,
		Ingredients: []products.Ingredient{{UnitPrice: 6, PortionsObtained: 12, Portion: 2}},
	}
	source.additional = []products.AdditionalCost{{Value: 2}}

	svc := NewService(source, DefaultMarginPercent)
	record, err := svc.ComputeProductPricing(context.Background(), 7, 1)
	require.NoError(t, err)

	// 4 resale + 2/2 overhead share
	assert.Equal(t, 5.0, record.CostTotal)
	assert.Equal(t, 6.0, record.SuggestedPrice)
	assert.Equal(t, 0.0, record.MarginReal)
	assert.Equal(t, 0.0, record.ProfitPerUnit)
}

func TestComputeProductPricingIdempotent(t *testing.T) {
	source := newMockSource()
	source.products[1] = products.Product{
		ID: 1, BusinessID: 7, Name: "Jugo", Type: products.TypeResale,
		ResaleCost: 3.33, ClientPrice: 4.75,
	}
	svc := NewService(source, DefaultMarginPercent)

	first, err := svc.ComputeProductPricing(context.Background(), 7, 1)
	require.NoError(t, err)
	second, err := svc.ComputeProductPricing(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeProductPricingNotFound(t *testing.T) {
	svc := NewService(newMockSource(), DefaultMarginPercent)
	_, err := svc.ComputeProductPricing(context.Background(), 7, 99)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestUpdateClientPrice(t *testing.T) {
	source := newMockSource()
	source.products[1] = products.Product{
		ID: 1, BusinessID: 7, Name: "Jugo", Type: products.TypeResale, ResaleCost: 4,
	}
	svc := NewService(source, DefaultMarginPercent)

	record, err := svc.UpdateClientPrice(context.Background(), 7, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 8.0, record.ClientPrice)
	assert.Equal(t, 50.0, record.MarginReal)
	assert.Equal(t, 4.0, record.ProfitPerUnit)
}

func TestUpdateClientPriceRejectsNonPositive(t *testing.T) {
	svc := NewService(newMockSource(), DefaultMarginPercent)
	for _, price := range []float64{0, -1} {
		_, err := svc.UpdateClientPrice(context.Background(), 7, 1, price)
		assert.ErrorIs(t, err, httpx.ErrInvalidInput)
	}
}

func TestUpdateClientPricePropagatesNotFound(t *testing.T) {
	source := newMockSource()
	source.priceErr = httpx.ErrNotFound
	svc := NewService(source, DefaultMarginPercent)
	_, err := svc.UpdateClientPrice(context.Background(), 7, 1, 5)
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}
