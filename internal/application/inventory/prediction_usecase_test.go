package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/inventory"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

type catalog []entity.Product

func (c catalog) InventoryProducts() []entity.Product { return c }

func product(id int64, name, category string, sales int64) entity.Product {
	return entity.Product{ID: id, Name: name, Category: category, Sales: decimal.NewFromInt(sales)}
}

func noGrowthJitter() float64 { return 0 }

func TestPredict_HamburguesaUsaRecetaBase(t *testing.T) {
	uc := inventory.NewPredictionUseCase(catalog{
		product(1, "Clásica", entity.CategoryBurgers, 100),
	}, noGrowthJitter)

	out := uc.Predict()

	require.Len(t, out.Predictions, 1)
	p := out.Predictions[0]
	assert.Equal(t, int64(105), p.NextWeekProjection)
	assert.Equal(t, int64(15), p.TomorrowProjection)
	assert.True(t, p.GrowthPct.Equal(decimal.NewFromInt(5)), p.GrowthPct.String())

	require.Len(t, out.Recommendations, 4)
	items := make([]string, 0, 4)
	for _, r := range out.Recommendations {
		items = append(items, r.Item)
		assert.Equal(t, "Reposición semanal", r.Reason)
	}
	assert.Equal(t, []string{"Carne", "Queso (laminas)", "Pan de Hamburguesa", "Lechuga"}, items,
		"ordenado por costo descendente")

	meat := out.Recommendations[0]
	assert.Equal(t, "Comprar 14.7 Kg", meat.Action)
	assert.True(t, meat.Cost.Equal(decimal.RequireFromString("411.6")), meat.Cost.String())
	assert.Equal(t, inventory.PriorityCritical, meat.Priority)

	assert.Equal(t, inventory.PriorityMedium, out.Recommendations[1].Priority)
	assert.Equal(t, "Comprar 105 und", out.Recommendations[2].Action)
	assert.Equal(t, inventory.PriorityLow, out.Recommendations[2].Priority)
	assert.Equal(t, "Comprar 2.1 Kg", out.Recommendations[3].Action)

	assert.True(t, out.TotalInvestment.Equal(decimal.RequireFromString("521.85")), out.TotalInvestment.String())
}

func TestPredict_SoloTopCincoConVentas(t *testing.T) {
	uc := inventory.NewPredictionUseCase(catalog{
		product(1, "A", entity.CategoryDrinks, 10),
		product(2, "B", entity.CategoryDrinks, 60),
		product(3, "C", entity.CategoryDrinks, 0),
		product(4, "D", entity.CategoryDrinks, 30),
		product(5, "E", entity.CategoryDrinks, 50),
		product(6, "F", entity.CategoryDrinks, 40),
		product(7, "G", entity.CategoryDrinks, 20),
	}, noGrowthJitter)

	out := uc.Predict()

	require.Len(t, out.Predictions, 5)
	names := make([]string, 0, 5)
	for _, p := range out.Predictions {
		names = append(names, p.Product)
	}
	assert.Equal(t, []string{"B", "E", "F", "D", "G"}, names)

	require.Len(t, out.Recommendations, 1, "todas las bebidas comparten el mismo insumo")
	vasos := out.Recommendations[0]
	assert.Equal(t, "Vasos descartables", vasos.Item)
	// 63 + 53 + 42 + 32 + 21 vasos a 0.10
	assert.True(t, vasos.Quantity.Equal(decimal.NewFromInt(211)), vasos.Quantity.String())
	assert.True(t, vasos.Cost.Equal(decimal.RequireFromString("21.1")), vasos.Cost.String())
}

func TestPredict_CrecimientoEntreCincoYDiezPorciento(t *testing.T) {
	uc := inventory.NewPredictionUseCase(catalog{
		product(1, "Combo", entity.CategoryCombos, 10),
	}, func() float64 { return 0.9 })

	p := uc.Predict().Predictions[0]
	assert.True(t, p.GrowthPct.LessThan(decimal.NewFromInt(10)))
	assert.True(t, p.GrowthPct.GreaterThanOrEqual(decimal.NewFromInt(5)))
	assert.Equal(t, int64(11), p.NextWeekProjection)
	assert.Equal(t, int64(2), p.TomorrowProjection)
}

func TestPredict_SinVentasNoRecomiendaNada(t *testing.T) {
	uc := inventory.NewPredictionUseCase(catalog{product(1, "X", entity.CategoryBurgers, 0)}, nil)

	out := uc.Predict()
	assert.Empty(t, out.Predictions)
	assert.Empty(t, out.Recommendations)
	assert.True(t, out.TotalInvestment.IsZero())
}
