// Package inventory proyecta la demanda de la semana siguiente a partir del
// contador de ventas del catálogo y la traduce en compras de insumos.
package inventory

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

const (
	topProjected = 5 // productos que entran en la proyección
	weeklyReason = "Reposición semanal"
)

// Prioridades de compra.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// ── Recetas y precios ─────────────────────────────────────────────────────────

type ingredient struct {
	name string
	qty  int64 // por unidad vendida
}

var burgerRecipe = []ingredient{
	{"Pan de Hamburguesa", 1},
	{"Carne (g)", 140},
	{"Queso (laminas)", 1},
	{"Lechuga (g)", 20},
}

// recipes por categoría del catálogo; lo que no figura usa burgerRecipe.
var recipes = map[string][]ingredient{
	entity.CategoryCombos: {
		{"Pan de Hamburguesa", 1},
		{"Carne (g)", 140},
		{"Papas (g)", 200},
		{"Gaseosa (ml)", 500},
	},
	entity.CategoryDrinks: {{"Vasos descartables", 1}},
	entity.CategorySides:  {{"Empaques", 1}, {"Salsas (ml)", 30}},
}

// unitPrices costo de mercado por unidad de receta (soles por unidad, gramo o ml).
var unitPrices = map[string]decimal.Decimal{
	"Pan de Hamburguesa": decimal.RequireFromString("0.35"),
	"Carne (g)":          decimal.RequireFromString("0.028"),
	"Queso (laminas)":    decimal.RequireFromString("0.60"),
	"Lechuga (g)":        decimal.RequireFromString("0.005"),
	"Papas (g)":          decimal.RequireFromString("0.006"),
	"Gaseosa (ml)":       decimal.RequireFromString("0.004"),
	"Vasos descartables": decimal.RequireFromString("0.10"),
	"Empaques":           decimal.RequireFromString("0.50"),
	"Salsas (ml)":        decimal.RequireFromString("0.015"),
	"Servilletas":        decimal.RequireFromString("0.02"),
}

var defaultUnitPrice = decimal.RequireFromString("0.10")

var (
	thousand       = decimal.NewFromInt(1000)
	criticalMeatAt = decimal.NewFromInt(100)
	highCostAt     = decimal.NewFromInt(200)
	mediumCostAt   = decimal.NewFromInt(50)
)

// ProductSource catálogo con contador de ventas. Lo implementa store.CollectionStore.
type ProductSource interface {
	InventoryProducts() []entity.Product
}

// PredictionUseCase motor de proyección de demanda.
type PredictionUseCase struct {
	products ProductSource
	random   func() float64
	printer  *message.Printer
}

// NewPredictionUseCase construye el caso de uso. random debe devolver valores en
// [0, 1); nil usa math/rand.
func NewPredictionUseCase(products ProductSource, random func() float64) *PredictionUseCase {
	if random == nil {
		random = rand.Float64
	}
	return &PredictionUseCase{
		products: products,
		random:   random,
		printer:  message.NewPrinter(language.MustParse("es-PE")),
	}
}

// Predict proyecta los productos más vendidos y calcula la compra de insumos.
func (uc *PredictionUseCase) Predict() dto.PredictionReportDTO {
	preds := uc.project(uc.products.InventoryProducts())

	// ── Insumos necesarios (en orden de aparición) ────────────────────────────
	var order []string
	needed := make(map[string]int64)
	for _, p := range preds {
		recipe, ok := recipes[p.Category]
		if !ok {
			recipe = burgerRecipe
		}
		for _, ing := range recipe {
			if _, seen := needed[ing.name]; !seen {
				order = append(order, ing.name)
			}
			needed[ing.name] += ing.qty * p.NextWeekProjection
		}
	}

	recs := make([]dto.PurchaseRecommendationDTO, 0, len(order))
	total := decimal.Zero
	for _, name := range order {
		r := uc.recommend(name, needed[name])
		total = total.Add(r.Cost)
		recs = append(recs, r)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Cost.GreaterThan(recs[j].Cost)
	})

	return dto.PredictionReportDTO{
		Predictions:     preds,
		Recommendations: recs,
		TotalInvestment: total,
	}
}

// project toma los productos con ventas, de mayor a menor, y aplica un
// crecimiento conservador entre 5 % y 10 %.
func (uc *PredictionUseCase) project(products []entity.Product) []dto.ProjectionDTO {
	active := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Sales.IsPositive() {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Sales.GreaterThan(active[j].Sales)
	})
	if len(active) > topProjected {
		active = active[:topProjected]
	}

	preds := make([]dto.ProjectionDTO, 0, len(active))
	for _, p := range active {
		growth := 1.05 + uc.random()*0.05
		nextWeek := p.Sales.Mul(decimal.NewFromFloat(growth)).Ceil().IntPart()
		preds = append(preds, dto.ProjectionDTO{
			ProductID:          p.ID,
			Product:            p.Name,
			Category:           p.Category,
			Sales:              p.Sales,
			NextWeekProjection: nextWeek,
			TomorrowProjection: (nextWeek + 6) / 7,
			GrowthPct:          decimal.NewFromFloat((growth - 1) * 100).Round(1),
		})
	}
	return preds
}

func (uc *PredictionUseCase) recommend(name string, qty int64) dto.PurchaseRecommendationDTO {
	price, ok := unitPrices[name]
	if !ok {
		price = defaultUnitPrice
	}
	amount := decimal.NewFromInt(qty)
	cost := amount.Mul(price).Round(2)

	var display string
	switch {
	case strings.Contains(name, "(g)"):
		display = amount.Div(thousand).StringFixed(1) + " Kg"
	case strings.Contains(name, "(ml)"):
		display = amount.Div(thousand).StringFixed(1) + " Lt"
	default:
		display = uc.printer.Sprintf("%d und", qty)
	}

	return dto.PurchaseRecommendationDTO{
		Item:     cleanName(name),
		Action:   "Comprar " + display,
		Quantity: amount,
		Priority: priorityFor(name, cost),
		Reason:   weeklyReason,
		Cost:     cost,
	}
}

func priorityFor(name string, cost decimal.Decimal) string {
	switch {
	case strings.Contains(name, "Carne") && cost.GreaterThan(criticalMeatAt):
		return PriorityCritical
	case cost.GreaterThan(highCostAt):
		return PriorityHigh
	case cost.GreaterThan(mediumCostAt):
		return PriorityMedium
	}
	return PriorityLow
}

// cleanName quita la unidad de receta del nombre: "Carne (g)" → "Carne".
func cleanName(name string) string {
	name = strings.Replace(name, "(g)", "", 1)
	name = strings.Replace(name, "(ml)", "", 1)
	return strings.TrimSpace(name)
}
