package finance

import "github.com/shopspring/decimal"

// Scenario escenario what-if con multiplicadores independientes.
type Scenario struct {
	Name                    string
	FixedCostsMultiplier    decimal.Decimal
	VariableCostsMultiplier decimal.Decimal
	RevenueMultiplier       decimal.Decimal
}

// ScenarioResult fórmulas de equilibrio recalculadas para un escenario.
type ScenarioResult struct {
	Scenario Scenario
	Inputs   BreakEvenInputs
	Formulas BreakEvenFormulas
}

// DefaultScenarios conjunto estándar: base, optimista y pesimista.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "base", FixedCostsMultiplier: decimal.NewFromInt(1), VariableCostsMultiplier: decimal.NewFromInt(1), RevenueMultiplier: decimal.NewFromInt(1)},
		{Name: "optimistic", FixedCostsMultiplier: decimal.RequireFromString("0.9"), VariableCostsMultiplier: decimal.RequireFromString("0.95"), RevenueMultiplier: decimal.RequireFromString("1.1")},
		{Name: "pessimistic", FixedCostsMultiplier: decimal.RequireFromString("1.1"), VariableCostsMultiplier: decimal.RequireFromString("1.05"), RevenueMultiplier: decimal.RequireFromString("0.9")},
	}
}

// Apply devuelve las entradas base escaladas por los multiplicadores del escenario.
func (s Scenario) Apply(base BreakEvenInputs) BreakEvenInputs {
	return BreakEvenInputs{
		FixedCosts:           base.FixedCosts.Mul(s.FixedCostsMultiplier),
		VariableCostsPerUnit: base.VariableCostsPerUnit.Mul(s.VariableCostsMultiplier),
		RevenuePerUnit:       base.RevenuePerUnit.Mul(s.RevenueMultiplier),
	}
}

// RunScenarios evalúa cada escenario sobre una copia de las entradas base.
// Es una función pura: mismas entradas, misma salida.
func RunScenarios(base BreakEvenInputs, scenarios []Scenario) []ScenarioResult {
	out := make([]ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		in := s.Apply(base)
		out = append(out, ScenarioResult{Scenario: s, Inputs: in, Formulas: in.Evaluate()})
	}
	return out
}
