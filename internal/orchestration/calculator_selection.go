package orchestration

import "github.com/agbru/karatsuba/internal/multiply"

// GetCalculatorsToRun resolves an --algo value to calculators. "all"
// selects every registered strategy in sorted order; an unknown name
// yields nil.
func GetCalculatorsToRun(algo string, factory multiply.CalculatorFactory) []multiply.Calculator {
	if algo == "all" {
		keys := factory.List()
		calculators := make([]multiply.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []multiply.Calculator{calc}
	}
	return nil
}
