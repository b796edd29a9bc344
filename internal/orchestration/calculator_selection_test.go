package orchestration

import (
	"testing"

	"github.com/agbru/karatsuba/internal/multiply"
)

// TestGetCalculatorsToRun tests the GetCalculatorsToRun function.
func TestGetCalculatorsToRun(t *testing.T) {
	t.Parallel()
	factory := multiply.GlobalFactory()

	t.Run("Single algorithm returns one calculator", func(t *testing.T) {
		t.Parallel()
		calculators := GetCalculatorsToRun("karatsuba", factory)

		if len(calculators) != 1 {
			t.Fatalf("Expected 1 calculator, got %d", len(calculators))
		}
		if calculators[0].Name() != "karatsuba" {
			t.Errorf("Expected karatsuba, got %q", calculators[0].Name())
		}
	})

	t.Run("All algorithms returns every registered calculator", func(t *testing.T) {
		t.Parallel()
		calculators := GetCalculatorsToRun("all", factory)

		if len(calculators) != len(factory.List()) {
			t.Errorf("Expected %d calculators for 'all', got %d", len(factory.List()), len(calculators))
		}
		for i := 1; i < len(calculators); i++ {
			if calculators[i-1].Name() > calculators[i].Name() {
				t.Errorf("calculators not sorted: %q before %q", calculators[i-1].Name(), calculators[i].Name())
			}
		}
	})

	t.Run("Unknown algorithm returns nil", func(t *testing.T) {
		t.Parallel()
		if calculators := GetCalculatorsToRun("toom3", factory); calculators != nil {
			t.Errorf("Expected nil, got %d calculators", len(calculators))
		}
	})
}
