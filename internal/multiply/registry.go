package multiply

import (
	"fmt"
	"sort"
	"sync"
)

// optionalStrategies holds constructors for strategies compiled in by
// build tags.
var optionalStrategies []func() Strategy

// CalculatorFactory creates and looks up calculators by name.
type CalculatorFactory interface {
	// List returns the registered names in sorted order.
	List() []string
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// GetAll returns every registered calculator keyed by name.
	GetAll() map[string]Calculator
	// Register adds or replaces a strategy under its name.
	Register(strategy Strategy)
}

// DefaultFactory is a thread-safe CalculatorFactory. Calculators are
// created once per name and cached.
type DefaultFactory struct {
	mu          sync.RWMutex
	strategies  map[string]Strategy
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with every built-in strategy
// registered.
func NewDefaultFactory() *DefaultFactory {
	f := NewEmptyFactory()
	f.Register(&KaratsubaStrategy{})
	f.Register(SchoolbookStrategy{})
	f.Register(MathBigStrategy{})
	for _, newStrategy := range optionalStrategies {
		f.Register(newStrategy())
	}
	return f
}

// NewEmptyFactory returns a factory with no strategies.
func NewEmptyFactory() *DefaultFactory {
	return &DefaultFactory{
		strategies:  make(map[string]Strategy),
		calculators: make(map[string]Calculator),
	}
}

// Register implements CalculatorFactory.
func (f *DefaultFactory) Register(strategy Strategy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := strategy.Name()
	f.strategies[name] = strategy
	delete(f.calculators, name)
}

// List implements CalculatorFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.strategies))
	for name := range f.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get implements CalculatorFactory.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	calc, ok := f.calculators[name]
	f.mu.RUnlock()
	if ok {
		return calc, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if calc, ok := f.calculators[name]; ok {
		return calc, nil
	}
	strategy, ok := f.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	calc = NewCalculator(strategy)
	f.calculators[name] = calc
	return calc, nil
}

// MustGet is like Get but panics on an unknown name.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return calc
}

// GetAll implements CalculatorFactory.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	all := make(map[string]Calculator)
	for _, name := range f.List() {
		if calc, err := f.Get(name); err == nil {
			all[name] = calc
		}
	}
	return all
}

// GlobalFactory returns the process-wide default factory.
var GlobalFactory = sync.OnceValue(func() *DefaultFactory {
	return NewDefaultFactory()
})
