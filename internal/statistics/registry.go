package statistics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amitbasuri/numstats-go/internal/models"
)

// Registry manages the registration and lookup of calculators
type Registry struct {
	calculators map[models.Operation]Calculator
}

// NewRegistry creates an empty calculator registry
func NewRegistry() *Registry {
	return &Registry{
		calculators: make(map[models.Operation]Calculator),
	}
}

// DefaultRegistry returns a registry holding mean, median and mode
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, calc := range []Calculator{MeanCalculator{}, MedianCalculator{}, ModeCalculator{}} {
		if err := r.Register(calc); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a calculator to the registry
// Normalizes the operation name to lowercase and rejects unsupported operations
func (r *Registry) Register(calc Calculator) error {
	op := normalize(calc.Operation().String())
	if !op.IsValid() {
		return fmt.Errorf("unsupported operation: %s", calc.Operation())
	}
	r.calculators[op] = calc
	return nil
}

// Calculators returns all registered calculators ordered by operation name
func (r *Registry) Calculators() []Calculator {
	calcs := make([]Calculator, 0, len(r.calculators))
	for _, op := range r.List() {
		calcs = append(calcs, r.calculators[models.Operation(op)])
	}
	return calcs
}

// List returns all registered operations in sorted order
func (r *Registry) List() []string {
	ops := make([]string, 0, len(r.calculators))
	for op := range r.calculators {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)
	return ops
}

func normalize(operation string) models.Operation {
	return models.Operation(strings.ToLower(operation))
}
