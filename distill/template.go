package distill

import (
	"math"

	"github.com/pkg/errors"
)

// RM15Prep is the 15-to-1 Reed-Muller distillation unit with state
// preparation.
func RM15Prep() *Template {
	return &Template{
		Name:               "15-to-1 RM prep",
		NumInputStates:     15,
		NumOutputStates:    1,
		FailureProbability: failure15To1,
		OutputErrorRate:    output15To1,
		Type:               Combined,
		PhysicalSpec:       &Resources{NumUnitQubits: 31, DurationInQubitCycleTime: 24},
		LogicalSpec:        &Resources{NumUnitQubits: 31, DurationInQubitCycleTime: 11},
	}
}

// RM15SpaceEfficient is the space-efficient layout of the 15-to-1 unit.
func RM15SpaceEfficient() *Template {
	return &Template{
		Name:               "15-to-1 space efficient",
		NumInputStates:     15,
		NumOutputStates:    1,
		FailureProbability: failure15To1,
		OutputErrorRate:    output15To1,
		Type:               Combined,
		PhysicalSpec:       &Resources{NumUnitQubits: 12, DurationInQubitCycleTime: 45},
		LogicalSpec:        &Resources{NumUnitQubits: 20, DurationInQubitCycleTime: 13},
	}
}

// Trivial1To1 passes a logical state through unchanged. It backs the default
// factory used when the physical T error rate already meets the target.
func Trivial1To1() *Template {
	return &Template{
		Name:               "trivial 1-to-1",
		NumInputStates:     1,
		NumOutputStates:    1,
		FailureProbability: func(float64, float64, float64) float64 { return 0 },
		OutputErrorRate:    func(in, _, _ float64) float64 { return in },
		Type:               Logical,
		LogicalSpec:        &Resources{NumUnitQubits: 1, DurationInQubitCycleTime: 1},
	}
}

func failure15To1(in, clifford, _ float64) float64 {
	return 15*in + 356*clifford
}

func output15To1(in, clifford, _ float64) float64 {
	return 35*math.Pow(in, 3) + 7.1*clifford
}

// DefaultTemplates returns the templates searched when a job names none.
func DefaultTemplates() []*Template {
	return []*Template{RM15Prep(), RM15SpaceEfficient()}
}

// TemplateByName resolves the accepted spellings of the pre-defined
// templates.
func TemplateByName(name string) (*Template, error) {
	switch name {
	case "15-1 RM", "15-1 RM prep", "15-to-1 RM", "15-to-1 RM prep":
		return RM15Prep(), nil
	case "15-1 space-efficient", "15-1 space efficient", "15-to-1 space-efficient", "15-to-1 space efficient":
		return RM15SpaceEfficient(), nil
	case "trivial 1-to-1":
		return Trivial1To1(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownTemplate, "name %q", name)
	}
}

// Validate checks that the template carries what its type requires.
func (t *Template) Validate() error {
	switch {
	case t.NumInputStates == 0 || t.NumOutputStates == 0:
		return errors.Wrapf(ErrInvalidTemplate, "%s: state counts must be positive", t.Name)
	case t.FailureProbability == nil || t.OutputErrorRate == nil:
		return errors.Wrapf(ErrInvalidTemplate, "%s: missing formula", t.Name)
	case t.Type != Logical && t.PhysicalSpec == nil:
		return errors.Wrapf(ErrInvalidTemplate, "%s: %s template needs a physical specification", t.Name, t.Type)
	case t.Type != Physical && t.LogicalSpec == nil:
		return errors.Wrapf(ErrInvalidTemplate, "%s: %s template needs a logical specification", t.Name, t.Type)
	case t.Type == Physical && (t.LogicalSpec != nil || t.LogicalFirstRoundSpec != nil):
		return errors.Wrapf(ErrInvalidTemplate, "%s: physical template must not have a logical specification", t.Name)
	case t.Type == Logical && t.PhysicalSpec != nil:
		return errors.Wrapf(ErrInvalidTemplate, "%s: logical template must not have a physical specification", t.Name)
	}

	return nil
}
