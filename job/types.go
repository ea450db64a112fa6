package job

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/layout"
)

// Sentinel errors for job files.
var (
	// ErrUnknownStrategy indicates an unknown error budget strategy.
	ErrUnknownStrategy = errors.New("job: unknown error budget strategy")

	// ErrInvalidDuration indicates an unparsable or non-positive duration.
	ErrInvalidDuration = errors.New("job: invalid duration")

	// ErrInvalidBudget indicates an error budget whose parts are not
	// positive or whose total is not below 1.
	ErrInvalidBudget = errors.New("job: invalid error budget")
)

// DefaultErrorBudget is the total budget of jobs that do not give one.
const DefaultErrorBudget = 1e-3

// Params is the YAML schema of a job.
type Params struct {
	QubitParams           yaml.Node `yaml:"qubitParams"`
	QECScheme             QECParams `yaml:"qecScheme"`
	DistillationUnits     []string  `yaml:"distillationUnits"`
	MaxDistillationRounds int       `yaml:"maxDistillationRounds"`
	// FailureProbabilityRequirement bounds the chance that a factory run
	// delivers too few states; zero keeps the factory default.
	FailureProbabilityRequirement float64 `yaml:"failureProbabilityRequirement"`
	// QubitCalculation is "max" (rounds share qubits) or "sum".
	QubitCalculation    string               `yaml:"qubitCalculation"`
	ErrorBudget         ErrorBudgetParams    `yaml:"errorBudget"`
	ErrorBudgetStrategy string               `yaml:"errorBudgetStrategy"`
	Constraints         Constraints          `yaml:"constraints"`
	LogicalCounts       layout.LogicalCounts `yaml:"logicalCounts"`
}

// QECParams selects a pre-defined QEC scheme and overrides its constants.
// Zero values keep the pre-defined ones.
type QECParams struct {
	Name                     string  `yaml:"name"`
	ErrorCorrectionThreshold float64 `yaml:"errorCorrectionThreshold"`
	CrossingPrefactor        float64 `yaml:"crossingPrefactor"`
	MaxCodeDistance          uint64  `yaml:"maxCodeDistance"`
}

// ErrorBudgetParams is either a total, partitioned by the layout, or an
// explicit split.
type ErrorBudgetParams struct {
	Total float64
	Split *estimate.ErrorBudget
}

// UnmarshalYAML accepts a scalar total or a mapping with logical,
// magicStates and rotations keys.
func (b *ErrorBudgetParams) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&b.Total)
	}

	var split estimate.ErrorBudget
	if err := node.Decode(&split); err != nil {
		return err
	}
	b.Split = &split

	return nil
}

// Constraints bound the estimate. Durations use time.ParseDuration syntax.
type Constraints struct {
	MaxTFactories      uint64  `yaml:"maxTFactories"`
	MaxDuration        string  `yaml:"maxDuration"`
	MaxPhysicalQubits  uint64  `yaml:"maxPhysicalQubits"`
	LogicalDepthFactor float64 `yaml:"logicalDepthFactor"`
}

// qubitHeader is the part of qubitParams needed to pick the base model.
type qubitHeader struct {
	Name           string `yaml:"name"`
	InstructionSet string `yaml:"instructionSet"`
}
