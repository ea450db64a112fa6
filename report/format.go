package report

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	noTStates  = "No T states in algorithm"
	noRotation = "No rotations in algorithm"
	unset      = "-"
)

// Formatted are the human readable counterparts of a report's figures.
type Formatted struct {
	Runtime                            string `json:"runtime"`
	RQOPS                              string `json:"rqops"`
	PhysicalQubits                     string `json:"physicalQubits"`
	AlgorithmicLogicalQubits           string `json:"algorithmicLogicalQubits"`
	AlgorithmicLogicalDepth            string `json:"algorithmicLogicalDepth"`
	LogicalDepth                       string `json:"logicalDepth"`
	NumTStates                         string `json:"numTstates"`
	NumTFactories                      string `json:"numTfactories"`
	NumTFactoryRuns                    string `json:"numTfactoryRuns"`
	PhysicalQubitsForAlgorithm         string `json:"physicalQubitsForAlgorithm"`
	PhysicalQubitsForTFactories        string `json:"physicalQubitsForTfactories"`
	PhysicalQubitsForTFactoriesPercent string `json:"physicalQubitsForTfactoriesPercentage"`
	RequiredLogicalQubitErrorRate      string `json:"requiredLogicalQubitErrorRate"`
	RequiredLogicalTStateErrorRate     string `json:"requiredLogicalTstateErrorRate"`
	PhysicalQubitsPerLogicalQubit      string `json:"physicalQubitsPerLogicalQubit"`
	LogicalCycleTime                   string `json:"logicalCycleTime"`
	ClockFrequency                     string `json:"clockFrequency"`
	LogicalErrorRate                   string `json:"logicalErrorRate"`
	TFactoryPhysicalQubits             string `json:"tfactoryPhysicalQubits"`
	TFactoryRuntime                    string `json:"tfactoryRuntime"`
	NumInputTStates                    string `json:"numInputTstates"`
	NumUnitsPerRound                   string `json:"numUnitsPerRound"`
	UnitNamePerRound                   string `json:"unitNamePerRound"`
	CodeDistancePerRound               string `json:"codeDistancePerRound"`
	PhysicalQubitsPerRound             string `json:"physicalQubitsPerRound"`
	TFactoryRuntimePerRound            string `json:"tfactoryRuntimePerRound"`
	TStateLogicalErrorRate             string `json:"tstateLogicalErrorRate"`
	LogicalCountsNumQubits             string `json:"logicalCountsNumQubits"`
	LogicalCountsTCount                string `json:"logicalCountsTCount"`
	LogicalCountsRotationCount         string `json:"logicalCountsRotationCount"`
	LogicalCountsRotationDepth         string `json:"logicalCountsRotationDepth"`
	LogicalCountsCCZCount              string `json:"logicalCountsCczCount"`
	LogicalCountsCCIXCount             string `json:"logicalCountsCcixCount"`
	LogicalCountsMeasurementCount      string `json:"logicalCountsMeasurementCount"`
	ErrorBudget                        string `json:"errorBudget"`
	ErrorBudgetLogical                 string `json:"errorBudgetLogical"`
	ErrorBudgetTStates                 string `json:"errorBudgetTstates"`
	ErrorBudgetRotations               string `json:"errorBudgetRotations"`
	NumTsPerRotation                   string `json:"numTsPerRotation"`
	LogicalDepthFactor                 string `json:"logicalDepthFactor"`
	MaxTFactories                      string `json:"maxTFactories"`
	MaxDuration                        string `json:"maxDuration"`
	MaxPhysicalQubits                  string `json:"maxPhysicalQubits"`
}

func format(r *Report, in Input) Formatted {
	b := r.PhysicalCounts.Breakdown
	c := r.LogicalCounts
	opts := in.Options

	f := Formatted{
		Runtime:                            Duration(r.PhysicalCounts.Runtime),
		RQOPS:                              MetricPrefix(r.PhysicalCounts.RQOPS),
		PhysicalQubits:                     ThousandSep(r.PhysicalCounts.PhysicalQubits),
		AlgorithmicLogicalQubits:           MetricPrefix(b.AlgorithmicLogicalQubits),
		AlgorithmicLogicalDepth:            MetricPrefix(b.AlgorithmicLogicalDepth),
		LogicalDepth:                       MetricPrefix(b.LogicalDepth),
		NumTStates:                         MetricPrefix(b.NumTStates),
		NumTFactories:                      MetricPrefix(b.NumTFactories),
		NumTFactoryRuns:                    MetricPrefix(b.NumTFactoryRuns),
		PhysicalQubitsForAlgorithm:         MetricPrefix(b.PhysicalQubitsForAlgorithm),
		PhysicalQubitsForTFactories:        MetricPrefix(b.PhysicalQubitsForTFactories),
		PhysicalQubitsForTFactoriesPercent: percent(b.PhysicalQubitsForTFactories, r.PhysicalCounts.PhysicalQubits),
		RequiredLogicalQubitErrorRate:      ErrorRate(b.RequiredLogicalQubitErrorRate),
		RequiredLogicalTStateErrorRate:     noTStates,
		PhysicalQubitsPerLogicalQubit:      MetricPrefix(r.LogicalQubit.PhysicalQubits),
		LogicalCycleTime:                   Duration(r.LogicalQubit.LogicalCycleTime),
		ClockFrequency:                     MetricPrefix(uint64(r.LogicalQubit.LogicalCyclesPerSecond + 0.5)),
		LogicalErrorRate:                   ErrorRate(r.LogicalQubit.LogicalErrorRate),
		TFactoryPhysicalQubits:             noTStates,
		TFactoryRuntime:                    noTStates,
		NumInputTStates:                    noTStates,
		NumUnitsPerRound:                   noTStates,
		UnitNamePerRound:                   noTStates,
		CodeDistancePerRound:               noTStates,
		PhysicalQubitsPerRound:             noTStates,
		TFactoryRuntimePerRound:            noTStates,
		TStateLogicalErrorRate:             noTStates,
		LogicalCountsNumQubits:             MetricPrefix(c.NumQubits),
		LogicalCountsTCount:                MetricPrefix(c.TCount),
		LogicalCountsRotationCount:         MetricPrefix(c.RotationCount),
		LogicalCountsRotationDepth:         MetricPrefix(c.RotationDepth),
		LogicalCountsCCZCount:              MetricPrefix(c.CCZCount),
		LogicalCountsCCIXCount:             MetricPrefix(c.CCIXCount),
		LogicalCountsMeasurementCount:      MetricPrefix(c.MeasurementCount),
		ErrorBudget:                        ErrorRate(in.TotalBudget),
		ErrorBudgetLogical:                 ErrorRate(r.ErrorBudget.Logical),
		ErrorBudgetTStates:                 ErrorRate(r.ErrorBudget.MagicStates),
		ErrorBudgetRotations:               ErrorRate(r.ErrorBudget.Rotations),
		NumTsPerRotation:                   noRotation,
		LogicalDepthFactor:                 unset,
		MaxTFactories:                      unset,
		MaxDuration:                        unset,
		MaxPhysicalQubits:                  unset,
	}

	if b.RequiredLogicalTStateErrorRate != nil {
		f.RequiredLogicalTStateErrorRate = ErrorRate(*b.RequiredLogicalTStateErrorRate)
	}
	if b.NumTsPerRotation != nil {
		f.NumTsPerRotation = MetricPrefix(*b.NumTsPerRotation)
	}
	if t := r.TFactory; t != nil {
		f.TFactoryPhysicalQubits = MetricPrefix(t.PhysicalQubits)
		f.TFactoryRuntime = Duration(t.Runtime)
		f.NumInputTStates = MetricPrefix(t.NumInputTStates)
		f.NumUnitsPerRound = joinUints(t.NumUnitsPerRound, MetricPrefix)
		f.UnitNamePerRound = strings.Join(t.UnitNamePerRound, ", ")
		f.CodeDistancePerRound = joinUints(t.CodeDistancePerRound, MetricPrefix)
		f.PhysicalQubitsPerRound = joinUints(t.PhysicalQubitsPerRound, MetricPrefix)
		f.TFactoryRuntimePerRound = joinUints(t.RuntimePerRound, Duration)
		f.TStateLogicalErrorRate = ErrorRate(t.LogicalErrorRate)
	}

	if opts.LogicalDepthFactor > 0 {
		f.LogicalDepthFactor = fmt.Sprintf("%.2f", opts.LogicalDepthFactor)
	}
	if opts.MaxFactories > 0 {
		f.MaxTFactories = MetricPrefix(opts.MaxFactories)
	}
	if opts.MaxDuration > 0 {
		f.MaxDuration = Duration(opts.MaxDuration)
	}
	if opts.MaxPhysicalQubits > 0 {
		f.MaxPhysicalQubits = ThousandSep(opts.MaxPhysicalQubits)
	}

	return f
}

// MetricPrefix prints values from 1000 on with two decimals and an SI
// prefix, e.g. 12345 as "12.35k".
func MetricPrefix(v uint64) string {
	if v < 1000 {
		return fmt.Sprint(v)
	}
	value, prefix := humanize.ComputeSI(float64(v))

	return fmt.Sprintf("%.2f%s", value, prefix)
}

// ThousandSep prints v with comma separators.
func ThousandSep(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// ErrorRate prints a rate with three significant digits.
func ErrorRate(rate float64) string {
	return fmt.Sprintf("%.2e", rate)
}

var durationUnits = []struct {
	name   string
	factor uint64
}{
	{"nanosecs", 1},
	{"microsecs", 1000},
	{"millisecs", 1000},
	{"secs", 1000},
	{"mins", 60},
	{"hours", 60},
	{"days", 24},
	{"years", 365},
}

// Duration prints ns in the largest unit with a non-zero integer part,
// rounding half up, e.g. 1_500_000 as "2 millisecs".
func Duration(ns uint64) string {
	value, rem := ns, uint64(0)
	for i := 1; i < len(durationUnits); i++ {
		if value/durationUnits[i].factor == 0 {
			if rem >= durationUnits[i-1].factor/2 && durationUnits[i-1].factor > 1 {
				value++
				if value == durationUnits[i].factor {
					return "1 " + durationUnits[i].name
				}
			}

			return fmt.Sprintf("%d %s", value, durationUnits[i-1].name)
		}
		value, rem = value/durationUnits[i].factor, value%durationUnits[i].factor
	}

	return fmt.Sprintf("%d %s", value, durationUnits[len(durationUnits)-1].name)
}

func percent(part, total uint64) string {
	if total == 0 {
		return "0.00 %"
	}

	return fmt.Sprintf("%.2f %%", float64(part)*100/float64(total))
}

func joinUints(values []uint64, f func(uint64) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = f(v)
	}

	return strings.Join(parts, ", ")
}
