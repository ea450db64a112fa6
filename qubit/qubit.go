package qubit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Unset returns a model with every rate set to NaN and every time to zero,
// the state a configuration loader starts from before applying overrides.
func Unset(set InstructionSet) PhysicalQubit {
	nan := math.NaN()

	return PhysicalQubit{
		InstructionSet:                    set,
		OneQubitMeasurementErrorRate:      MeasurementErrorRate{Process: nan, Readout: nan},
		TwoQubitJointMeasurementErrorRate: MeasurementErrorRate{Process: nan, Readout: nan},
		OneQubitGateErrorRate:             nan,
		TwoQubitGateErrorRate:             nan,
		TGateErrorRate:                    nan,
		IdleErrorRate:                     nan,
	}
}

// GateNsE3 is a gate-based qubit with ns operation times and 1e-3 error rates.
func GateNsE3() PhysicalQubit { return gate("qubit_gate_ns_e3", 100, 50, 1e-3, 1e-3) }

// GateNsE4 is a gate-based qubit with ns operation times and 1e-4 error rates.
func GateNsE4() PhysicalQubit { return gate("qubit_gate_ns_e4", 100, 50, 1e-4, 1e-4) }

// GateUsE3 is a gate-based qubit with µs operation times, 1e-3 Clifford and
// 1e-6 T error rates.
func GateUsE3() PhysicalQubit { return gate("qubit_gate_us_e3", 100_000, 100_000, 1e-3, 1e-6) }

// GateUsE4 is a gate-based qubit with µs operation times, 1e-4 Clifford and
// 1e-6 T error rates.
func GateUsE4() PhysicalQubit { return gate("qubit_gate_us_e4", 100_000, 100_000, 1e-4, 1e-6) }

func gate(name string, measurementTime, gateTime uint64, rate, tRate float64) PhysicalQubit {
	return PhysicalQubit{
		Name:                         name,
		InstructionSet:               GateBased,
		OneQubitMeasurementTime:      measurementTime,
		OneQubitGateTime:             gateTime,
		TwoQubitGateTime:             gateTime,
		TGateTime:                    gateTime,
		OneQubitMeasurementErrorRate: MeasurementErrorRate{Process: rate, Readout: rate},
		OneQubitGateErrorRate:        rate,
		TwoQubitGateErrorRate:        rate,
		TGateErrorRate:               tRate,
		IdleErrorRate:                rate,
		TwoQubitJointMeasurementErrorRate: MeasurementErrorRate{
			Process: math.NaN(), Readout: math.NaN(),
		},
	}
}

// MajNsE4 is a Majorana qubit with ns operation times and 1e-4 measurement
// error rates.
func MajNsE4() PhysicalQubit { return majorana("qubit_maj_ns_e4", 1e-4, 0.05) }

// MajNsE6 is a Majorana qubit with ns operation times and 1e-6 measurement
// error rates.
func MajNsE6() PhysicalQubit { return majorana("qubit_maj_ns_e6", 1e-6, 0.01) }

func majorana(name string, rate, tRate float64) PhysicalQubit {
	return PhysicalQubit{
		Name:                              name,
		InstructionSet:                    Majorana,
		OneQubitMeasurementTime:           100,
		TwoQubitJointMeasurementTime:      100,
		TGateTime:                         100,
		OneQubitMeasurementErrorRate:      MeasurementErrorRate{Process: rate, Readout: rate},
		TwoQubitJointMeasurementErrorRate: MeasurementErrorRate{Process: rate, Readout: rate},
		OneQubitGateErrorRate:             math.NaN(),
		TwoQubitGateErrorRate:             math.NaN(),
		TGateErrorRate:                    tRate,
		IdleErrorRate:                     rate,
	}
}

// Default returns qubit_gate_ns_e3.
func Default() PhysicalQubit { return GateNsE3() }

// ByName returns a pre-defined model.
func ByName(name string) (PhysicalQubit, error) {
	switch name {
	case "qubit_gate_ns_e3":
		return GateNsE3(), nil
	case "qubit_gate_ns_e4":
		return GateNsE4(), nil
	case "qubit_gate_us_e3":
		return GateUsE3(), nil
	case "qubit_gate_us_e4":
		return GateUsE4(), nil
	case "qubit_maj_ns_e4":
		return MajNsE4(), nil
	case "qubit_maj_ns_e6":
		return MajNsE6(), nil
	default:
		return PhysicalQubit{}, errors.Wrapf(ErrUnknownModel, "name %q", name)
	}
}

// CliffordErrorRate is the worst error rate among the Clifford operations of
// the instruction set.
func (q *PhysicalQubit) CliffordErrorRate() float64 {
	if q.InstructionSet == Majorana {
		return math.Max(q.IdleErrorRate, math.Max(
			q.OneQubitMeasurementErrorRate.Process,
			q.TwoQubitJointMeasurementErrorRate.Process))
	}

	return math.Max(q.OneQubitGateErrorRate, math.Max(q.TwoQubitGateErrorRate, q.IdleErrorRate))
}

// ReadoutErrorRate is the probability of a wrong classical measurement
// outcome.
func (q *PhysicalQubit) ReadoutErrorRate() float64 {
	if q.InstructionSet == Majorana {
		return math.Max(q.OneQubitMeasurementErrorRate.Readout, q.TwoQubitJointMeasurementErrorRate.Readout)
	}

	return q.OneQubitMeasurementErrorRate.Readout
}

// Normalize fills unset fields, first from the pre-defined model with the
// same name (if any), then from sibling fields. It returns ErrMissingField
// when a required field cannot be derived.
func (q *PhysicalQubit) Normalize() error {
	if base, err := ByName(q.Name); err == nil && base.InstructionSet == q.InstructionSet {
		q.overwriteFrom(&base)
	}

	switch q.InstructionSet {
	case GateBased:
		if err := missing([]field{
			{"oneQubitMeasurementTime", q.OneQubitMeasurementTime == 0},
			{"tGateErrorRate", math.IsNaN(q.TGateErrorRate)},
			{"oneQubitMeasurementErrorRate", math.IsNaN(q.OneQubitMeasurementErrorRate.Readout)},
			{"oneQubitGateTime", q.OneQubitGateTime == 0},
			{"oneQubitGateErrorRate", math.IsNaN(q.OneQubitGateErrorRate)},
		}); err != nil {
			return err
		}
		fillTime(&q.TwoQubitGateTime, q.OneQubitGateTime)
		fillTime(&q.TGateTime, q.OneQubitGateTime)
		fillRate(&q.TwoQubitGateErrorRate, q.OneQubitGateErrorRate)
		fillRate(&q.IdleErrorRate, q.OneQubitMeasurementErrorRate.Readout)
		fillRate(&q.OneQubitMeasurementErrorRate.Process, q.OneQubitMeasurementErrorRate.Readout)
	case Majorana:
		one := &q.OneQubitMeasurementErrorRate
		if math.IsNaN(one.Readout) {
			one.Readout = one.Process
		}
		fillRate(&one.Process, one.Readout)
		if err := missing([]field{
			{"oneQubitMeasurementTime", q.OneQubitMeasurementTime == 0},
			{"oneQubitMeasurementErrorRate", math.IsNaN(one.Readout)},
			{"tGateErrorRate", math.IsNaN(q.TGateErrorRate)},
		}); err != nil {
			return err
		}
		fillTime(&q.TwoQubitJointMeasurementTime, q.OneQubitMeasurementTime)
		fillTime(&q.TGateTime, q.OneQubitMeasurementTime)
		fillRate(&q.TwoQubitJointMeasurementErrorRate.Process, one.Readout)
		fillRate(&q.TwoQubitJointMeasurementErrorRate.Readout, one.Readout)
		fillRate(&q.IdleErrorRate, one.Readout)
	default:
		return ErrUnknownInstructionSet
	}

	return nil
}

// Validate checks that every rate the estimator reads lies in (0, 1) and
// that the measurement time is set.
func (q *PhysicalQubit) Validate() error {
	if q.OneQubitMeasurementTime == 0 {
		return errors.Wrap(ErrMissingField, "oneQubitMeasurementTime")
	}
	rates := map[string]float64{
		"tGateErrorRate":    q.TGateErrorRate,
		"idleErrorRate":     q.IdleErrorRate,
		"cliffordErrorRate": q.CliffordErrorRate(),
		"readoutErrorRate":  q.ReadoutErrorRate(),
	}
	for name, rate := range rates {
		if math.IsNaN(rate) || rate <= 0 || rate >= 1 {
			return errors.Wrapf(ErrErrorRateOutOfRange, "%s = %g", name, rate)
		}
	}

	return nil
}

// String returns a short description used in logs and cache keys.
func (q *PhysicalQubit) String() string {
	return fmt.Sprintf("%s/%s(t=%g,c=%g,r=%g,m=%d)", q.InstructionSet, q.Name,
		q.TGateErrorRate, q.CliffordErrorRate(), q.ReadoutErrorRate(), q.OneQubitMeasurementTime)
}

func (q *PhysicalQubit) overwriteFrom(base *PhysicalQubit) {
	fillTime(&q.OneQubitMeasurementTime, base.OneQubitMeasurementTime)
	fillTime(&q.OneQubitGateTime, base.OneQubitGateTime)
	fillTime(&q.TwoQubitGateTime, base.TwoQubitGateTime)
	fillTime(&q.TwoQubitJointMeasurementTime, base.TwoQubitJointMeasurementTime)
	fillTime(&q.TGateTime, base.TGateTime)
	fillRate(&q.OneQubitMeasurementErrorRate.Process, base.OneQubitMeasurementErrorRate.Process)
	fillRate(&q.OneQubitMeasurementErrorRate.Readout, base.OneQubitMeasurementErrorRate.Readout)
	fillRate(&q.TwoQubitJointMeasurementErrorRate.Process, base.TwoQubitJointMeasurementErrorRate.Process)
	fillRate(&q.TwoQubitJointMeasurementErrorRate.Readout, base.TwoQubitJointMeasurementErrorRate.Readout)
	fillRate(&q.OneQubitGateErrorRate, base.OneQubitGateErrorRate)
	fillRate(&q.TwoQubitGateErrorRate, base.TwoQubitGateErrorRate)
	fillRate(&q.TGateErrorRate, base.TGateErrorRate)
	fillRate(&q.IdleErrorRate, base.IdleErrorRate)
}

func fillTime(v *uint64, base uint64) {
	if *v == 0 {
		*v = base
	}
}

func fillRate(v *float64, base float64) {
	if math.IsNaN(*v) {
		*v = base
	}
}

type field struct {
	name    string
	missing bool
}

func missing(fields []field) error {
	var names []string
	for _, f := range fields {
		if f.missing {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	return errors.Wrapf(ErrMissingField, "%v", names)
}
