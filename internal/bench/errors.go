package bench

import "errors"

// Sentinel errors returned by the benchmark harness.
var (
	// ErrWorkloadMismatch indicates a contender returned a wrong value during
	// the workload, or contenders disagreed on the workload result.
	ErrWorkloadMismatch = errors.New("bench: workload mismatch")

	// ErrBaselineNotFastest indicates another contender beat the baseline.
	ErrBaselineNotFastest = errors.New("bench: baseline is not the fastest")

	// ErrUnknownContender indicates a contender name that is not registered.
	ErrUnknownContender = errors.New("bench: unknown contender")

	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrInvalidRounds      = errors.New("rounds must be positive")
	ErrInvalidCapacity    = errors.New("capacity out of range")
)
