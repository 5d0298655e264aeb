package parameter

import "time"

// Tick Model
const (
	// TicksPerSecond is the host update rate the overlay countdowns are expressed in
	TicksPerSecond = 60

	// TickInterval is the wall-clock duration of one tick in the sandbox loop
	TickInterval = time.Second / TicksPerSecond
)

// Layer Refresh Defaults
const (
	// DefaultUpdatesPerSecond is the recompute rate for layers without an explicit setting
	DefaultUpdatesPerSecond = 2

	// DefaultAutoUpdatesPerSecond is the sub-layer reselection rate of the auto layer
	DefaultAutoUpdatesPerSecond = 2

	// MinTickRate guards against zero or negative countdowns from extreme rates
	MinTickRate = 1
)

// Coverage Scan
const (
	// SearchPadding bounds how far beyond the viewport effect sources are scanned
	// Layers use max(effect reach, SearchPadding)
	SearchPadding = 10

	// PreviewTint is how far preview tiles blend toward the highlight color
	PreviewTint = 0.5
)

// Logging
const (
	// ExternalWarnInterval is the sampling window for registrant contract warnings
	ExternalWarnInterval = 10 * time.Second

	// ExternalWarnFirst is how many identical warnings pass per window before sampling
	ExternalWarnFirst = 1

	// ExternalWarnThereafter logs every n-th identical warning after the first burst
	ExternalWarnThereafter = 100
)
