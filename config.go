package routetable

import "fmt"

// RangeMode controls how InsertRange treats (start, end) pairs that do not
// form an aligned CIDR block.
type RangeMode int

const (
	// Start at 1 to avoid zero-value confusion and make invalid modes
	// explicit.
	//
	// RangeModeLax reduces any endpoint pair to its common leading-bit
	// prefix, even when the pair is inverted or not block-aligned. The
	// inferred prefix may then cover more or less than the stated range;
	// such inserts are logged and counted but not rejected.
	RangeModeLax RangeMode = iota + 1
	// RangeModeStrict rejects inverted ranges with ErrInvertedRange and
	// non-aligned ranges with ErrMisalignedRange, leaving the table
	// unchanged.
	RangeModeStrict
)

// String returns the canonical text representation of m.
func (m RangeMode) String() string {
	switch m {
	case RangeModeLax:
		return "lax"
	case RangeModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// valid reports whether m is a supported range mode.
func (m RangeMode) valid() bool {
	return m == RangeModeLax || m == RangeModeStrict
}

// Option configures a Table.
//
// Construct options using package-provided option builder functions.
type Option func(*config) error

// config holds table configuration state.
//
// It is mutated by Option functions during construction.
type config struct {
	rangeMode RangeMode

	logger  Logger
	metrics Metrics

	metricsFactory    func() (Metrics, error)
	useMetricsFactory bool
}

func defaultConfig() *config {
	return &config{
		rangeMode: RangeModeLax,
		logger:    noopLogger{},
		metrics:   noopMetrics{},
	}
}

func applyOptions(c *config, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func configFromOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()

	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.useMetricsFactory {
		metrics, err := cfg.metricsFactory()
		if err != nil {
			return nil, err
		}
		if metrics == nil {
			return nil, fmt.Errorf("metrics factory returned nil metrics")
		}
		cfg.metrics = metrics
	}

	return cfg, nil
}

func (c *config) validate() error {
	if !c.rangeMode.valid() {
		return fmt.Errorf("invalid range mode %d", int(c.rangeMode))
	}

	if c.logger == nil {
		return fmt.Errorf("logger cannot be nil")
	}

	if c.metrics == nil {
		return fmt.Errorf("metrics cannot be nil")
	}

	if c.useMetricsFactory && c.metricsFactory == nil {
		return fmt.Errorf("metrics factory cannot be nil")
	}

	return nil
}
