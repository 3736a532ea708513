package routetable

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	table := mustNewTable(t)

	if got := table.config.rangeMode; got != RangeModeLax {
		t.Errorf("default range mode = %v, want %v", got, RangeModeLax)
	}
	if _, ok := table.config.logger.(noopLogger); !ok {
		t.Errorf("default logger = %T, want noopLogger", table.config.logger)
	}
	if _, ok := table.config.metrics.(noopMetrics); !ok {
		t.Errorf("default metrics = %T, want noopMetrics", table.config.metrics)
	}
}

func TestNew_InvalidRangeMode(t *testing.T) {
	_, err := New(WithRangeMode(RangeMode(0)))
	if err == nil || !strings.Contains(err.Error(), "invalid range mode") {
		t.Fatalf("New() error = %v, want invalid range mode error", err)
	}

	_, err = New(WithRangeMode(RangeMode(42)))
	if err == nil {
		t.Fatal("New() accepted out-of-range mode")
	}
}

func TestNew_NilLogger(t *testing.T) {
	if _, err := New(WithLogger(nil)); err == nil {
		t.Fatal("New() accepted nil logger")
	}
}

func TestNew_NilMetrics(t *testing.T) {
	if _, err := New(WithMetrics(nil)); err == nil {
		t.Fatal("New() accepted nil metrics")
	}
}

func TestNew_NilMetricsFactory(t *testing.T) {
	if _, err := New(WithMetricsFactory(nil)); err == nil {
		t.Fatal("New() accepted nil metrics factory")
	}
}

func TestNew_MetricsFactoryError(t *testing.T) {
	factoryErr := errors.New("factory failed")

	_, err := New(WithMetricsFactory(func() (Metrics, error) {
		return nil, factoryErr
	}))
	if !errors.Is(err, factoryErr) {
		t.Fatalf("New() error = %v, want wrapped factory error", err)
	}
}

func TestNew_MetricsFactoryReturnsNil(t *testing.T) {
	_, err := New(WithMetricsFactory(func() (Metrics, error) {
		return nil, nil
	}))
	if err == nil {
		t.Fatal("New() accepted nil metrics from factory")
	}
}

func TestMetricsOptions_Precedence_LastWins(t *testing.T) {
	t.Run("concrete metrics after factory", func(t *testing.T) {
		factoryCalls := 0
		concrete := newMockMetrics()

		table := mustNewTable(t,
			WithMetricsFactory(func() (Metrics, error) {
				factoryCalls++
				return newMockMetrics(), nil
			}),
			WithMetrics(concrete),
		)

		mustInsertRange(t, table, "10.0.1.0", "10.0.1.255", "1.1.1.1")

		if factoryCalls != 0 {
			t.Errorf("factory calls = %d, want 0 when overridden", factoryCalls)
		}
		if got := concrete.insertCount(insertResultAdded); got != 1 {
			t.Errorf("concrete metrics added count = %d, want 1", got)
		}
	})

	t.Run("factory after concrete metrics", func(t *testing.T) {
		fromFactory := newMockMetrics()
		concrete := newMockMetrics()

		table := mustNewTable(t,
			WithMetrics(concrete),
			WithMetricsFactory(func() (Metrics, error) {
				return fromFactory, nil
			}),
		)

		mustInsertRange(t, table, "10.0.1.0", "10.0.1.255", "1.1.1.1")

		if got := fromFactory.insertCount(insertResultAdded); got != 1 {
			t.Errorf("factory metrics added count = %d, want 1", got)
		}
		if got := concrete.insertCount(insertResultAdded); got != 0 {
			t.Errorf("concrete metrics added count = %d, want 0", got)
		}
	})
}

func TestOptionError_StopsApplication(t *testing.T) {
	optionErr := errors.New("option failed")
	applied := false

	_, err := New(
		func(c *config) error { return optionErr },
		func(c *config) error { applied = true; return nil },
	)
	if !errors.Is(err, optionErr) {
		t.Fatalf("New() error = %v, want option error", err)
	}
	if applied {
		t.Error("later option applied after earlier option failed")
	}
}

func TestRangeMode_String(t *testing.T) {
	tests := []struct {
		mode RangeMode
		want string
	}{
		{mode: RangeModeLax, want: "lax"},
		{mode: RangeModeStrict, want: "strict"},
		{mode: RangeMode(0), want: "unknown"},
		{mode: RangeMode(42), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RangeMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
