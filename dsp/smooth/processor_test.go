package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pixels/internal/testutil"
)

func noiseInts(seed int64, offset float64, n int) []int {
	noise := testutil.DeterministicNoise(seed, 200, n)
	out := make([]int, n)
	for i, v := range noise {
		out[i] = int(offset + v)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	if _, err := NewSingle(WithAlpha(MaxBin + 1)); !errors.Is(err, ErrInvalidBin) {
		t.Fatalf("NewSingle() error = %v, want ErrInvalidBin", err)
	}
	if _, err := NewDouble(WithBeta(MaxBin + 1)); !errors.Is(err, ErrInvalidBin) {
		t.Fatalf("NewDouble() error = %v, want ErrInvalidBin", err)
	}
	if _, err := NewDouble(WithState(State{Value: math.NaN()})); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("NewDouble() error = %v, want ErrInvalidState", err)
	}
	if _, err := NewSingle(nil, WithAlpha(MaxBin)); err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}
}

func TestDefaults(t *testing.T) {
	d, err := NewDouble()
	if err != nil {
		t.Fatalf("NewDouble() error = %v", err)
	}
	if d.Alpha() != defaultAlpha || d.Beta() != defaultBeta {
		t.Fatalf("defaults = (%d, %d), want (%d, %d)", d.Alpha(), d.Beta(), defaultAlpha, defaultBeta)
	}
	if d.Started() {
		t.Fatal("new smoother should not be started")
	}
}

func TestSingleMatchesSmooth(t *testing.T) {
	in := noiseInts(3, 500, 256)

	s, err := NewSingle(WithAlpha(3))
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}

	prev := 0.0
	for i, x := range in {
		want, err := Smooth(x, 3, &prev, i > 0)
		if err != nil {
			t.Fatalf("Smooth() error = %v", err)
		}
		if got := s.ProcessSample(x); got != want {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSingleProcessBlockMatchesSample(t *testing.T) {
	in := noiseInts(4, 100, 128)

	s1, _ := NewSingle(WithAlpha(2))
	s2, _ := NewSingle(WithAlpha(2))

	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = s1.ProcessSample(x)
	}

	got := make([]float64, len(in))
	if err := s2.ProcessBlock(got, in); err != nil {
		t.Fatalf("ProcessBlock() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestSingleStepResponse(t *testing.T) {
	s, err := NewSingle(WithAlpha(2))
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}

	in := testutil.StepInt(10, 20, 1, 3)
	out := make([]float64, len(in))
	if err := s.ProcessBlock(out, in); err != nil {
		t.Fatalf("ProcessBlock() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{10, 12.5, 14.375}, 0)
}

func TestSingleResetAndState(t *testing.T) {
	s, _ := NewSingle(WithAlpha(1))
	s.ProcessSample(8)
	s.ProcessSample(0)

	if got := s.State(); got.Value != 4 {
		t.Fatalf("State().Value = %v, want 4", got.Value)
	}

	s.Reset()
	if s.Started() {
		t.Fatal("Reset should clear the started flag")
	}
	if got := s.ProcessSample(50); got != 50 {
		t.Fatalf("first sample after Reset = %v, want 50", got)
	}

	if err := s.SetState(State{Value: 10, Delta: 99}); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if got := s.ProcessSample(20); got != 15 {
		t.Fatalf("sample after SetState = %v, want 15", got)
	}
	if s.State().Delta != 0 {
		t.Fatalf("Single should not carry a trend, got %v", s.State().Delta)
	}

	if err := s.SetState(State{Value: math.Inf(1)}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SetState() error = %v, want ErrInvalidState", err)
	}
}

func TestSetStateRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{name: "nan value", state: State{Value: math.NaN()}},
		{name: "inf value", state: State{Value: math.Inf(1)}},
		{name: "neg inf value", state: State{Value: math.Inf(-1)}},
		{name: "nan delta", state: State{Value: 1, Delta: math.NaN()}},
		{name: "inf delta", state: State{Value: 1, Delta: math.Inf(1)}},
		{name: "neg inf delta", state: State{Value: 1, Delta: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := NewDouble()
			if err := d.SetState(tt.state); !errors.Is(err, ErrInvalidState) {
				t.Fatalf("SetState() error = %v, want ErrInvalidState", err)
			}
			if d.Started() || d.State() != (State{}) {
				t.Fatalf("failed SetState changed smoother: %+v started=%v", d.State(), d.Started())
			}
			if _, err := NewSingle(WithState(tt.state)); !errors.Is(err, ErrInvalidState) {
				t.Fatalf("NewSingle(WithState) error = %v, want ErrInvalidState", err)
			}
		})
	}

	d, _ := NewDouble()
	if err := d.SetState(State{Value: -1e300, Delta: 1e300}); err != nil {
		t.Fatalf("SetState(finite) error = %v", err)
	}
}

func TestSingleSetAlpha(t *testing.T) {
	s, _ := NewSingle()
	if err := s.SetAlpha(MaxBin + 1); !errors.Is(err, ErrInvalidBin) {
		t.Fatalf("SetAlpha() error = %v, want ErrInvalidBin", err)
	}
	if s.Alpha() != defaultAlpha {
		t.Fatalf("Alpha() = %d after failed SetAlpha, want %d", s.Alpha(), defaultAlpha)
	}
	if err := s.SetAlpha(0); err != nil {
		t.Fatalf("SetAlpha() error = %v", err)
	}
	s.ProcessSample(1)
	if got := s.ProcessSample(9); got != 9 {
		t.Fatalf("alpha=0 sample = %v, want 9", got)
	}
}

func TestSingleWithStateResumes(t *testing.T) {
	s, err := NewSingle(WithAlpha(2), WithState(State{Value: 10}))
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}
	if !s.Started() {
		t.Fatal("WithState should mark the smoother started")
	}
	if got := s.ProcessSample(20); got != 12.5 {
		t.Fatalf("ProcessSample() = %v, want 12.5", got)
	}
}

func TestDoubleMatchesSmooth2(t *testing.T) {
	ints := noiseInts(5, 30000, 512)
	in := make([]uint16, len(ints))
	for i, v := range ints {
		in[i] = uint16(v)
	}

	d, err := NewDouble(WithAlpha(3), WithBeta(4))
	if err != nil {
		t.Fatalf("NewDouble() error = %v", err)
	}

	var level, trend float64
	for i, x := range in {
		want, err := Smooth2(x, 3, 4, &level, &trend, i > 0)
		if err != nil {
			t.Fatalf("Smooth2() error = %v", err)
		}
		if got := d.ProcessSample(x); got != want {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
		if d.Level() != level || d.Trend() != trend {
			t.Fatalf("sample %d: state (%v, %v), want (%v, %v)", i, d.Level(), d.Trend(), level, trend)
		}
	}
}

func TestDoubleProcessBlock(t *testing.T) {
	d, _ := NewDouble()
	in := testutil.RampUint16(0, 10, 64)
	out := make([]float64, len(in))

	if err := d.ProcessBlock(out, in); err != nil {
		t.Fatalf("ProcessBlock() error = %v", err)
	}
	testutil.RequireFinite(t, out)

	if err := d.ProcessBlock(out[:3], in); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("ProcessBlock() error = %v, want ErrLengthMismatch", err)
	}
}

func TestDoubleStateRoundTrip(t *testing.T) {
	d1, _ := NewDouble(WithAlpha(2), WithBeta(3))
	for _, x := range testutil.RampUint16(500, 3, 40) {
		d1.ProcessSample(x)
	}

	d2, err := NewDouble(WithAlpha(2), WithBeta(3), WithState(d1.State()))
	if err != nil {
		t.Fatalf("NewDouble() error = %v", err)
	}

	for _, x := range testutil.RampUint16(620, 3, 40) {
		a := d1.ProcessSample(x)
		b := d2.ProcessSample(x)
		if a != b {
			t.Fatalf("resumed smoother diverged: %v vs %v", b, a)
		}
	}
}

func TestDoubleResetAndSetters(t *testing.T) {
	d, _ := NewDouble()
	d.ProcessSample(100)
	d.ProcessSample(200)

	d.Reset()
	if d.Started() || d.Level() != 0 || d.Trend() != 0 {
		t.Fatalf("Reset left state (%v, %v, started=%v)", d.Level(), d.Trend(), d.Started())
	}

	if err := d.SetAlpha(MaxBin + 1); !errors.Is(err, ErrInvalidBin) {
		t.Fatalf("SetAlpha() error = %v, want ErrInvalidBin", err)
	}
	if err := d.SetBeta(MaxBin + 1); !errors.Is(err, ErrInvalidBin) {
		t.Fatalf("SetBeta() error = %v, want ErrInvalidBin", err)
	}
	if err := d.SetAlpha(1); err != nil || d.Alpha() != 1 {
		t.Fatalf("SetAlpha(1) = %v, Alpha() = %d", err, d.Alpha())
	}
	if err := d.SetBeta(0); err != nil || d.Beta() != 0 {
		t.Fatalf("SetBeta(0) = %v, Beta() = %d", err, d.Beta())
	}

	if err := d.SetState(State{Value: 1, Delta: math.NaN()}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SetState() error = %v, want ErrInvalidState", err)
	}
	if err := d.SetState(State{Value: 10, Delta: 2}); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	// beta=0: trend = 20-10; alpha=1: level = 15.
	if got := d.ProcessSample(20); got != 25 {
		t.Fatalf("ProcessSample() = %v, want 25", got)
	}
}
