package smooth

// Single is a one-pole exponential smoother that owns its state.
//
// The first sample after construction or Reset seeds the level.
type Single struct {
	alpha   uint8
	state   State
	started bool
}

// NewSingle constructs a single exponential smoother.
func NewSingle(opts ...Option) (*Single, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Single{
		alpha:   cfg.alpha,
		state:   State{Value: cfg.state.Value},
		started: cfg.resuming,
	}, nil
}

// ProcessSample smooths one sample and returns the new level.
func (s *Single) ProcessSample(x int) float64 {
	y := smoothLevel(x, s.alpha, &s.state.Value, s.started)
	s.started = true

	return y
}

// ProcessBlock smooths src into dst. Both must have the same length.
func (s *Single) ProcessBlock(dst []float64, src []int) error {
	if err := validateBlock(dst, len(src)); err != nil {
		return err
	}

	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}

	return nil
}

// Alpha returns the smoothing exponent.
func (s *Single) Alpha() uint8 { return s.alpha }

// SetAlpha changes the smoothing exponent without touching the state.
func (s *Single) SetAlpha(bin uint8) error {
	if err := validateBin(bin, "alpha"); err != nil {
		return err
	}
	s.alpha = bin
	return nil
}

// Started reports whether the level has been seeded.
func (s *Single) Started() bool { return s.started }

// Reset clears the state. The next sample seeds the level again.
func (s *Single) Reset() {
	s.state = State{}
	s.started = false
}

// State returns a copy of the current state.
func (s *Single) State() State {
	return s.state
}

// SetState restores a saved state and marks the smoother started.
// Delta is ignored.
func (s *Single) SetState(state State) error {
	if err := validateState(state); err != nil {
		return err
	}
	s.state = State{Value: state.Value}
	s.started = true
	return nil
}
