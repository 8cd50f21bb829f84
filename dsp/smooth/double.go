package smooth

// Double is a double exponential (Holt) smoother that owns its level,
// trend and cold-start flag.
type Double struct {
	alpha   uint8
	beta    uint8
	state   State
	started bool
}

// NewDouble constructs a double exponential smoother.
func NewDouble(opts ...Option) (*Double, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Double{
		alpha:   cfg.alpha,
		beta:    cfg.beta,
		state:   cfg.state,
		started: cfg.resuming,
	}, nil
}

// ProcessSample smooths one sample and returns level plus trend.
func (d *Double) ProcessSample(x uint16) float64 {
	y := smoothTrend(x, d.alpha, d.beta, &d.state.Value, &d.state.Delta, d.started)
	d.started = true

	return y
}

// ProcessBlock smooths src into dst. Both must have the same length.
func (d *Double) ProcessBlock(dst []float64, src []uint16) error {
	if err := validateBlock(dst, len(src)); err != nil {
		return err
	}

	for i, x := range src {
		dst[i] = d.ProcessSample(x)
	}

	return nil
}

// Level returns the smoothed level without the trend.
func (d *Double) Level() float64 { return d.state.Value }

// Trend returns the smoothed per-sample trend.
func (d *Double) Trend() float64 { return d.state.Delta }

// Alpha returns the level smoothing exponent.
func (d *Double) Alpha() uint8 { return d.alpha }

// Beta returns the trend smoothing exponent.
func (d *Double) Beta() uint8 { return d.beta }

// SetAlpha changes the level smoothing exponent.
func (d *Double) SetAlpha(bin uint8) error {
	if err := validateBin(bin, "alpha"); err != nil {
		return err
	}
	d.alpha = bin
	return nil
}

// SetBeta changes the trend smoothing exponent.
func (d *Double) SetBeta(bin uint8) error {
	if err := validateBin(bin, "beta"); err != nil {
		return err
	}
	d.beta = bin
	return nil
}

// Started reports whether the level has been seeded.
func (d *Double) Started() bool { return d.started }

// Reset clears level and trend. The next sample seeds the level again.
func (d *Double) Reset() {
	d.state = State{}
	d.started = false
}

// State returns a copy of the current state.
func (d *Double) State() State {
	return d.state
}

// SetState restores a saved state and marks the smoother started.
func (d *Double) SetState(state State) error {
	if err := validateState(state); err != nil {
		return err
	}
	d.state = state
	d.started = true
	return nil
}
