package smooth

const (
	defaultAlpha = 2
	defaultBeta  = 2
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	alpha    uint8
	beta     uint8
	state    State
	resuming bool
}

func defaultConfig() config {
	return config{
		alpha: defaultAlpha,
		beta:  defaultBeta,
	}
}

// WithAlpha sets the level smoothing exponent in [0, MaxBin].
func WithAlpha(bin uint8) Option {
	return func(cfg *config) error {
		if err := validateBin(bin, "alpha"); err != nil {
			return err
		}

		cfg.alpha = bin

		return nil
	}
}

// WithBeta sets the trend smoothing exponent in [0, MaxBin]. Single ignores it.
func WithBeta(bin uint8) Option {
	return func(cfg *config) error {
		if err := validateBin(bin, "beta"); err != nil {
			return err
		}

		cfg.beta = bin

		return nil
	}
}

// WithState resumes a previously saved signal. The processor starts in the
// steady state, so the first sample is averaged rather than seeded.
func WithState(state State) Option {
	return func(cfg *config) error {
		if err := validateState(state); err != nil {
			return err
		}

		cfg.state = state
		cfg.resuming = true

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}
