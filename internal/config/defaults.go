package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Target == "" {
		cfg.Output.Target = TargetStarlight
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = cfg.Output.Target.DefaultPath()
	}
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

// CompositeDefaultApplier runs domain appliers in order.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier returns the applier used by Load.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{appliers: []DefaultApplier{
		&OutputDefaultApplier{},
		&LoggingDefaultApplier{},
	}}
}

func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Domains lists the domains covered, in application order.
func (c *CompositeDefaultApplier) Domains() []string {
	out := make([]string, 0, len(c.appliers))
	for _, a := range c.appliers {
		out = append(out, a.Domain())
	}
	return out
}
