package log

// Config is the configuration struct for the log package.
//
// Can be deserialized from YAML.
type Config struct {
	// Level is the log level you want to set spg to.
	//
	// Empty means WarnLevel, so notices from Generators are kept.
	Level Level `yaml:"level"`

	// JSON switches the output to full json format.
	JSON bool `yaml:"json"`
}

// InitFromConfig initializes the log package using the given Config.
func InitFromConfig(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = WarnLevel
	}
	if cfg.JSON {
		InitLoggerJSON(cfg.Level)
		return
	}
	InitLogger(cfg.Level)
}
