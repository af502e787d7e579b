package config

import "github.com/ilyakaznacheev/cleanenv"

type Parser struct {

	// DateFormat is a layout for time.Parse() / time.Time.Format()
	// See https://golang.org/pkg/time/#Time.Format
	//
	// The default layout's fixed-width fields require zero-padded input.
	DateFormat string `env:"DATE_FORMAT" env-default:"2006-01-02"`

	// CurrencySymbol is the suffix accepted on price arguments.
	//
	// Example: "€" for "49.99€"
	CurrencySymbol string `env:"CURRENCY_SYMBOL" env-default:"€"`
}

type Processor struct {

	// DateFormat is a layout for time.Time.Format(), used when rendering
	// booking dates back out. Keep it in sync with Parser.DateFormat.
	DateFormat string `env:"DATE_FORMAT" env-default:"2006-01-02"`

	// CurrencySymbol is the suffix produced on rendered prices.
	CurrencySymbol string `env:"CURRENCY_SYMBOL" env-default:"€"`
}

type Repl struct {

	// MaxLineSize bounds a single command line, in bytes.
	MaxLineSize int `env:"MAX_LINE_SIZE" env-default:"65536"`
}

func NewParserConfig() (*Parser, error) {
	var cfg Parser
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewProcessorConfig() (*Processor, error) {
	var cfg Processor
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewReplConfig() (*Repl, error) {
	var cfg Repl
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
