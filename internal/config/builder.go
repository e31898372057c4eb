package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log file writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutputFilename sets the file results are written to.
func (b *ConfigBuilder) WithOutputFilename(path string) *ConfigBuilder {
	b.cfg.OutputFilename = path
	return b
}

// WithInputFile sets the transcript loaded at start-up.
func (b *ConfigBuilder) WithInputFile(path string) *ConfigBuilder {
	b.cfg.InputFile = path
	return b
}

// WithShowBoard controls board rendering after each command.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Console.ShowBoard = enabled
	return b
}

// WithPrompt sets the console prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Console.Prompt = prompt
	return b
}

// WithDataDir enables the ledger in dir.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.Storage.DataDir = dir
	return b
}

// WithInMemoryStorage enables an in-memory ledger.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithVerify enables the perft cross-check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithUnique enables counting distinct leaf positions.
func (b *ConfigBuilder) WithUnique(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Unique = enabled
	return b
}

// WithMaxPositions bounds the positions remembered when counting unique leaves.
func (b *ConfigBuilder) WithMaxPositions(n int) *ConfigBuilder {
	b.cfg.Perft.MaxPositions = n
	return b
}
