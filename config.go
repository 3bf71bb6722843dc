package questions

import "github.com/goliatone/go-questions/internal/runtimeconfig"

var (
	ErrGeneratorOutputDirInvalid    = runtimeconfig.ErrGeneratorOutputDirInvalid
	ErrGeneratorFilePatternRequired = runtimeconfig.ErrGeneratorFilePatternRequired
	ErrCurriculumDirRequired        = runtimeconfig.ErrCurriculumDirRequired
	ErrHistoryDSNRequired           = runtimeconfig.ErrHistoryDSNRequired
	ErrLoggingProviderRequired      = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown       = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid          = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid         = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	GeneratorConfig  = runtimeconfig.GeneratorConfig
	CurriculumConfig = runtimeconfig.CurriculumConfig
	HistoryConfig    = runtimeconfig.HistoryConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	Features         = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFile reads a YAML configuration file, overlaying it on DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
