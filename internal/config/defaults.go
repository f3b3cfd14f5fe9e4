package config

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	defaultLogFormat = LogFormatConsole
	defaultLogLevel  = "info"
	defaultDepth     = 0
	lockDirName      = "foldean"

	// MaxDepth is the deepest level of subfolders a run may scan.
	MaxDepth = 1
)

// Default returns a Config populated with repository defaults. TargetDir is
// left empty so normalization resolves the Downloads folder.
func Default() Config {
	return Config{
		Depth: defaultDepth,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
