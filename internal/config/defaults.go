package config

const (
	defaultKDMBinary      = "dcpomatic2_kdm_cli"
	defaultDCPBinary      = "dcpomatic2_cli"
	defaultCreateBinary   = "dcpomatic2_create"
	defaultTimeoutSeconds = 3600
	defaultLockPath       = "~/.local/share/reelkit/tool.lock"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			KDMBinary:      defaultKDMBinary,
			DCPBinary:      defaultDCPBinary,
			CreateBinary:   defaultCreateBinary,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Lock: Lock{
			Enabled: false,
			Path:    defaultLockPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
