package config

// Config holds all kaiascan CLI configuration.
type Config struct {
	NetworkMode    string `json:"network_mode"`    // "mainnet" | "testnet"
	Output         string `json:"output"`          // "json" | "yaml" | "table"
	LogLevel       string `json:"log_level"`       // "debug" | "info" | "warn" | "error"
	LogFormat      string `json:"log_format"`      // "text" | "json"
	TimeoutSeconds int    `json:"timeout_seconds"` // 0 = no client-side timeout
	UserAgent      string `json:"user_agent,omitempty"`

	// internal: config dir path used for Save()
	configDir string
}

// Output formats understood by the CLI renderer.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)
