package commands

// Output format constants.
const (
	// OutputFormatJSON represents JSON output format.
	OutputFormatJSON = "json"
	// OutputFormatYAML represents YAML output format.
	OutputFormatYAML = "yaml"
)

// Flag names shared across commands.
const (
	configFlag      = "config"
	logLevelFlag    = "log-level"
	outputFlag      = "output"
	limitFlag       = "limit"
	tokenFlag       = "token"
	minAmountFlag   = "min-amount"
	messagesFlag    = "messages"
	defaultHistory  = 20
	skipContainerKV = "skip-container"
)
