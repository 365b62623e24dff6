// Package constants provides shared constants for the loan-revolver application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// RatePrecision scales a fractional rate to hundredths of a percent
	RatePrecision = 10000

	// MaxPeriodCount caps the by-count target (100 years of months)
	MaxPeriodCount = 1200
)

// Mode selectors
const (
	// ModeByAmount generates a plan from a fixed payment amount
	ModeByAmount = "by-amount"

	// ModeByCount solves the payment for a target number of periods
	ModeByCount = "by-count"

	// ModeLetterByAmount is the single-letter CLI alias for ModeByAmount
	ModeLetterByAmount = "a"

	// ModeLetterByCount is the single-letter CLI alias for ModeByCount
	ModeLetterByCount = "c"
)

// Output format constants
const (
	// OutputFormatJSON is the machine-readable default output format
	OutputFormatJSON = "json"

	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "loan-revolver.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment overrides of config values
	EnvPrefix = "LOAN_REVOLVER"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (16 KB)
	DefaultMaxRequestSizeBytes int64 = 16 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the server
	DefaultShutdownTimeoutSeconds = 10
)
