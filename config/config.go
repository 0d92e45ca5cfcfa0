// Package config loads the application configuration from the environment
// and an optional .env file.
package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/emi03-byte/MedAI/dataset"
	"github.com/joho/godotenv"
)

// Environment is the deployment environment.
type Environment string

const (
	EnvDevelopment Environment = "dev"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "prod"
	EnvTest        Environment = "test"
)

// ParseEnvironment maps ENV values, including the long aliases, to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return EnvDevelopment, nil
	case "staging":
		return EnvStaging, nil
	case "prod", "production":
		return EnvProduction, nil
	case "test":
		return EnvTest, nil
	}
	return EnvDevelopment, fmt.Errorf("ENV must be one of: [dev staging prod test], got: %s", s)
}

func (e Environment) String() string {
	return string(e)
}

var refreshAtRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(;([01]\d|2[0-3]):[0-5]\d)*$`)

// Config holds all application configuration
type Config struct {
	// Inputs and output of the enrichment run
	MedicationsCSV string
	DiseasesCSV    string
	OutputCSV      string
	InputEncoding  string

	// Column names
	ATCColumn         string
	NameColumn        string
	OutputColumn      string
	DiseaseIDColumn   string
	DiseaseNameColumn string

	SampleRows      int
	MetricsTextfile string

	Env               Environment
	LogLevel          string
	LogDir            string
	LogRetentionWeeks int   // Number of weeks to keep log files
	MaxLogFileSize    int64 // Maximum log file size in bytes

	// Lookup service
	Port           string
	Address        string
	RefreshAt      string // "HH:MM;HH:MM" daily regeneration times
	MaxRequestBody int64
	MaxHeaderSize  int64
}

// Load reads .env (when present) and the environment, then validates the result.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may be set by the caller
	_ = godotenv.Load()

	env, err := ParseEnvironment(getEnvWithDefault("ENV", string(EnvDevelopment)))
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: invalid ENV: %w", err)
	}

	cfg := &Config{
		MedicationsCSV: getEnvWithDefault("MEDICATIONS_CSV", "public/medicamente_cu_boli_COMPLET.csv"),
		DiseasesCSV:    getEnvWithDefault("DISEASES_CSV", "public/coduri_boala.csv"),
		OutputCSV:      getEnvWithDefault("OUTPUT_CSV", "medicamente_cu_boli_COMPLET.csv"),
		InputEncoding:  getEnvWithDefault("INPUT_ENCODING", dataset.DefaultEncoding),

		ATCColumn:         getEnvWithDefault("ATC_COLUMN", "Cod ATC"),
		NameColumn:        getEnvWithDefault("NAME_COLUMN", "Denumire medicament"),
		OutputColumn:      getEnvWithDefault("OUTPUT_COLUMN", "Coduri_Boli"),
		DiseaseIDColumn:   getEnvWithDefault("DISEASE_ID_COLUMN", "Cod999"),
		DiseaseNameColumn: getEnvWithDefault("DISEASE_NAME_COLUMN", "DenumireBoala"),

		SampleRows:      getIntEnvWithDefault("SAMPLE_ROWS", 20),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),

		Env:               env,
		LogLevel:          strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		LogDir:            getEnvWithDefault("LOG_DIR", "logs"),
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4),
		MaxLogFileSize:    getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 104857600), // 100MB

		Port:           getEnvWithDefault("PORT", "8000"),
		Address:        getEnvWithDefault("ADDRESS", "127.0.0.1"),
		RefreshAt:      getEnvWithDefault("REFRESH_AT", "06:00;18:00"),
		MaxRequestBody: getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576),
		MaxHeaderSize:  getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate re-checks the configuration, e.g. after flags overrode fields.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(cfg *Config) error {
	if err := validatePaths(cfg); err != nil {
		return err
	}

	columns := map[string]string{
		"ATC_COLUMN":          cfg.ATCColumn,
		"NAME_COLUMN":         cfg.NameColumn,
		"OUTPUT_COLUMN":       cfg.OutputColumn,
		"DISEASE_ID_COLUMN":   cfg.DiseaseIDColumn,
		"DISEASE_NAME_COLUMN": cfg.DiseaseNameColumn,
	}
	for key, value := range columns {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("invalid %s: column name cannot be empty", key)
		}
	}
	if cfg.OutputColumn == cfg.ATCColumn || cfg.OutputColumn == cfg.NameColumn {
		return fmt.Errorf("invalid OUTPUT_COLUMN: %q would overwrite an input column", cfg.OutputColumn)
	}

	if !dataset.ValidEncoding(cfg.InputEncoding) {
		return fmt.Errorf("invalid INPUT_ENCODING: unknown charset %q", cfg.InputEncoding)
	}

	if cfg.SampleRows < 0 || cfg.SampleRows > 1000 {
		return fmt.Errorf("invalid SAMPLE_ROWS: must be between 0 and 1000, got: %d", cfg.SampleRows)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateLogRetentionWeeks(cfg.LogRetentionWeeks); err != nil {
		return fmt.Errorf("invalid LOG_RETENTION_WEEKS: %w", err)
	}

	if err := validateMaxLogFileSize(cfg.MaxLogFileSize); err != nil {
		return fmt.Errorf("invalid MAX_LOG_FILE_SIZE: %w", err)
	}

	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if !refreshAtRegex.MatchString(cfg.RefreshAt) {
		return fmt.Errorf("invalid REFRESH_AT: expected HH:MM[;HH:MM...], got: %s", cfg.RefreshAt)
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return fmt.Errorf("invalid MAX_REQUEST_BODY: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return fmt.Errorf("invalid MAX_HEADER_SIZE: %w", err)
	}

	return nil
}

func validatePaths(cfg *Config) error {
	if strings.TrimSpace(cfg.MedicationsCSV) == "" {
		return fmt.Errorf("invalid MEDICATIONS_CSV: path cannot be empty")
	}
	if strings.TrimSpace(cfg.DiseasesCSV) == "" {
		return fmt.Errorf("invalid DISEASES_CSV: path cannot be empty")
	}
	if strings.TrimSpace(cfg.OutputCSV) == "" {
		return fmt.Errorf("invalid OUTPUT_CSV: path cannot be empty")
	}
	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1024 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1024 and 65535, got: %d", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "localhost" {
		return nil
	}

	ip := net.ParseIP(address)
	if ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	if !ip.IsLoopback() && !ip.IsPrivate() && !ip.IsUnspecified() {
		return fmt.Errorf("ADDRESS %s is a public IP, consider using private network ranges for security", address)
	}

	return nil
}

func validateEnv(env Environment) error {
	_, err := ParseEnvironment(string(env))
	return err
}

func validateLogLevel(logLevel string) error {
	switch logLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("LOG_LEVEL must be one of: [debug info warn error], got: %s", logLevel)
}

// validateSizeLimit validates size limit configuration values
func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 { // 100MB
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

func validateLogRetentionWeeks(weeks int) error {
	if weeks <= 0 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be positive, got: %d", weeks)
	}

	if weeks > 52 {
		return fmt.Errorf("LOG_RETENTION_WEEKS is too large (max 52 weeks), got: %d", weeks)
	}

	return nil
}

// validateMaxLogFileSize validates the MAX_LOG_FILE_SIZE environment variable
func validateMaxLogFileSize(size int64) error {
	if size < 1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too small (min 1MB), got: %d bytes", size)
	}

	if size > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE is too large (max 1GB), got: %d bytes", size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvVars returns a list of all expected environment variables
func GetEnvVars() []string {
	return []string{
		"MEDICATIONS_CSV",
		"DISEASES_CSV",
		"OUTPUT_CSV",
		"INPUT_ENCODING",
		"ATC_COLUMN",
		"NAME_COLUMN",
		"OUTPUT_COLUMN",
		"DISEASE_ID_COLUMN",
		"DISEASE_NAME_COLUMN",
		"SAMPLE_ROWS",
		"METRICS_TEXTFILE",
		"ENV",
		"LOG_LEVEL",
		"LOG_DIR",
		"LOG_RETENTION_WEEKS",
		"MAX_LOG_FILE_SIZE",
		"PORT",
		"ADDRESS",
		"REFRESH_AT",
		"MAX_REQUEST_BODY",
		"MAX_HEADER_SIZE",
	}
}
