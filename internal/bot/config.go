package bot

import (
	"os"
	"strconv"
	"time"
)

// Config contém as configurações do bot de atendimento
type Config struct {
	// Tempos de espera para simular digitação
	TypingDelayShort  time.Duration
	TypingDelayMedium time.Duration
	TypingDelayLong   time.Duration

	// Limites
	MaxInvalidAttempts int
	InactiveTimeout    time.Duration
	CleanupInterval    time.Duration

	// Caminhos de arquivos
	StatsFilePath string
	ReportDirPath string

	// Configurações de região
	DeliveryCity string
	DeliveryFee  float64
}

// DefaultConfig retorna a configuração padrão do bot
func DefaultConfig() Config {
	return Config{
		TypingDelayShort:   500 * time.Millisecond,
		TypingDelayMedium:  1 * time.Second,
		TypingDelayLong:    2 * time.Second,
		MaxInvalidAttempts: 3,
		InactiveTimeout:    24 * time.Hour,
		CleanupInterval:    1 * time.Hour,
		StatsFilePath:      "./bot_stats.json",
		ReportDirPath:      "./reports",
		DeliveryCity:       "Guanambi-BA",
		DeliveryFee:        7.0,
	}
}

// ConfigFromEnv retorna a configuração padrão com os ajustes das variáveis
// de ambiente aplicados
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if raw := os.Getenv("BOT_MAX_INVALID_ATTEMPTS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.MaxInvalidAttempts = v
		}
	}
	if raw := os.Getenv("BOT_INACTIVE_TIMEOUT"); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			cfg.InactiveTimeout = v
		}
	}
	if raw := os.Getenv("BOT_CLEANUP_INTERVAL"); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			cfg.CleanupInterval = v
		}
	}
	if raw := os.Getenv("BOT_STATS_FILE"); raw != "" {
		cfg.StatsFilePath = raw
	}
	if raw := os.Getenv("BOT_REPORT_DIR"); raw != "" {
		cfg.ReportDirPath = raw
	}
	if raw := os.Getenv("BOT_DELIVERY_CITY"); raw != "" {
		cfg.DeliveryCity = raw
	}
	if raw := os.Getenv("BOT_DELIVERY_FEE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.DeliveryFee = v
		}
	}

	return cfg
}
