package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Провайдеры календаря
const (
	ProviderGoogle = "google"
	ProviderLocal  = "local"
)

// Config конфигурация сервиса. Загружается один раз при старте и дальше
// не изменяется; перезагрузка конфигурации — это перезапуск сервиса.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Calendar     CalendarConfig     `toml:"calendar"`
	Database     DatabaseConfig     `toml:"database"`
	WorkingHours WorkingHoursConfig `toml:"working_hours"`
	Slots        SlotsConfig        `toml:"slots"`
	Preferences  PreferencesConfig  `toml:"preferences"`
	Search       SearchConfig       `toml:"search"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig настройки источника занятости календаря.
// Provider: "google" — Google Calendar API (service account),
// "local" — собственная таблица записей в PostgreSQL.
type CalendarConfig struct {
	Provider        string `toml:"provider"`
	CalendarID      string `toml:"calendar_id"`
	CredentialsPath string `toml:"credentials_path"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

// DatabaseConfig настройки подключения к PostgreSQL (провайдер "local")
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// WorkingHoursConfig недельный шаблон рабочих часов
type WorkingHoursConfig struct {
	Days     []string `toml:"days"`
	Open     string   `toml:"open"`
	Close    string   `toml:"close"`
	Timezone string   `toml:"timezone"`
}

// SlotsConfig настройки длительности слота
type SlotsConfig struct {
	DurationMinutes int `toml:"duration_minutes"`
}

// PreferencesConfig границы окон времени суток
type PreferencesConfig struct {
	MorningEnd   string `toml:"morning_end"`
	EveningStart string `toml:"evening_start"`
}

// SearchConfig параметры поиска ближайших слотов
type SearchConfig struct {
	HorizonDays  int `toml:"horizon_days"`
	DefaultCount int `toml:"default_count"`
	MaxCount     int `toml:"max_count"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "availability-service",
		},
		Calendar: CalendarConfig{
			Provider:       ProviderLocal,
			CalendarID:     "primary",
			TimeoutSeconds: 5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		WorkingHours: WorkingHoursConfig{
			Days:     []string{"mon", "tue", "wed", "thu", "fri"},
			Open:     "09:00",
			Close:    "18:00",
			Timezone: "Europe/Athens",
		},
		Slots: SlotsConfig{
			DurationMinutes: domain.DefaultSlotDurationMinutes,
		},
		Preferences: PreferencesConfig{
			MorningEnd:   domain.DefaultMorningEnd,
			EveningStart: domain.DefaultEveningStart,
		},
		Search: SearchConfig{
			HorizonDays:  domain.DefaultSearchHorizonDays,
			DefaultCount: domain.DefaultNextSlotsCount,
			MaxCount:     domain.MaxNextSlotsCount,
		},
	}
}

func (c *Config) validate() error {
	switch c.Calendar.Provider {
	case ProviderGoogle:
		if c.Calendar.CredentialsPath == "" {
			return fmt.Errorf("config: calendar.credentials_path is required for the google provider")
		}
	case ProviderLocal:
		if c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database.user and database.dbname are required for the local provider")
		}
	default:
		return fmt.Errorf("config: unknown calendar.provider %q (expected %q or %q)",
			c.Calendar.Provider, ProviderGoogle, ProviderLocal)
	}

	if c.Calendar.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: calendar.timeout_seconds must be positive")
	}
	if c.Search.HorizonDays <= 0 || c.Search.DefaultCount <= 0 || c.Search.MaxCount <= 0 {
		return fmt.Errorf("config: search.horizon_days, search.default_count and search.max_count must be positive")
	}
	if c.Search.DefaultCount > c.Search.MaxCount {
		return fmt.Errorf("config: search.default_count must not exceed search.max_count")
	}

	// Политики собираются здесь же, чтобы ошибки конфигурации
	// проявлялись на старте, а не на первом запросе
	if _, err := c.WorkingHoursPolicy(); err != nil {
		return err
	}
	if err := c.SlotPolicy().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.PreferenceWindows(); err != nil {
		return err
	}

	return nil
}

// WorkingHoursPolicy собирает доменную политику рабочих часов
func (c *Config) WorkingHoursPolicy() (domain.WorkingHoursPolicy, error) {
	loc, err := time.LoadLocation(c.WorkingHours.Timezone)
	if err != nil {
		return domain.WorkingHoursPolicy{}, fmt.Errorf("config: invalid working_hours.timezone %q: %w", c.WorkingHours.Timezone, err)
	}

	days := make([]time.Weekday, 0, len(c.WorkingHours.Days))
	for _, name := range c.WorkingHours.Days {
		day, err := parseWeekday(name)
		if err != nil {
			return domain.WorkingHoursPolicy{}, err
		}
		days = append(days, day)
	}

	open, err := types.NewTimeStringFromString(c.WorkingHours.Open)
	if err != nil {
		return domain.WorkingHoursPolicy{}, fmt.Errorf("config: invalid working_hours.open: %w", err)
	}
	close, err := types.NewTimeStringFromString(c.WorkingHours.Close)
	if err != nil {
		return domain.WorkingHoursPolicy{}, fmt.Errorf("config: invalid working_hours.close: %w", err)
	}

	policy := domain.WorkingHoursPolicy{
		Days:     days,
		Open:     open,
		Close:    close,
		Location: loc,
	}
	if err := policy.Validate(); err != nil {
		return domain.WorkingHoursPolicy{}, fmt.Errorf("config: %w", err)
	}

	return policy, nil
}

// SlotPolicy собирает доменную политику длительности слота
func (c *Config) SlotPolicy() domain.SlotPolicy {
	return domain.SlotPolicy{DurationMinutes: c.Slots.DurationMinutes}
}

// PreferenceWindows собирает границы окон времени суток
func (c *Config) PreferenceWindows() (domain.PreferenceWindows, error) {
	morningEnd, err := types.NewTimeStringFromString(c.Preferences.MorningEnd)
	if err != nil {
		return domain.PreferenceWindows{}, fmt.Errorf("config: invalid preferences.morning_end: %w", err)
	}
	eveningStart, err := types.NewTimeStringFromString(c.Preferences.EveningStart)
	if err != nil {
		return domain.PreferenceWindows{}, fmt.Errorf("config: invalid preferences.evening_start: %w", err)
	}

	windows := domain.PreferenceWindows{MorningEnd: morningEnd, EveningStart: eveningStart}
	if err := windows.Validate(); err != nil {
		return domain.PreferenceWindows{}, fmt.Errorf("config: %w", err)
	}

	return windows, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mon", "monday":
		return time.Monday, nil
	case "tue", "tuesday":
		return time.Tuesday, nil
	case "wed", "wednesday":
		return time.Wednesday, nil
	case "thu", "thursday":
		return time.Thursday, nil
	case "fri", "friday":
		return time.Friday, nil
	case "sat", "saturday":
		return time.Saturday, nil
	case "sun", "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("config: unknown weekday %q", name)
	}
}
