package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/brightshine-detailing/scheduler-service/internal/domain"
	"github.com/brightshine-detailing/scheduler-service/pkg/types"
)

// Config is the service configuration loaded from config.toml.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Business Business `toml:"business"`
}

// Server HTTP server settings, timeouts in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database PostgreSQL connection settings.
type Database struct {
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

// DSN builds the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs logger settings.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics Prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Business shop scheduling configuration. Working days use Go weekday
// numbering, 0=Sunday through 6=Saturday.
type Business struct {
	WorkingHoursStart  string `toml:"working_hours_start"`
	WorkingHoursEnd    string `toml:"working_hours_end"`
	LunchStart         string `toml:"lunch_start"`
	LunchEnd           string `toml:"lunch_end"`
	WorkingDays        []int  `toml:"working_days"`
	AdvanceBookingDays int    `toml:"advance_booking_days"`
	SameDayBooking     bool   `toml:"same_day_booking"`
}

// ToBusinessSettings converts the section into validated domain settings.
func (b Business) ToBusinessSettings() (domain.BusinessSettings, error) {
	settings := domain.BusinessSettings{
		WorkingHours: domain.WorkingHours{
			Start:      types.TimeString(b.WorkingHoursStart),
			End:        types.TimeString(b.WorkingHoursEnd),
			LunchStart: types.TimeString(b.LunchStart),
			LunchEnd:   types.TimeString(b.LunchEnd),
		},
		WorkingDays:        make(map[time.Weekday]bool, len(b.WorkingDays)),
		AdvanceBookingDays: b.AdvanceBookingDays,
		SameDayBooking:     b.SameDayBooking,
	}

	for _, day := range b.WorkingDays {
		if day < 0 || day > 6 {
			return domain.BusinessSettings{}, fmt.Errorf("config: invalid working day %d, expected 0-6", day)
		}
		settings.WorkingDays[time.Weekday(day)] = true
	}

	if err := settings.Validate(); err != nil {
		return domain.BusinessSettings{}, fmt.Errorf("config: invalid business settings: %w", err)
	}

	return settings, nil
}

// Load reads and validates the configuration file. The business section is
// validated here so an unusable calendar refuses startup instead of
// surfacing later inside the scheduling engine.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if _, err := cfg.Business.ToBusinessSettings(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
