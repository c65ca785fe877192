package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB credentials)
// - default: Values common across all environments (slot layout, tariff, timeouts)
// An empty DB_HOST / LEGACY_DB_HOST disables that tier (offline mode).
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	LegacyDB LegacyDBConfig
	CORS     CORSConfig
	Log      LogConfig
	Parking  ParkingConfig
	Tariff   TariffConfig
	Store    StoreConfig
	Scan     ScanConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parking"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"parkingdb"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

// LegacyDBConfig points at the older parking_spots layout still running at some sites.
type LegacyDBConfig struct {
	Host     string `envconfig:"LEGACY_DB_HOST"`
	Port     string `envconfig:"LEGACY_DB_PORT" default:"5432"`
	User     string `envconfig:"LEGACY_DB_USER" default:"parking"`
	Password string `envconfig:"LEGACY_DB_PASSWORD"`
	DBName   string `envconfig:"LEGACY_DB_NAME" default:"parkingdb"`
	SSLMode  string `envconfig:"LEGACY_DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"LEGACY_DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type ParkingConfig struct {
	SlotPrefix string `envconfig:"PARKING_SLOT_PREFIX" default:"A"`
	SlotCount  int    `envconfig:"PARKING_SLOT_COUNT" default:"20"`
	// slot:vehicle pairs occupied before any booking is restored
	Occupied map[string]string `envconfig:"PARKING_OCCUPIED" default:"A1:TN01XX1001,A2:TN01XX1002,A3:TN01XX1003,A4:TN01XX1004,A5:TN01XX1005"`
}

type TariffConfig struct {
	// hour:rate pairs; each band applies from its starting hour onward
	Bands         map[int]int64 `envconfig:"TARIFF_BANDS" default:"1:4000,3:3000,7:2000"`
	DailyCapCents int64         `envconfig:"TARIFF_DAILY_CAP_CENTS" default:"50000"`
}

type StoreConfig struct {
	TierTimeout time.Duration `envconfig:"STORE_TIER_TIMEOUT" default:"3s"`
}

type ScanConfig struct {
	Interval time.Duration `envconfig:"SCAN_INTERVAL" default:"100ms"`
	SpoolDir string        `envconfig:"SCAN_SPOOL_DIR" default:"/var/spool/parking-camera"`
	Timeout  time.Duration `envconfig:"SCAN_TIMEOUT" default:"0s"`
}

func (c *DBConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

func (c LegacyDBConfig) AsDBConfig() DBConfig {
	return DBConfig(c)
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Parking.SlotCount <= 0 {
		return Config{}, fmt.Errorf("PARKING_SLOT_COUNT must be positive, got %d", cfg.Parking.SlotCount)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Parking: ParkingConfig{
			SlotPrefix: "A",
			SlotCount:  20,
			Occupied: map[string]string{
				"A1": "TN01XX1001", "A2": "TN01XX1002", "A3": "TN01XX1003",
				"A4": "TN01XX1004", "A5": "TN01XX1005",
			},
		},
		Tariff: TariffConfig{
			Bands:         map[int]int64{1: 4000, 3: 3000, 7: 2000},
			DailyCapCents: 50000,
		},
		Store: StoreConfig{
			TierTimeout: time.Second,
		},
		Scan: ScanConfig{
			Interval: 10 * time.Millisecond,
		},
	}
}
