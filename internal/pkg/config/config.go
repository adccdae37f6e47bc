package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: none; the demonstration must start with an empty environment
// - default: every value, tuned for the sample hotel
// -----------------------------------------------------------------------------

type Config struct {
	Hotel   HotelConfig
	Log     LogConfig
	Loyalty LoyaltyConfig
	Billing BillingConfig
}

type HotelConfig struct {
	Name     string `envconfig:"HOTEL_NAME" default:"Royal Stay"`
	TimeZone string `envconfig:"HOTEL_TIMEZONE" default:"Asia/Dubai"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dubai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"14400"` // 4*60*60
}

type LoyaltyConfig struct {
	PointsPerNight int `envconfig:"LOYALTY_POINTS_PER_NIGHT" default:"100"`
	ExpiryDays     int `envconfig:"LOYALTY_EXPIRY_DAYS" default:"365"`
}

type BillingConfig struct {
	RefundRatioVIP float64 `envconfig:"BILLING_REFUND_RATIO_VIP" default:"0.9"`
	Currency       string  `envconfig:"BILLING_CURRENCY" default:"USD"`
}

func (c HotelConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Billing.RefundRatioVIP < 0 || c.Billing.RefundRatioVIP > 1 {
		return fmt.Errorf("BILLING_REFUND_RATIO_VIP must be within [0, 1], got %v", c.Billing.RefundRatioVIP)
	}
	if c.Loyalty.PointsPerNight < 0 {
		return fmt.Errorf("LOYALTY_POINTS_PER_NIGHT cannot be negative, got %d", c.Loyalty.PointsPerNight)
	}
	if c.Loyalty.ExpiryDays < 0 {
		return fmt.Errorf("LOYALTY_EXPIRY_DAYS cannot be negative, got %d", c.Loyalty.ExpiryDays)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Hotel: HotelConfig{
			Name:     "Royal Stay Test",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Loyalty: LoyaltyConfig{
			PointsPerNight: 100,
			ExpiryDays:     365,
		},
		Billing: BillingConfig{
			RefundRatioVIP: 0.9,
			Currency:       "USD",
		},
	}
}
