package main

import (
	"fmt"

	"github.com/kbukum/paycheck/config"
	"github.com/kbukum/paycheck/observability"
	"github.com/kbukum/paycheck/payment"
)

const serviceName = "paycheck"

// AppConfig is the paycheck configuration file layout.
//
//	name: paycheck
//	logging:
//	  level: warn
//	payment:
//	  lower: 0
//	  upper: 100000
//	telemetry:
//	  endpoint: ""
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Payment              payment.Bounds       `yaml:"payment" mapstructure:"payment"`
	Telemetry            observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		ServiceConfig: config.ServiceConfig{Name: serviceName},
		Payment:       payment.DefaultBounds,
		Telemetry:     observability.DefaultConfig(serviceName),
	}
}

// ApplyDefaults fills unset fields after loading.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Environment
	}
	c.Telemetry.ApplyDefaults()
}

// Validate validates the whole configuration.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Payment.Check(); err != nil {
		return fmt.Errorf("config.payment: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}
