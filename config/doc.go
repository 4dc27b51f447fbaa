// Package config loads service configuration with Viper.
//
// Values come from a YAML file, a .env file (via godotenv) and the process
// environment, in increasing order of precedence. Environment variables map
// onto nested keys by splitting on underscores, so PAYMENT_UPPER sets
// payment.upper. Only keys the target struct declares are bound, and
// top-level keys need the service prefix: PAYCHECK_ENVIRONMENT sets
// environment while a bare ENVIRONMENT is ignored.
//
// # Usage
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Payment PaymentConfig `yaml:"payment" mapstructure:"payment"`
//	}
//	var cfg AppConfig
//	err := config.LoadConfig("paycheck", &cfg)
package config
