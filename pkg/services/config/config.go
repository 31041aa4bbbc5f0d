package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Environment string

const (
	EnvironmentTest       Environment = "test"
	EnvironmentProduction Environment = "production"
)

// EnvironmentFromEnv selects the target environment from the ENV
// variable. Anything other than "production" means test.
func EnvironmentFromEnv() Environment {
	if os.Getenv("ENV") == string(EnvironmentProduction) {
		return EnvironmentProduction
	}
	return EnvironmentTest
}

// Profile holds the base URLs and credentials for the upstream
// services. Values absent from the profile file fall back to the
// environment's fixed endpoints.
type Profile struct {
	AccountServiceURL   string `mapstructure:"account_service_url"`
	InsuranceServiceURL string `mapstructure:"insurance_service_url"`
	PaymentServiceURL   string `mapstructure:"payment_service_url"`
	BillingServiceURL   string `mapstructure:"billing_service_url"`
	APIKey              string `mapstructure:"api_key"`
}

func defaults(env Environment) map[string]string {
	host := "apis.test.emil.de"
	if env == EnvironmentProduction {
		host = "apis.emil.de"
	}
	return map[string]string{
		"account_service_url":   fmt.Sprintf("https://%s/accountsvc/v1", host),
		"insurance_service_url": fmt.Sprintf("https://%s/insurancesvc/v1", host),
		"payment_service_url":   fmt.Sprintf("https://%s/paymentsvc/v1", host),
		"billing_service_url":   fmt.Sprintf("https://%s/billingsvc/v1", host),
	}
}

// Resolve loads the profile for the given environment. With an empty
// path it looks for an optional emil.yaml in the working directory; a
// missing file is fine, the environment defaults apply.
func Resolve(profilePath string, env Environment) (*Profile, error) {
	v := viper.New()

	for key, value := range defaults(env) {
		v.SetDefault(key, value)
	}

	if profilePath != "" {
		v.SetConfigFile(profilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
	} else {
		v.SetConfigName("emil")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read profile file: %w", err)
			}
		}
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}
