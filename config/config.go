package config

import (
	"path/filepath"

	"github.com/innovcell/ic_events/environment"

	"go.uber.org/config"
)

// directory the config files are loaded from, relative to the working directory
var configDir = "."

// EmailConfig is a struct to store configuration for outgoing emails
type EmailConfig struct {
	NoreplyEmailAddr             string `yaml:"noreply_email_addr"`
	NoreplyEmailName             string `yaml:"noreply_email_name"`
	TeamInviteEmailSubj          string `yaml:"team_invite_email_subj"`
	VerificationOutcomeEmailSubj string `yaml:"verification_outcome_email_subj"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name              string      `yaml:"name"`
	AppURL            string      `yaml:"app_url"`
	AuthTokenLifetime int64       `yaml:"auth_token_lifetime"`
	Email             EmailConfig `yaml:"email"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configFiles := []config.YAMLOption{config.File(filepath.Join(configDir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
