// Package config loads the test session settings (which API environment to
// target and with which key) and the settings of the local stub server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/guttosm/marketprobe/internal/client"
)

// Env names a target API environment.
type Env string

const (
	EnvDev   Env = "dev"
	EnvQA    Env = "qa"
	EnvProd  Env = "prod"
	EnvLocal Env = "local"
)

// Envs lists the valid environments in declaration order.
var Envs = []Env{EnvDev, EnvQA, EnvProd, EnvLocal}

const (
	EnvFile     = ".env"
	ConfigFile  = "config.yaml"
	SecretsFile = "secrets.yaml"

	// AccessKeyEnv overrides the key from secrets.yaml.
	AccessKeyEnv = "MARKETPROBE_ACCESS_KEY"
	// PlaceholderAccessKey is what secrets.yaml.example ships with.
	PlaceholderAccessKey = "YOUR_ACCESS_KEY"
)

// Error is a configuration problem that prevents a session from starting.
// Reason tells the operator what to fix.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "config: " + e.Reason + ": " + e.Err.Error()
	}
	return "config: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// Session is the immutable configuration shared by every test in a run.
type Session struct {
	Env        Env
	BaseURL    string
	APIVersion string
	AccessKey  string
}

// ClientConfig converts the session into API client settings.
func (s Session) ClientConfig() client.Config {
	return client.Config{
		BaseURL:    s.BaseURL,
		APIVersion: s.APIVersion,
		AccessKey:  s.AccessKey,
	}
}

// LoadSession reads .env, config.yaml and secrets.yaml from dir.
//
// ENV selects the section of both YAML files. Non-empty process environment
// variables take precedence over .env entries; the process environment is
// never modified.
func LoadSession(dir string) (Session, error) {
	envPath := filepath.Join(dir, EnvFile)
	dotenv, err := godotenv.Read(envPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, &Error{Reason: "the .env file is missing; create it and set the ENV variable"}
		}
		return Session{}, &Error{Reason: "cannot read " + envPath, Err: err}
	}
	lookup := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	env, err := ParseEnv(lookup("ENV"))
	if err != nil {
		return Session{}, err
	}

	section, err := readSection(filepath.Join(dir, ConfigFile), env, true)
	if err != nil {
		return Session{}, err
	}
	s := Session{
		Env:        env,
		BaseURL:    section.GetString("base_url"),
		APIVersion: section.GetString("api_version"),
	}
	var missing []string
	if s.BaseURL == "" {
		missing = append(missing, "base_url")
	}
	if s.APIVersion == "" {
		missing = append(missing, "api_version")
	}
	if len(missing) > 0 {
		return Session{}, &Error{Reason: fmt.Sprintf("%s section %q is missing keys %v", ConfigFile, env, missing)}
	}

	s.AccessKey = lookup(AccessKeyEnv)
	if s.AccessKey == "" {
		secrets, err := readSection(filepath.Join(dir, SecretsFile), env, false)
		if err != nil {
			return Session{}, err
		}
		if secrets != nil {
			s.AccessKey = strings.TrimSpace(secrets.GetString("access_key"))
		}
	}
	switch s.AccessKey {
	case "":
		return Session{}, &Error{Reason: fmt.Sprintf("no access key for %q: set access_key in %s or %s", env, SecretsFile, AccessKeyEnv)}
	case PlaceholderAccessKey:
		return Session{}, &Error{Reason: fmt.Sprintf("access key for %q is still the placeholder %s", env, PlaceholderAccessKey)}
	}

	return s, nil
}

// ParseEnv validates an ENV value.
func ParseEnv(raw string) (Env, error) {
	if raw == "" {
		return "", &Error{Reason: "the ENV variable is not set in the .env file"}
	}
	for _, e := range Envs {
		if Env(strings.ToLower(raw)) == e {
			return e, nil
		}
	}
	return "", &Error{Reason: fmt.Sprintf("invalid ENV value %q: must be one of %v", raw, Envs)}
}

// readSection loads one YAML file and returns the sub-tree for env. A missing
// optional file yields a nil section and no error.
func readSection(path string, env Env, required bool) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Reason: "cannot read " + filepath.Base(path), Err: err}
	}
	sub := v.Sub(string(env))
	if sub == nil {
		return nil, &Error{Reason: fmt.Sprintf("%s has no %q section", filepath.Base(path), env)}
	}
	return sub, nil
}
