package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v8"
)

const validationTagName = "validate"

// LoadConfig reads, decodes and validates the TOML configuration found at the provided path
func LoadConfig(relativePath string) (*Config, error) {
	path, err := filepath.Abs(relativePath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create absolute path for the config file")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open config file")
	}
	defer func() {
		_ = f.Close()
	}()

	cfg := &Config{}
	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode config file %s", path)
	}

	err = CheckConfig(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckConfig validates the value constraints declared on the configuration structures
func CheckConfig(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	validate := validator.New(&validator.Config{TagName: validationTagName})
	err := validate.Struct(cfg)
	if err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}
