package config

import (
	"errors"
	"fmt"

	"olexsmir.xyz/whenwords/humanize"
)

func (c Config) validate() error {
	var errs []error

	if err := checkPort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %w", err))
	}

	if err := humanize.ValidateTimezone(c.Defaults.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("defaults.timezone: %w", err))
	}

	if c.Defaults.MaxUnits < 1 {
		errs = append(errs, fmt.Errorf("defaults.max_units must be at least 1, got %d", c.Defaults.MaxUnits))
	}

	if c.Repo.Dir != "" && !isDirExists(c.Repo.Dir) {
		errs = append(errs, fmt.Errorf("repo.dir seems to be an invalid path"))
	}

	if _, err := humanize.ParseDuration(c.Cache.Activity); err != nil {
		errs = append(errs, fmt.Errorf("cache.activity: invalid duration format: %w", err))
	}

	return errors.Join(errs...)
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", port)
	}
	return nil
}
