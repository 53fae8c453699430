package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTools(); err != nil {
		return err
	}
	if err := c.normalizeLock(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTools() error {
	c.Tools.KDMBinary = strings.TrimSpace(c.Tools.KDMBinary)
	if c.Tools.KDMBinary == "" {
		c.Tools.KDMBinary = defaultKDMBinary
	}
	c.Tools.DCPBinary = strings.TrimSpace(c.Tools.DCPBinary)
	if c.Tools.DCPBinary == "" {
		c.Tools.DCPBinary = defaultDCPBinary
	}
	c.Tools.CreateBinary = strings.TrimSpace(c.Tools.CreateBinary)
	if c.Tools.CreateBinary == "" {
		c.Tools.CreateBinary = defaultCreateBinary
	}

	// Bare names resolve on PATH; anything with a separator expands.
	for name, field := range map[string]*string{
		"tools.kdm_binary":    &c.Tools.KDMBinary,
		"tools.dcp_binary":    &c.Tools.DCPBinary,
		"tools.create_binary": &c.Tools.CreateBinary,
	} {
		if !strings.ContainsAny(*field, "/\\~") {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizeLock() error {
	c.Lock.Path = strings.TrimSpace(c.Lock.Path)
	if c.Lock.Path == "" {
		c.Lock.Path = defaultLockPath
	}
	expanded, err := expandPath(c.Lock.Path)
	if err != nil {
		return fmt.Errorf("lock.path: %w", err)
	}
	c.Lock.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
