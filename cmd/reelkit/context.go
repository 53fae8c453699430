package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"reelkit/internal/config"
	"reelkit/internal/logging"
	"reelkit/internal/runner"
	"reelkit/internal/services/dcpomatic"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = logger
	})
	return c.log
}

func (c *commandContext) executor() (runner.Executor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	opts := []runner.Option{
		runner.WithTimeout(time.Duration(cfg.Tools.TimeoutSeconds) * time.Second),
	}
	if cfg.Lock.Enabled {
		opts = append(opts, runner.WithLock(cfg.Lock.Path))
	}
	return runner.New(opts...), nil
}

func (c *commandContext) kdmGenerator() (*dcpomatic.KDMGenerator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	exec, err := c.executor()
	if err != nil {
		return nil, err
	}
	return dcpomatic.NewKDMGenerator(
		dcpomatic.WithBinary(cfg.Tools.KDMBinary),
		dcpomatic.WithExecutor(exec),
		dcpomatic.WithLogger(c.logger()),
	), nil
}

func (c *commandContext) dcpCreator() (*dcpomatic.DCPCreator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	exec, err := c.executor()
	if err != nil {
		return nil, err
	}
	return dcpomatic.NewDCPCreator(
		dcpomatic.WithBinary(cfg.Tools.DCPBinary),
		dcpomatic.WithExecutor(exec),
		dcpomatic.WithLogger(c.logger()),
	), nil
}

func (c *commandContext) projectCreator() (*dcpomatic.ProjectCreator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	exec, err := c.executor()
	if err != nil {
		return nil, err
	}
	return dcpomatic.NewProjectCreator(
		dcpomatic.WithBinary(cfg.Tools.CreateBinary),
		dcpomatic.WithExecutor(exec),
		dcpomatic.WithLogger(c.logger()),
	), nil
}
