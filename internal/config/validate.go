package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateClips(); err != nil {
		return err
	}
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.Model == "" {
		return errors.New("gemini.model must be set")
	}
	if c.Gemini.UploadTimeoutSeconds <= 0 {
		return errors.New("gemini.upload_timeout_seconds must be positive")
	}
	if c.Gemini.PollIntervalSeconds <= 0 {
		return errors.New("gemini.poll_interval_seconds must be positive")
	}
	return nil
}

func (c *Config) validateClips() error {
	if c.Clips.Extension == "" {
		return errors.New("clips.extension must be set")
	}
	if strings.ContainsAny(c.Clips.Extension, "/\\") {
		return fmt.Errorf("clips.extension %q must not contain path separators", c.Clips.Extension)
	}
	if c.Clips.Parallel < 1 {
		return errors.New("clips.parallel must be at least 1")
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.Binary == "" {
		return errors.New("ffmpeg.binary must be set")
	}
	if c.FFmpeg.CutTimeoutSeconds <= 0 {
		return errors.New("ffmpeg.cut_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
}
