// Package config loads the settings for a contract test run.
//
// Settings are layered, each layer overriding the previous one: built-in defaults, an optional
// YAML file, an optional dotenv file, the process environment, and finally explicit overrides
// from the command line.
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/msa-platform/comment-contract-tests/commenttests"
	"github.com/msa-platform/comment-contract-tests/framework"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "http://localhost:8083"

// Environment variable names.
const (
	EnvBaseURL         = "COMMENT_SERVICE_URL"
	EnvFrontendBaseURL = "REACT_APP_COMMENT_SERVICE_URL"
	EnvTimeout         = "COMMENT_TEST_TIMEOUT"
	EnvPostID          = "COMMENT_TEST_POST_ID"
	EnvNumericPostID   = "COMMENT_TEST_NUMERIC_POST_ID"
	EnvCommentID       = "COMMENT_TEST_COMMENT_ID"
	EnvUserID          = "COMMENT_TEST_USER_ID"
	EnvUserName        = "COMMENT_TEST_USER_NAME"
	EnvUnknownPath     = "COMMENT_TEST_UNKNOWN_PATH"
)

// Config holds the settings for a run.
type Config struct {
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	PostID        string        `yaml:"post_id"`
	NumericPostID string        `yaml:"numeric_post_id"`
	CommentID     string        `yaml:"comment_id"`
	UserID        string        `yaml:"user_id"`
	UserName      string        `yaml:"user_name"`
	UnknownPath   string        `yaml:"unknown_path"`
}

// Overrides are values set explicitly on the command line. Zero values mean "not set".
type Overrides struct {
	BaseURL string
	Timeout time.Duration
}

type Options struct {
	// File is a YAML config file. It is optional, but if it is named it must exist.
	File string
	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile   string
	Overrides Overrides
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func Default() Config {
	p := commenttests.DefaultParams()
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       framework.DefaultRequestTimeout,
		PostID:        p.PostID,
		NumericPostID: p.FrontendPostID,
		CommentID:     p.CommentID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		UnknownPath:   p.UnknownPath,
	}
}

// Load builds the configuration from all layers and validates it.
func Load(opts Options) (Config, error) {
	cfg := Default()

	if opts.File != "" {
		if err := cfg.readYAML(opts.File); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return Config{}, err
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}); err != nil {
		return Config{}, err
	}

	if opts.Overrides.BaseURL != "" {
		cfg.BaseURL = opts.Overrides.BaseURL
	}
	if opts.Overrides.Timeout != 0 {
		cfg.Timeout = opts.Overrides.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read env file %s", path)
	}
	return values, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvFrontendBaseURL); ok && value != "" {
		c.BaseURL = value
	}
	fields := []struct {
		key    string
		target *string
	}{
		{EnvBaseURL, &c.BaseURL},
		{EnvPostID, &c.PostID},
		{EnvNumericPostID, &c.NumericPostID},
		{EnvCommentID, &c.CommentID},
		{EnvUserID, &c.UserID},
		{EnvUserName, &c.UserName},
		{EnvUnknownPath, &c.UnknownPath},
	}
	for _, s := range fields {
		if value, ok := lookup(s.key); ok && value != "" {
			*s.target = value
		}
	}
	if value, ok := lookup(EnvTimeout); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvTimeout)
		}
		c.Timeout = d
	}
	return nil
}

// Validate reports the first problem with the configuration, if any.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid base URL %q", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf("base URL %q must use http or https", c.BaseURL)
	}
	if u.Host == "" {
		return errors.Newf("base URL %q has no host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.Newf("timeout must be positive, got %s", c.Timeout)
	}
	for _, required := range []struct{ name, value string }{
		{"post_id", c.PostID},
		{"numeric_post_id", c.NumericPostID},
		{"comment_id", c.CommentID},
		{"user_id", c.UserID},
	} {
		if strings.TrimSpace(required.value) == "" {
			return errors.Newf("%s must not be empty", required.name)
		}
	}
	if !strings.HasPrefix(c.UnknownPath, "/") {
		return errors.Newf("unknown_path %q must start with /", c.UnknownPath)
	}
	return nil
}

// Params returns the identifiers that the test cases use.
func (c Config) Params() commenttests.Params {
	p := commenttests.DefaultParams()
	p.PostID = c.PostID
	p.FrontendPostID = c.NumericPostID
	p.CommentID = c.CommentID
	p.UserID = c.UserID
	p.UserName = c.UserName
	p.UnknownPath = c.UnknownPath
	return p
}
