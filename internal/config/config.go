package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml2 "github.com/pelletier/go-toml/v2"

	"github.com/elevensolutions/whits/internal/errors"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "whits.toml"

	// UserConfigFile is the user configuration file relative to the XDG
	// config directory.
	UserConfigFile = "whits/config.toml"

	// EnvPrefix prefixes environment overrides, e.g. WHITS_SERVE_PORT.
	EnvPrefix = "WHITS_"

	// DefaultPort is the default preview server port.
	DefaultPort = 4040

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSource is the default document directory.
	DefaultSource = "pages"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	PublishDir = "dir"
	PublishS3  = "s3"
)

// Config is the complete whits.toml configuration.
type Config struct {
	Source  SourceConfig  `koanf:"source" toml:"source"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Render  RenderConfig  `koanf:"render" toml:"render"`
	Publish PublishConfig `koanf:"publish" toml:"publish"`
	Serve   ServeConfig   `koanf:"serve" toml:"serve"`
	Log     LogConfig     `koanf:"log" toml:"log"`

	// path is the project file the config was loaded from, if any.
	path string
}

// SourceConfig locates the documents to render.
type SourceConfig struct {
	// Dir is the directory searched recursively for documents.
	Dir string `koanf:"dir" toml:"dir" comment:"Directory searched for documents"`
}

// OutputConfig controls where rendered files are written.
type OutputConfig struct {
	Dir string `koanf:"dir" toml:"dir" comment:"Directory for rendered pages"`
}

// RenderConfig holds defaults applied to documents that do not set them.
type RenderConfig struct {
	// Doctype is written before root documents. Empty omits it.
	Doctype string `koanf:"doctype" toml:"doctype"`

	// RootTag wraps document content. Empty renders fragments.
	RootTag string `koanf:"root" toml:"root"`

	// RootAttributes are set on the root element.
	RootAttributes map[string]string `koanf:"rootattributes" toml:"rootattributes,omitempty"`
}

// PublishConfig selects the output sink.
type PublishConfig struct {
	// Target is "dir" or "s3".
	Target   string `koanf:"target" toml:"target" comment:"dir or s3"`
	Bucket   string `koanf:"bucket" toml:"bucket,omitempty"`
	Prefix   string `koanf:"prefix" toml:"prefix,omitempty"`
	Region   string `koanf:"region" toml:"region,omitempty"`
	Endpoint string `koanf:"endpoint" toml:"endpoint,omitempty"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Host string `koanf:"host" toml:"host"`
	Port int    `koanf:"port" toml:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Verbosity is 0 (warn) to 3 (trace).
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Source: SourceConfig{Dir: DefaultSource},
		Output: OutputConfig{Dir: DefaultOutput},
		Render: RenderConfig{
			Doctype: "<!DOCTYPE html>",
			RootTag: "html",
		},
		Publish: PublishConfig{Target: PublishDir},
		Serve:   ServeConfig{Host: DefaultHost, Port: DefaultPort},
	}
}

func defaults() map[string]any {
	d := New()
	return map[string]any{
		"source.dir":     d.Source.Dir,
		"output.dir":     d.Output.Dir,
		"render.doctype": d.Render.Doctype,
		"render.root":    d.Render.RootTag,
		"publish.target": d.Publish.Target,
		"serve.host":     d.Serve.Host,
		"serve.port":     d.Serve.Port,
		"log.verbosity":  d.Log.Verbosity,
	}
}

// userConfigPath finds the user configuration file. It returns "" when
// there is none.
var userConfigPath = func() string {
	path, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		return ""
	}
	return path
}

// Load reads configuration from the defaults, the user config file, the
// project file and the environment, later layers overriding earlier ones.
//
// path names the project file. When empty, whits.toml in the working
// directory is used if it exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}

	// 2. User config
	if user := userConfigPath(); user != "" {
		if err := k.Load(file.Provider(user), toml.Parser()); err != nil {
			return nil, errors.New(errors.CodeConfigLoad).WithFile(user).Wrap(err)
		}
	}

	// 3. Project config
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.New(errors.CodeConfigLoad).WithFile(path).Wrap(err)
		}
	} else if explicit {
		return nil, errors.New(errors.CodeConfigLoad).
			WithFile(path).
			WithDetail("The configuration file given with --config does not exist.").
			Wrap(err)
	} else {
		path = ""
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.New(errors.CodeConfigLoad).Wrap(err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	if path != "" {
		cfg.path, _ = filepath.Abs(path)
	}
	return &cfg, cfg.Validate()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Source.Dir == "" {
		return errors.New(errors.CodeConfigInvalid).WithDetail("source.dir must not be empty")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("serve.port must be between 0 and 65535")
	}
	switch c.Publish.Target {
	case PublishDir:
		if c.Output.Dir == "" {
			return errors.New(errors.CodeConfigInvalid).WithDetail("output.dir must not be empty")
		}
		if Within(c.OutputPath(), c.SourcePath()) {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("output.dir must not contain source.dir").
				WithSuggestion("Pick an output directory outside the documents, such as \"dist\"")
		}
	case PublishS3:
		if c.Publish.Bucket == "" {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("publish.bucket is required when publish.target is s3")
		}
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail(fmt.Sprintf("publish.target must be %q or %q, got %q", PublishDir, PublishS3, c.Publish.Target))
	}
	return nil
}

// SaveTo writes the configuration as TOML.
func (c *Config) SaveTo(path string) error {
	data, err := toml2.Marshal(c)
	if err != nil {
		return errors.New(errors.CodeConfigSave).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeConfigSave).WithFile(path).Wrap(err)
	}
	c.path = path
	return nil
}

// Path returns the project file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory relative paths resolve against: the directory
// of the project file, or "" for the working directory.
func (c *Config) Dir() string {
	if c.path == "" {
		return ""
	}
	return filepath.Dir(c.path)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// SourcePath returns the document directory.
func (c *Config) SourcePath() string {
	return c.resolve(c.Source.Dir)
}

// OutputPath returns the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Dir)
}

// Address returns the preview server listen address.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// Within reports whether path is dir or lies below it.
func Within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Exists reports whether dir contains a project file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
