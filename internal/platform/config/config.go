package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"

	ModeDev     = "dev"
	ModeRelease = "release"
)

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	StaticDir       string        `yaml:"static_dir"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type LibraryConfig struct {
	DefaultCaller string `yaml:"default_caller"`
	Seed          bool   `yaml:"seed"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Config struct {
	Version     string        `yaml:"version"`
	Mode        string        `yaml:"mode"`
	Server      ServerConfig  `yaml:"server"`
	CORS        CORSConfig    `yaml:"cors"`
	Library     LibraryConfig `yaml:"library"`
	Certificate Certs         `yaml:"certificate"`
}

// TLSEnabled は証明書と鍵の両方が設定されている場合のみ true
func (c *Config) TLSEnabled() bool {
	return c.Certificate.Cert != "" && c.Certificate.Key != ""
}

func Default() Config {
	return Config{
		Version: "1",
		Mode:    ModeDev,
		Server: ServerConfig{
			Addr:            ":5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS:    CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
		Library: LibraryConfig{DefaultCaller: "guest"},
	}
}

// Load reads the YAML file at path, then applies .env and environment
// overrides. A missing file is not an error: defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// デフォルトのまま
	default:
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}

	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env の読み込み失敗: %w", err)
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("MODE")); v != "" {
		cfg.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("CATALOG_DEFAULT_CALLER")); v != "" {
		cfg.Library.DefaultCaller = v
	}
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDev, ModeRelease, c.Mode)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Library.DefaultCaller == "" {
		return errors.New("library.default_caller is required")
	}
	if (c.Certificate.Cert == "") != (c.Certificate.Key == "") {
		return errors.New("certificate.cert and certificate.key must be set together")
	}
	return nil
}
