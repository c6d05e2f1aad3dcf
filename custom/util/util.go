package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/romana/rlog"
	"gopkg.in/yaml.v3"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"time"
)

const DEFAULT_CONFIG_FILE = "./config/config.yaml"

const MAX_BODY_BYTES = 1_048_576

type StoreConfig struct {
	Name   string   `yaml:"name"`
	Driver string   `yaml:"driver"`
	DSN    string   `yaml:"dsn"`
	Tables []string `yaml:"tables"`
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	Rps     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

type ServerConfig struct {
	Port            int             `yaml:"port"`
	Stores          []StoreConfig   `yaml:"stores"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	ReadTimeout     time.Duration   `yaml:"read_timeout"`
	WriteTimeout    time.Duration   `yaml:"write_timeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
}

// DefaultServerConfig keeps every entity group in its own sqlite file.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port: 3000,
		Stores: []StoreConfig{
			{Name: "cat_shop", Driver: "sqlite", DSN: "./Database/cat_shop.db", Tables: []string{"breeds", "cats"}},
			{Name: "employees", Driver: "sqlite", DSN: "./Database/employees.db", Tables: []string{"customers", "employees"}},
			{Name: "order", Driver: "sqlite", DSN: "./Database/order.db", Tables: []string{"orders"}},
			{Name: "detail", Driver: "sqlite", DSN: "./Database/detail.db", Tables: []string{"order_details"}},
		},
		RateLimit:       RateLimitConfig{Enabled: false, Rps: 2, Burst: 4},
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 20 * time.Second,
	}
}

// GetConf overlays the yaml file on the defaults. A missing file is not an error.
func (c *ServerConfig) GetConf(fileName string) (*ServerConfig, error) {
	*c = DefaultServerConfig()
	yamlFile, err := os.ReadFile(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		rlog.Warnf("Config file %s not found, using defaults", fileName)
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, errors.New("Unmarshal " + fileName + " failed: " + err.Error())
	}
	return c, nil
}

// LoadEnv reads .env files into the process environment. Missing files are ignored.
func LoadEnv(envFiles ...string) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		rlog.Warnf("Load env file failed: %s", err.Error())
	}
}

// ApplyEnv overrides the loaded config with PORT.
func (c *ServerConfig) ApplyEnv() {
	port := os.Getenv("PORT")
	if port == "" {
		return
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		rlog.Warnf("Ignore invalid PORT %q", port)
		return
	}
	c.Port = p
}

// ConfigFileName returns CONFIG_FILE or the default path.
func ConfigFileName() string {
	if name := os.Getenv("CONFIG_FILE"); name != "" {
		return name
	}
	return DEFAULT_CONFIG_FILE
}

// FetchReqObject decodes exactly one JSON value of at most MAX_BODY_BYTES into reqObj.
// Unknown fields are ignored.
func FetchReqObject(r *http.Request, reqObj interface{}) error {
	if r == nil || r.Body == nil {
		return errors.New("request body is empty")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MAX_BODY_BYTES))
	if err := dec.Decode(reqObj); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			err = errors.New("request body is empty")
		case errors.As(err, &maxBytesErr):
			err = fmt.Errorf("request body must not be larger than %d bytes", maxBytesErr.Limit)
		default:
			err = errors.New("Unmarshal request body failed: " + err.Error())
		}
		rlog.Error(err.Error())
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}
	return nil
}
