package cfg

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var path string

func init() {
	flag.StringVar(&path, "cfg_path", "", "Path to config file")
}

type AppConfig struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"production"`
	Testing bool    `yaml:"testing" env:"TESTING" env-default:"false"`
	HttpCfg HttpCfg `yaml:"http"`
	CorsCfg CorsCfg `yaml:"cors"`
}

type HttpCfg struct {
	Host               string        `yaml:"host" env:"HTTP_HOST" env-default:"localhost"`
	Port               string        `yaml:"port" env:"HTTP_PORT" env-default:"16700"`
	ServerIdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"5s"`
	ServerWriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ServerReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	RequestTimeout     time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"15s"`
}

type CorsCfg struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	MaxAge         int      `yaml:"max_age" env:"CORS_MAX_AGE" env-default:"300"`
}

func ReadConfig() *AppConfig {
	cfgPath := cfgPath()

	cfg := new(AppConfig)
	if err := cleanenv.ReadConfig(cfgPath, cfg); err != nil {
		if envErr := cleanenv.ReadEnv(cfg); envErr != nil {
			msg := fmt.Sprintf(
				"couldn't read config data from config file or environment variables: %s: %s", err, envErr)
			panic(msg)
		}
	}
	return cfg
}

func cfgPath() string {
	if !flag.Parsed() {
		flag.Parse()
	}

	if path == "" {
		return os.Getenv("CONFIG_PATH")
	}

	return path
}
