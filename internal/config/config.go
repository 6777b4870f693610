package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

const (
	IndexJSON  = "json"
	IndexMySQL = "mysql"

	ArtifactsFS = "fs"
	ArtifactsS3 = "s3"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	DataDir     string `yaml:"data_dir" env:"DATA_DIR" env-default:"registros"`
	FrontendDir string `yaml:"frontend_dir" env:"FRONTEND_DIR" env-default:"./frontend-dist"`
	HTTPServer  `yaml:"http_server"`
	Auth        Auth    `yaml:"auth"`
	CORS        CORS    `yaml:"cors"`
	Reports     Reports `yaml:"reports"`
	MySQL       MySQL   `yaml:"mysql"`
	S3          S3      `yaml:"s3"`

	// администратор по умолчанию, создаётся если в системе нет ни одного
	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN" env-default:"admin"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3002"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Auth struct {
	TokenSecret string        `yaml:"token_secret" env:"TOKEN_SECRET" env-required:"true"`
	TokenTTL    time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000"`
}

type Reports struct {
	Index     string `yaml:"index" env:"REPORTS_INDEX" env-default:"json"`
	Artifacts string `yaml:"artifacts" env:"REPORTS_ARTIFACTS" env-default:"fs"`
	Dir       string `yaml:"dir" env:"REPORTS_DIR" env-default:"relatorios"`
}

type MySQL struct {
	DBUser     string `yaml:"db_user" env:"DB_USER"`
	DBPassword string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost     string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"db_name" env:"DB_NAME"`
	ParseTime  bool   `yaml:"parse_time" env:"DB_PARSE_TIME" env-default:"true"`
}

type S3 struct {
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Prefix    string `yaml:"prefix" env:"S3_PREFIX"`
}

func MustConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает .env (если есть), затем yaml из CONFIG_PATH.
// Без yaml-файла конфиг собирается только из переменных окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Reports.Index {
	case IndexJSON:
	case IndexMySQL:
		if c.MySQL.DBUser == "" || c.MySQL.DBName == "" {
			return errors.New("reports.index=mysql requires mysql.db_user and mysql.db_name")
		}
	default:
		return fmt.Errorf("unknown reports.index %q", c.Reports.Index)
	}

	switch c.Reports.Artifacts {
	case ArtifactsFS:
	case ArtifactsS3:
		if c.S3.Bucket == "" {
			return errors.New("reports.artifacts=s3 requires s3.bucket")
		}
	default:
		return fmt.Errorf("unknown reports.artifacts %q", c.Reports.Artifacts)
	}

	return nil
}
