package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	LogLevel   string
	SecretKey  string

	PostgresDSN string
	RedisAddr   string
	MongoURI    string
	MongoDB     string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string

	APIFlashKey string

	Discord Discord
}

type Discord struct {
	ClientID     string
	ClientSecret string
	BotToken     string
	ServerID     string
	RedirectURI  string
	BannedRoleID string
}

var ErrMissingSecret = errors.New("config: SECRET_KEY is required")

// Load reads .env style files (".env" when none given) and lets the process
// environment override them. A missing file is not an error.
func Load(filenames ...string) (*Config, error) {
	env, err := godotenv.Read(filenames...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed reading env file: %w", err)
		}
		env = map[string]string{}
	}

	get := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		if v, ok := env[key]; ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		ListenAddr:  get("LISTEN_ADDR", ":8080"),
		LogLevel:    get("LOG_LEVEL", "info"),
		SecretKey:   get("SECRET_KEY", ""),
		PostgresDSN: get("POSTGRES_DSN", "postgresql://localhost/guilds?sslmode=disable"),
		RedisAddr:   get("REDIS_ADDR", "redis://localhost:6379"),
		MongoURI:    get("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     get("MONGODB_DB", "guilds"),
		S3Endpoint:  get("S3_ENDPOINT", ""),
		S3AccessKey: get("S3_ACCESS_KEY", ""),
		S3SecretKey: get("S3_SECRET_KEY", ""),
		S3Bucket:    get("S3_BUCKET", ""),
		S3PublicURL: get("S3_PUBLIC_URL", ""),
		APIFlashKey: get("APIFLASH_KEY", ""),
		Discord: Discord{
			ClientID:     get("DISCORD_CLIENT_ID", ""),
			ClientSecret: get("DISCORD_CLIENT_SECRET", ""),
			BotToken:     get("DISCORD_BOT_TOKEN", ""),
			ServerID:     get("DISCORD_SERVER_ID", ""),
			RedirectURI:  get("DISCORD_REDIRECT_URI", ""),
			BannedRoleID: get("DISCORD_BANNED_ROLE_ID", ""),
		},
	}

	if cfg.S3UseSSL, err = strconv.ParseBool(get("S3_USE_SSL", "true")); err != nil {
		return nil, fmt.Errorf("config: bad S3_USE_SSL: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	return cfg, nil
}
