package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Minio    MinioConfig
	Stream   StreamConfig
	NATS     NATSConfig
	Cleanup  CleanupConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"5000"`
	// PublicBaseURL is used to build the videoUrl field returned by the listing endpoint.
	PublicBaseURL string `envconfig:"SERVER_PUBLIC_BASE_URL" default:"http://localhost:5000"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// StorageConfig selects the chunk persistence backend. The catalog always
// lives in postgres; chunks can live in postgres rows or in an object store.
type StorageConfig struct {
	Backend string `envconfig:"STORAGE_BACKEND" default:"postgres"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" default:""`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" default:"video-chunks"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" default:""`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" default:""`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type StreamConfig struct {
	// ChunkSize is the size in bytes of one stored chunk.
	ChunkSize int64 `envconfig:"STREAM_CHUNK_SIZE" default:"1048576"`
	// DefaultSpan caps the number of bytes served per partial-content response,
	// regardless of the end the client asked for.
	DefaultSpan   int64 `envconfig:"STREAM_DEFAULT_SPAN" default:"1000000"`
	MaxUploadSize int64 `envconfig:"STREAM_MAX_UPLOAD_SIZE" default:"536870912"` // 512MB
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" required:"true"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"VIDEOS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"videos.ingested"`
}

type CleanupConfig struct {
	Every     time.Duration `envconfig:"CLEANUP_EVERY" default:"15m"`
	OrphanTTL time.Duration `envconfig:"CLEANUP_ORPHAN_TTL" default:"1h"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
