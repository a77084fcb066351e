package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultMongoURI = "mongodb://localhost:27017/topphysics"
	DefaultDBName   = "topphysics"
	DefaultFile     = "env.config"
)

type Config struct {
	MongoURI string
	DBName   string
}

// UnreadableError reports a config file that could not be read or parsed.
// It is a warning: LoadConfig still returns a usable Config.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// lookup picks the first non-empty value from the file, then the process
// environment, then the fallback.
func lookup(file map[string]string, key, fallback string) string {
	if v := file[key]; v != "" {
		return v
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig resolves MONGO_URI and DB_NAME. A missing or malformed file is
// returned as *UnreadableError together with the env/default resolution.
func LoadConfig(path string) (Config, error) {
	var warn error

	file, err := godotenv.Read(path)
	if err != nil {
		warn = &UnreadableError{Path: path, Err: err}
		file = map[string]string{}
	}

	cfg := Config{
		MongoURI: lookup(file, "MONGO_URI", DefaultMongoURI),
		DBName:   lookup(file, "DB_NAME", DefaultDBName),
	}
	return cfg, warn
}
