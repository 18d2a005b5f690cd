package config

import "os"

// Config carries everything the process reads from the environment. A
// missing DATABASE_URL is not an error here: the datastore adapter starts
// in its unavailable state and /test reports it.
type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	DatabaseName string
}

func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "local"),
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", ""),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
