package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Пустой секрет генерируется при первом запуске и хранится в state.json.
	JWTSecret  string
	ServerHost string
	ServerPort string

	LogFormat   string
	LogColors   bool
	HistoryDays int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	dataDir := getEnv("TASKBAR_DATA_DIR", defaultDataDir())

	return &Config{
		DataDir:     dataDir,
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", filepath.Join(dataDir, "daily_stats.db")),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "taskbar"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		ServerHost:  getEnv("SERVER_HOST", "127.0.0.1"),
		ServerPort:  getEnv("SERVER_PORT", "8765"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogColors:   getEnvBool("LOG_COLORS", true),
		HistoryDays: getEnvInt("HISTORY_DAYS", 365),
	}, nil
}

// Пути к документам в каталоге данных.
func (c *Config) SelectionPath() string { return filepath.Join(c.DataDir, "selection.json") }
func (c *Config) SessionsPath() string  { return filepath.Join(c.DataDir, "sessions.json") }
func (c *Config) SettingsPath() string  { return filepath.Join(c.DataDir, "settings.json") }
func (c *Config) StatePath() string     { return filepath.Join(c.DataDir, "state.json") }
func (c *Config) HostPath() string      { return filepath.Join(c.DataDir, "host.json") }

// Addr возвращает адрес, на котором слушает сервер.
func (c *Config) Addr() string { return c.ServerHost + ":" + c.ServerPort }

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskbar"
	}
	return filepath.Join(home, ".taskbar")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
