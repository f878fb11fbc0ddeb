package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Text search configuration used for search_vector and queries
	SearchLanguage string `yaml:"SEARCH_LANGUAGE"`

	// Application
	AppPort string `yaml:"APP_PORT"`
	LogMode string `yaml:"LOG_MODE"`
	LogFile string `yaml:"LOG_FILE"`
}

var defaults = map[string]string{
	"DB_USER":         "recipe_user",
	"DB_NAME":         "recipe_db",
	"DB_PASSWORD":     "recipe_pass",
	"DB_PORT":         "5432",
	"DB_HOST":         "localhost",
	"SEARCH_LANGUAGE": "russian",
	"APP_PORT":        "8000",
	"LOG_MODE":        "development",
	"LOG_FILE":        "./logs/app.log",
}

var config Config

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s, falling back to environment\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves key from config.yaml, then the environment, then the
// built-in default.
func GetConfig(key string) string {
	if v := fromFile(key); v != "" {
		return v
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaults[key]
}

func fromFile(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SEARCH_LANGUAGE":
		return config.SearchLanguage
	case "APP_PORT":
		return config.AppPort
	case "LOG_MODE":
		return config.LogMode
	case "LOG_FILE":
		return config.LogFile
	default:
		return ""
	}
}
