package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const DefaultPort = 8000
const DefaultDBName = "mrm"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	News    NewsConfig    `yaml:"news"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NewsConfig drives the outbound NewsData.io request. RSSURL is an optional
// secondary source consulted when no API key is configured; leaving it empty
// (the default) means the static sample list is used instead.
type NewsConfig struct {
	Query     string `yaml:"query"`
	Countries string `yaml:"countries"`
	Language  string `yaml:"language"`
	Limit     int    `yaml:"limit"`
	RSSURL    string `yaml:"rss_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := defaults()
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	}
	config = &c
}

func defaults() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		News: NewsConfig{
			Query:     "cybersecurity",
			Countries: "us,gb,ca",
			Language:  "en",
			Limit:     12,
		},
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// MongoURI returns the document-store connection string. An empty value means
// the store is absent and the service runs in disabled mode.
func MongoURI() string {
	return os.Getenv("DATABASE_URL")
}

func MongoDBName() string {
	if name := os.Getenv("MONGODB_DB"); name != "" {
		return name
	}
	return DefaultDBName
}

// NewsAPIKey checks the two historical variable names; the first one set wins.
func NewsAPIKey() string {
	if key := os.Getenv("NEWSDATA_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("NEWSAPI_KEY")
}

func Port() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
	}
	return DefaultPort
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
