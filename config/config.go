package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultSubjects is the canonical, ordered list of tracked subjects.
var DefaultSubjects = []string{
	"Computer Programming",
	"Object Oriented Programming",
	"Data Structures and Algorithms",
	"Design and Analysis of Algorithms",
	"Database Systems",
	"Software Engineering",
	"Web Programming",
	"Operating System",
	"Computer Organization and Architecture",
	"Data Communication and Computer Networking",
	"Computer Security",
	"Network and System Administration",
	"Introduction to Artificial Intelligence",
	"Automata and Complexity Theory",
	"Compiler Design",
}

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	Study        Study
	LogLevel     string
	GeminiApiKey string
	GeminiModel  string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Study struct {
	Subjects            []string
	MaxPlannedQuestions int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("SQLITE_PATH", "studytrack.db")
	viper.SetDefault("ANALYTICS_CACHE_TTL", "5m")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("MAX_PLANNED_QUESTIONS", 35)
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.TTL = viper.GetDuration("ANALYTICS_CACHE_TTL")

	config.Study.Subjects = parseSubjects(viper.GetString("STUDY_SUBJECTS"))
	config.Study.MaxPlannedQuestions = viper.GetInt("MAX_PLANNED_QUESTIONS")
	if config.Study.MaxPlannedQuestions <= 0 {
		config.Study.MaxPlannedQuestions = 35
	}

	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Bool("redis_enabled", config.Redis.Addr != "").
		Bool("gemini_enabled", config.GeminiApiKey != "").
		Int("subjects", len(config.Study.Subjects)).
		Msg("Config loaded")
	return &config, nil
}

// parseSubjects reads a comma-separated subject list, falling back to
// DefaultSubjects when raw is blank.
func parseSubjects(raw string) []string {
	var subjects []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	if len(subjects) == 0 {
		return append([]string(nil), DefaultSubjects...)
	}
	return subjects
}
