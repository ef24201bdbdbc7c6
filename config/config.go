package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Scheduler    Scheduler
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Scheduler struct {
	// Timezone for the daily jobs, e.g. "Africa/Mogadishu". Empty means
	// the server's local time.
	Timezone string
	// DailyChallengeQuestions is the flat-sample size for the generated
	// daily challenge.
	DailyChallengeQuestions int
	// MockExamSweepQuestions is the per-subject question count for the
	// nightly mock exam sweep. Zero disables the sweep.
	MockExamSweepQuestions int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SCHEDULER_DAILY_CHALLENGE_QUESTIONS", 10)
	viper.SetDefault("SCHEDULER_MOCK_EXAM_SWEEP_QUESTIONS", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Scheduler.Timezone = viper.GetString("SCHEDULER_TIMEZONE")
	config.Scheduler.DailyChallengeQuestions = viper.GetInt("SCHEDULER_DAILY_CHALLENGE_QUESTIONS")
	config.Scheduler.MockExamSweepQuestions = viper.GetInt("SCHEDULER_MOCK_EXAM_SWEEP_QUESTIONS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
