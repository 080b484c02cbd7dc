package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	Planner   PlannerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DBConfig holds the Oracle connection settings. Driver selects between
// the pure Go driver ("oracle") and the cgo driver ("godror").
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Env   string
	Level string
	// File enables a rotating JSON log file next to stdout when set.
	File string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

// StoreConfig selects the key-value backend analyses are persisted to:
// "memory", "redis" or "oracle".
type StoreConfig struct {
	Driver string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// PlannerConfig exposes the study-plan engine constants.
type PlannerConfig struct {
	TargetDate            string
	StrictOptions         bool
	RedistributeRemainder bool

	HighEfficiencyCutoff            float64
	StrengthCutoff                  float64
	WeaknessCutoff                  float64
	OverallRecommendationCutoff     float64
	FocusRecommendationCutoff       float64
	ConsistencyRecommendationCutoff float64
	RetentionReviewCutoff           float64

	FocusBlockCutoff          float64
	HighFocusBlockHours       float64
	LowFocusBlockHours        float64
	RestBlockHours            float64
	DefaultStudyHours         float64
	DefaultConcentrationHours float64

	HighEfficiencyFractions []float64
	StandardFractions       []float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)

	v.SetDefault("db.driver", "oracle")
	v.SetDefault("db.port", 1521)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("jwt.access_token_ttl", "1h")

	v.SetDefault("store.driver", "memory")

	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("planner.target_date", "2025-06-21")
	v.SetDefault("planner.strict_options", false)
	v.SetDefault("planner.redistribute_remainder", false)
	v.SetDefault("planner.high_efficiency_cutoff", 0.8)
	v.SetDefault("planner.strength_cutoff", 0.8)
	v.SetDefault("planner.weakness_cutoff", 0.7)
	v.SetDefault("planner.overall_recommendation_cutoff", 0.8)
	v.SetDefault("planner.focus_recommendation_cutoff", 0.75)
	v.SetDefault("planner.consistency_recommendation_cutoff", 0.8)
	v.SetDefault("planner.retention_review_cutoff", 0.8)
	v.SetDefault("planner.focus_block_cutoff", 0.8)
	v.SetDefault("planner.high_focus_block_hours", 2.0)
	v.SetDefault("planner.low_focus_block_hours", 1.5)
	v.SetDefault("planner.rest_block_hours", 0.5)
	v.SetDefault("planner.default_study_hours", 6.0)
	v.SetDefault("planner.default_concentration_hours", 2.0)
	v.SetDefault("planner.high_efficiency_fractions", []float64{0.2, 0.3, 0.3, 0.2})
	v.SetDefault("planner.standard_fractions", []float64{0.3, 0.25, 0.25, 0.2})
}

// LoadConfig reads config.yaml (if present), applies APP_* environment
// overrides and falls back to built-in defaults for everything else.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
			File:  v.GetString("logger.file"),
		},
		JWT: JWTConfig{
			SecretKey:      v.GetString("jwt.secret_key"),
			AccessTokenTTL: v.GetDuration("jwt.access_token_ttl"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		Planner: PlannerConfig{
			TargetDate:                      v.GetString("planner.target_date"),
			StrictOptions:                   v.GetBool("planner.strict_options"),
			RedistributeRemainder:           v.GetBool("planner.redistribute_remainder"),
			HighEfficiencyCutoff:            v.GetFloat64("planner.high_efficiency_cutoff"),
			StrengthCutoff:                  v.GetFloat64("planner.strength_cutoff"),
			WeaknessCutoff:                  v.GetFloat64("planner.weakness_cutoff"),
			OverallRecommendationCutoff:     v.GetFloat64("planner.overall_recommendation_cutoff"),
			FocusRecommendationCutoff:       v.GetFloat64("planner.focus_recommendation_cutoff"),
			ConsistencyRecommendationCutoff: v.GetFloat64("planner.consistency_recommendation_cutoff"),
			RetentionReviewCutoff:           v.GetFloat64("planner.retention_review_cutoff"),
			FocusBlockCutoff:                v.GetFloat64("planner.focus_block_cutoff"),
			HighFocusBlockHours:             v.GetFloat64("planner.high_focus_block_hours"),
			LowFocusBlockHours:              v.GetFloat64("planner.low_focus_block_hours"),
			RestBlockHours:                  v.GetFloat64("planner.rest_block_hours"),
			DefaultStudyHours:               v.GetFloat64("planner.default_study_hours"),
			DefaultConcentrationHours:       v.GetFloat64("planner.default_concentration_hours"),
			HighEfficiencyFractions:         floatSlice(v.Get("planner.high_efficiency_fractions")),
			StandardFractions:               floatSlice(v.Get("planner.standard_fractions")),
		},
	}

	if len(cfg.Planner.HighEfficiencyFractions) != 4 || len(cfg.Planner.StandardFractions) != 4 {
		return nil, fmt.Errorf("planner phase fractions must list exactly 4 values")
	}
	if _, err := time.Parse("2006-01-02", cfg.Planner.TargetDate); err != nil {
		return nil, fmt.Errorf("invalid planner.target_date %q: %w", cfg.Planner.TargetDate, err)
	}

	return cfg, nil
}

// floatSlice accepts the shapes viper hands back for a list: a []float64
// default, a []interface{} from YAML or a comma separated env string.
func floatSlice(raw interface{}) []float64 {
	switch val := raw.(type) {
	case []float64:
		return val
	case []interface{}:
		out := make([]float64, 0, len(val))
		for _, item := range val {
			var f float64
			if _, err := fmt.Sscan(fmt.Sprint(item), &f); err != nil {
				return nil
			}
			out = append(out, f)
		}
		return out
	case string:
		parts := strings.Split(val, ",")
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			var f float64
			if _, err := fmt.Sscan(strings.TrimSpace(p), &f); err != nil {
				return nil
			}
			out = append(out, f)
		}
		return out
	default:
		return nil
	}
}

// GetDSN builds the connection string for the configured Oracle driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == "godror" {
		connectString := fmt.Sprintf("%s:%d/%s", c.DB.Host, c.DB.Port, c.DB.DBName)
		return fmt.Sprintf("user=\"%s\" password=\"%s\" connectString=\"%s\"", c.DB.User, c.DB.Password, connectString)
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
