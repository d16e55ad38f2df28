package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		PathPrefix  string `mapstructure:"path_prefix"` // Optional, can be used to set a base path for the application
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	MongoConfig struct {
		URI            string `mapstructure:"uri"`
		Database       string `mapstructure:"database"`
		ReplicaSet     string `mapstructure:"replicaSet"`
		AuthSource     string `mapstructure:"authSource"`
		Username       string `mapstructure:"username"`
		Password       string `mapstructure:"password"`
		ConnectTimeout int    `mapstructure:"connect_timeout"`
		MaxPoolSize    uint64 `mapstructure:"max_pool_size"`
		MinPoolSize    uint64 `mapstructure:"min_pool_size"`
		SocketTimeout  int    `mapstructure:"socket_timeout"`
	}

	AuthConfig struct {
		Secret          string `mapstructure:"secret"`
		TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
		CookieName      string `mapstructure:"cookie_name"`
		CookieMaxAge    int    `mapstructure:"cookie_max_age"` // seconds
		CookieDomain    string `mapstructure:"cookie_domain"`
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}

	CacheConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		Type       string `mapstructure:"type"` // LRU or REDIS
		Capacity   int    `mapstructure:"capacity"`
		DefaultTTL int    `mapstructure:"default_ttl"` // seconds
	}

	RedisConfig struct {
		Type       string `mapstructure:"type"` // NORMAL or SENTINEL
		Addrs      string `mapstructure:"addrs"`
		MasterName string `mapstructure:"master_name"`
		Password   string `mapstructure:"password"`
	}

	MetricsConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}
)

type Env struct {
	AppConfig     AppConfig     `mapstructure:"app"`
	LoggerConfig  LoggerConfig  `mapstructure:"logging"`
	MongoConfig   MongoConfig   `mapstructure:"mongo"`
	AuthConfig    AuthConfig    `mapstructure:"auth"`
	CORSConfig    CORSConfig    `mapstructure:"cors"`
	CacheConfig   CacheConfig   `mapstructure:"cache"`
	RedisConfig   RedisConfig   `mapstructure:"redis"`
	MetricsConfig MetricsConfig `mapstructure:"metrics"`
}

var env Env
var envLoaded bool

func loadEnv() Env {
	// Set up viper to read the config.yaml file
	viper.SetConfigName("config")   // Config file name without extension
	viper.SetConfigType("yaml")     // Config file type
	viper.AddConfigPath("./config") // Look for the config file in the current directory

	/*
	   AutomaticEnv will check for an environment variable any time a viper.Get request is made.
	   It will apply the following rules.
	       It will check for an environment variable with a name matching the key uppercased and prefixed with the EnvPrefix if set.
	*/
	viper.AutomaticEnv()
	viper.SetEnvPrefix("env") // will be uppercased automatically
	viper.SetEnvKeyReplacer(
		strings.NewReplacer(".", "_"),
	) // this is useful e.g. want to use . in Get() calls, but environmental variables to use _ delimiters (e.g. app.port -> APP_PORT)

	err := viper.ReadInConfig() // Read the config file
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	// Secrets never ship in the config file; bind them to plain env vars.
	viper.BindEnv("auth.secret", "SECRET")
	viper.BindEnv("mongo.username", "DB_USER")
	viper.BindEnv("mongo.password", "DB_PASS")
	viper.BindEnv("app.port", "PORT")

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	env.LoggerConfig.Environment = env.AppConfig.Environment // Set the logger environment from app config
	if env.AppConfig.Environment == "production" {
		env.LoggerConfig.Level = "info" // Default to info level in production
	}

	applyDefaults(&env)
	requireSecrets(&env)

	printStartupConfig(&env)

	return env
}

func applyDefaults(env *Env) {
	if env.AuthConfig.TokenTTLMinutes <= 0 {
		env.AuthConfig.TokenTTLMinutes = 60
	}
	if env.AuthConfig.CookieName == "" {
		env.AuthConfig.CookieName = "token"
	}
	if env.AuthConfig.CookieMaxAge <= 0 {
		// The original deployment paired a 1h token with a 1-day cookie.
		env.AuthConfig.CookieMaxAge = 24 * 60 * 60
	}
	if env.MongoConfig.Database == "" {
		env.MongoConfig.Database = "skillwavesDB"
	}
}

// requireSecrets aborts startup when a secret has neither a config value nor
// an environment binding. There are no defaults for these.
func requireSecrets(env *Env) {
	if env.AuthConfig.Secret == "" {
		log.Fatal("auth.secret (SECRET) is required")
	}
	if env.MongoConfig.URI == "" && (env.MongoConfig.Username == "" || env.MongoConfig.Password == "") {
		log.Fatal("mongo credentials (DB_USER/DB_PASS) or mongo.uri are required")
	}
}

func GetEnv() *Env {
	if envLoaded {
		return &env
	}
	env = loadEnv()
	envLoaded = true
	return &env
}

func printStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %s\n", "Mongo Database", env.MongoConfig.Database)

	fmt.Println(line)
}
