package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		StatsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Pricing коэффициенты тарифа, настраиваются оператором без релиза.
	Pricing struct {
		BaseFare    float64
		PerKm       float64
		PerKg       float64
		AvgSpeedKmh float64

		LowFactor    float64
		MediumFactor float64
		HighFactor   float64
		UrgentFactor float64
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		StatusChanged StatusChanged
	}

	StatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Pricing  Pricing
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_STATS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pricing, err := loadPricing()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StatsRefreshInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Pricing: pricing,
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				StatusChanged: StatusChanged{
					ProcessTimeout: statusChangedTimeout,
				},
			},
		},
	}, nil
}

// Дефолты тарифа применяются когда переменная не задана,
// нулевые и отрицательные значения валидация не пропускает.
const (
	defaultBaseFare    = 30.0
	defaultPerKm       = 8.0
	defaultPerKg       = 5.0
	defaultAvgSpeedKmh = 25.0

	defaultLowFactor    = 0.8
	defaultMediumFactor = 1.0
	defaultHighFactor   = 1.2
	defaultUrgentFactor = 1.5
)

func loadPricing() (Pricing, error) {
	baseFare, err := osGetFloat("PRICING_BASE_FARE", defaultBaseFare)
	if err != nil {
		return Pricing{}, err
	}
	perKm, err := osGetFloat("PRICING_PER_KM", defaultPerKm)
	if err != nil {
		return Pricing{}, err
	}
	perKg, err := osGetFloat("PRICING_PER_KG", defaultPerKg)
	if err != nil {
		return Pricing{}, err
	}
	avgSpeed, err := osGetFloat("PRICING_AVG_SPEED_KMH", defaultAvgSpeedKmh)
	if err != nil {
		return Pricing{}, err
	}
	low, err := osGetFloat("PRICING_FACTOR_LOW", defaultLowFactor)
	if err != nil {
		return Pricing{}, err
	}
	medium, err := osGetFloat("PRICING_FACTOR_MEDIUM", defaultMediumFactor)
	if err != nil {
		return Pricing{}, err
	}
	high, err := osGetFloat("PRICING_FACTOR_HIGH", defaultHighFactor)
	if err != nil {
		return Pricing{}, err
	}
	urgent, err := osGetFloat("PRICING_FACTOR_URGENT", defaultUrgentFactor)
	if err != nil {
		return Pricing{}, err
	}

	return Pricing{
		BaseFare:     baseFare,
		PerKm:        perKm,
		PerKg:        perKg,
		AvgSpeedKmh:  avgSpeed,
		LowFactor:    low,
		MediumFactor: medium,
		HighFactor:   high,
		UrgentFactor: urgent,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Pricing.BaseFare <= 0 || cfg.Pricing.PerKm <= 0 || cfg.Pricing.PerKg <= 0 {
		return errors.New("PRICING_BASE_FARE, PRICING_PER_KM and PRICING_PER_KG must be positive")
	}
	if cfg.Pricing.AvgSpeedKmh <= 0 {
		return errors.New("PRICING_AVG_SPEED_KMH must be positive")
	}
	if cfg.Pricing.LowFactor <= 0 || cfg.Pricing.MediumFactor <= 0 ||
		cfg.Pricing.HighFactor <= 0 || cfg.Pricing.UrgentFactor <= 0 {
		return errors.New("priority factors must be positive")
	}

	if cfg.Tasks.StatsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATS_REFRESH_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.StatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
