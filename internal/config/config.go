package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Configはアプリ全体の設定。サービスごとに使う項目だけ参照する。
type Config struct {
	AppEnv   string // dev / prod
	LogLevel string

	GRPCAddr string // gRPCサービスの待ち受け
	HTTPAddr string // gatewayの待ち受け
	OpsAddr  string // /healthz /metrics 用

	StoreDriver string
	Postgres    Postgres

	CatalogAddr    string
	CartAddr       string
	OrderAddr      string
	CatalogTimeout time.Duration // カタログ参照の上限時間
	RPCTimeout     time.Duration // gatewayからの呼び出し上限

	KafkaBrokers     []string
	OrderEventsTopic string

	ShutdownTimeout time.Duration
}

type Postgres struct {
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	SSLMode      string
	MaxOpenConns int
}

// DATABASE_URL があればそれを使い、無ければ key=value 形式のDSNを組み立てる
func (p Postgres) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode,
	)
}

// Loadは .env（あれば）と環境変数から設定を読む。
// defGRPCAddr はサービスごとの既定ポート。
func Load(defGRPCAddr string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	pgPort, err := getenvInt("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxConns, err := getenvInt("POSTGRES_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	catalogTimeout, err := getenvDuration("CATALOG_TIMEOUT", 3*time.Second)
	if err != nil {
		return Config{}, err
	}
	rpcTimeout, err := getenvDuration("RPC_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:   getenv("APP_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		GRPCAddr: normalizeAddr(getenv("GRPC_ADDR", defGRPCAddr)),
		HTTPAddr: normalizeAddr(getenv("HTTP_ADDR", ":3000")),
		OpsAddr:  normalizeAddr(getenv("OPS_ADDR", ":9090")),

		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", StoreDriverPostgres)),
		Postgres: Postgres{
			URL:          os.Getenv("DATABASE_URL"),
			Host:         getenv("POSTGRES_HOST", "localhost"),
			Port:         pgPort,
			User:         getenv("POSTGRES_USER", "postgres"),
			Password:     getenv("POSTGRES_PASSWORD", "postgres"),
			DB:           getenv("POSTGRES_DB", "shop"),
			SSLMode:      getenv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns: maxConns,
		},

		CatalogAddr:    getenv("CATALOG_ADDR", "localhost:50051"),
		OrderAddr:      getenv("ORDER_ADDR", "localhost:50052"),
		CartAddr:       getenv("CART_ADDR", "localhost:50054"),
		CatalogTimeout: catalogTimeout,
		RPCTimeout:     rpcTimeout,

		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		OrderEventsTopic: getenv("ORDER_EVENTS_TOPIC", "orders.created"),

		ShutdownTimeout: shutdownTimeout,
	}

	//必須チェック
	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, cfg.StoreDriver)
	}
	if cfg.CatalogTimeout <= 0 {
		return Config{}, fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

// "8080" -> ":8080"
func normalizeAddr(v string) string {
	if v != "" && !strings.Contains(v, ":") {
		return ":" + v
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
