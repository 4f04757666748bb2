package executor

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/model"
	"gopkg.in/ini.v1"
)

// Provider kinds.
const (
	ProviderLocal = "local"
	ProviderRPC   = "rpc"
)

// Config is the node configuration file.
type Config struct {
	Node     NodeConfig     `ini:"node"`
	Database DatabaseConfig `ini:"database"`
	Upstream UpstreamConfig `ini:"upstream"`
	Archive  ArchiveConfig  `ini:"archive"`
	Server   ServerConfig   `ini:"server"`
}

type NodeConfig struct {
	Network model.Network `ini:"network"`
	// Provider selects where queries are answered: the local store or the
	// upstream node.
	Provider  string `ini:"provider"`
	Workers   int    `ini:"workers"`
	QueueSize int    `ini:"queue_size"`
}

type DatabaseConfig struct {
	Directory string `ini:"directory"`
}

type UpstreamConfig struct {
	Host     string `ini:"host"`
	User     string `ini:"user"`
	Password string `ini:"password"`
	// Sync follows the upstream node into the local store.
	Sync     bool   `ini:"sync"`
	Workers  int    `ini:"workers"`
	Window   int    `ini:"window"`
	Mempool  bool   `ini:"mempool"`
	BlockZMQ string `ini:"block_zmq"`
}

type ArchiveConfig struct {
	ClickhouseDSN string        `ini:"clickhouse_dsn"`
	FlushSize     int           `ini:"flush_size"`
	FlushInterval time.Duration `ini:"flush_interval"`
	RPS           int           `ini:"rps"`
}

type ServerConfig struct {
	GRPCAddr string `ini:"grpc_addr"`
	HTTPAddr string `ini:"http_addr"`
}

// DefaultConfig returns the configuration used for absent keys.
func DefaultConfig() Config {
	return Config{
		Node: NodeConfig{
			Network:   model.Mainnet,
			Provider:  ProviderLocal,
			Workers:   4,
			QueueSize: 256,
		},
		Database: DatabaseConfig{
			Directory: "blockchain",
		},
		Upstream: UpstreamConfig{
			Host:    "127.0.0.1:8332",
			Workers: 8,
			Window:  64,
		},
		Archive: ArchiveConfig{
			FlushSize:     100,
			FlushInterval: 5 * time.Second,
			RPS:           10,
		},
	}
}

// LoadConfig reads an ini file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := file.MapTo(&cfg); err != nil {
		return Config{}, fmt.Errorf("map config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports inconsistent settings.
func (c Config) Validate() error {
	if _, err := chain.ParamsForNetwork(c.Node.Network); err != nil {
		return err
	}
	switch c.Node.Provider {
	case ProviderLocal:
		if c.Database.Directory == "" {
			return errors.New("database directory is required")
		}
	case ProviderRPC:
		if c.Upstream.Host == "" {
			return errors.New("upstream host is required by the rpc provider")
		}
		if c.Upstream.Sync {
			return errors.New("upstream sync needs the local provider")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Node.Provider)
	}
	if c.Archive.ClickhouseDSN != "" && !c.Upstream.Sync {
		return errors.New("archive needs upstream sync")
	}
	return nil
}

// StorePath is the block store file inside the database directory.
func (c Config) StorePath() string {
	return filepath.Join(c.Database.Directory, "chain.db")
}
