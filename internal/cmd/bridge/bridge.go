// Package bridge parses bridge command flags and runs the MCP stdio server.
package bridge

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/louisbranch/wyvernbridge/internal/platform/config"
	"github.com/louisbranch/wyvernbridge/internal/platform/otel"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/service"
)

// Config holds bridge command configuration.
type Config struct {
	Addr string `env:"WYVERNS_GAME_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "game server address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the bridge. The address must resolve before serving; a game
// server that is down is fine, a nonsense address is not.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "bridge")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	if _, err := net.ResolveTCPAddr("tcp", cfg.Addr); err != nil {
		return fmt.Errorf("resolve game server address %s: %w", cfg.Addr, err)
	}

	return service.Run(ctx, cfg.Addr)
}
