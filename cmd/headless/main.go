// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go-td-sim/internal/app"
	"go-td-sim/internal/defs"

	"golang.org/x/sync/errgroup"
)

func main() {
	games := flag.Int("games", 4, "number of games to simulate concurrently")
	waves := flag.Int("waves", 20, "maximum number of waves per game")
	build := flag.String("build", "0:CANNON,1:CANNON,3:FROST,5:ROCKET,2:SUPPORT,4:LASER", "build orders as spot:KIND, comma separated")
	upgrade := flag.Bool("upgrade", true, "spend leftover money on upgrades")
	defsDir := flag.String("defs", "", "directory with towers.json and enemies.json (default: built-in)")
	levelPath := flag.String("level", "", "level JSON file (default: built-in)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	orders, err := parseOrders(*build)
	if err != nil {
		logger.Error("bad build orders", "error", err)
		os.Exit(2)
	}
	lib, level, err := load(*defsDir, *levelPath)
	if err != nil {
		logger.Error("failed to load game data", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]app.AutoplayResult, *games)
	g, ctx := errgroup.WithContext(ctx)
	for i := range *games {
		g.Go(func() error {
			game := app.NewGame(level, lib, logger)
			res, err := game.Autoplay(ctx, app.AutoplayOptions{
				Orders:   orders,
				MaxWaves: *waves,
				Upgrade:  *upgrade,
			})
			if err != nil {
				return fmt.Errorf("game %s: %w", game.ID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	for _, res := range results {
		logger.Info("game finished",
			"game_id", res.GameID.String(),
			"waves_survived", res.WavesSurvived,
			"lost", res.Over,
			"health", res.Health,
			"money", res.Money,
			"ticks", res.Ticks,
		)
		for _, t := range res.Towers {
			logger.Info("tower",
				"game_id", res.GameID.String(),
				"tower", t.ID,
				"kind", t.Kind,
				"level", t.Level,
				"damage", t.DamageDealt,
			)
		}
	}
}

func load(defsDir, levelPath string) (*defs.Library, *defs.Level, error) {
	var (
		lib *defs.Library
		err error
	)
	if defsDir == "" {
		lib, err = defs.DefaultLibrary()
	} else {
		lib, err = defs.LoadLibrary(defsDir)
	}
	if err != nil {
		return nil, nil, err
	}
	var level *defs.Level
	if levelPath == "" {
		level, err = defs.DefaultLevel()
	} else {
		level, err = defs.LoadLevel(levelPath)
	}
	return lib, level, err
}

// parseOrders разбирает строку вида "0:CANNON,3:FROST".
func parseOrders(s string) ([]app.BuildOrder, error) {
	var orders []app.BuildOrder
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		spot, kind, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("order %q: expected spot:KIND", item)
		}
		n, err := strconv.Atoi(spot)
		if err != nil {
			return nil, fmt.Errorf("order %q: %w", item, err)
		}
		orders = append(orders, app.BuildOrder{Spot: n, Kind: defs.TowerKind(strings.ToUpper(kind))})
	}
	return orders, nil
}
