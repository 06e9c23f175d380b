// Package main is the entry point for the umbrella Art-Net driver.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/bbernstein/lacylights-umbrella/internal/config"
	"github.com/bbernstein/lacylights-umbrella/internal/database"
	"github.com/bbernstein/lacylights-umbrella/internal/database/models"
	"github.com/bbernstein/lacylights-umbrella/internal/database/repositories"
	"github.com/bbernstein/lacylights-umbrella/internal/services/demo"
	"github.com/bbernstein/lacylights-umbrella/internal/services/dmx"
	"github.com/bbernstein/lacylights-umbrella/internal/services/network"
	"github.com/bbernstein/lacylights-umbrella/internal/services/pixel"
	"github.com/bbernstein/lacylights-umbrella/pkg/artnet"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// rainbowInterval is the delay between color-wheel frames.
const rainbowInterval = 20 * time.Millisecond

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()

	if errors.Is(err, context.Canceled) {
		log.Println("Interrupted, fixtures blacked out")
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// run plays the optional image frame and the demo against cfg's destination.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.ArtNetUniverse < 0 || cfg.ArtNetUniverse > artnet.MaxUniverse {
		return fmt.Errorf("universe %d out of range 0-%d", cfg.ArtNetUniverse, artnet.MaxUniverse)
	}

	broadcast, err := network.ResolveBroadcast(cfg.ArtNetInterface, cfg.ArtNetBroadcast)
	if err != nil {
		return err
	}

	var settings *repositories.SettingRepository
	if cfg.HasSettingsStore() {
		db, err := database.Connect(database.Config{
			URL:   cfg.DatabaseURL,
			Debug: cfg.IsDevelopment(),
		})
		if err != nil {
			return err
		}
		defer func(db *gorm.DB) { _ = database.Close(db) }(db)

		settings = repositories.NewSettingRepository(db)
		// An explicit interface or ARTNET_BROADCAST wins over the saved address.
		if cfg.ArtNetInterface == "" && !cfg.ArtNetBroadcastSet {
			saved, err := settings.Value(ctx, models.SettingBroadcastAddress)
			if err != nil {
				log.Printf("Warning: failed to read saved broadcast address: %v", err)
			} else if saved != "" {
				log.Printf("📡 Loading saved Art-Net broadcast address: %s", saved)
				broadcast = saved
			}
		}
	}

	sender, err := dmx.NewSender(dmx.Config{
		BroadcastAddr:     broadcast,
		Port:              cfg.ArtNetPort,
		Universe:          uint16(cfg.ArtNetUniverse),
		FixtureCount:      cfg.FixtureCount,
		Brightness:        cfg.Brightness,
		ControlBrightness: cfg.ControlBrightness,
	})
	if err != nil {
		return err
	}
	defer func() { _ = sender.Close() }()

	if cfg.ImagePath != "" {
		frame, err := pixel.LoadFile(cfg.ImagePath)
		if err != nil {
			return err
		}
		if err := sender.SendFrame(frame); err != nil {
			return err
		}
		log.Printf("🖼️  Sent %s as a %d-byte frame", cfg.ImagePath, len(frame))
	}

	player := demo.NewPlayer(sender, cfg.DemoHold)
	err = player.Run(ctx)
	if err == nil && cfg.DemoRainbow {
		err = player.RunRainbow(ctx, rainbowInterval)
	}
	if ctx.Err() != nil {
		// A fresh send after interruption leaves the fixtures dark
		if bErr := sender.Blackout(); bErr != nil {
			log.Printf("Warning: blackout failed: %v", bErr)
		}
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	if settings != nil {
		if _, err := settings.Upsert(ctx, models.SettingBroadcastAddress, broadcast); err != nil {
			log.Printf("Warning: failed to save broadcast address: %v", err)
		}
	}

	return nil
}

// printBanner prints the startup banner.
func printBanner(cfg *config.Config) {
	fmt.Println("============================================")
	fmt.Println("  LacyLights Umbrella")
	fmt.Printf("  Version: %s\n", Version)
	fmt.Printf("  Build:   %s\n", BuildTime)
	fmt.Printf("  Commit:  %s\n", GitCommit)
	fmt.Println("============================================")
	fmt.Printf("  Environment: %s\n", cfg.Env)
	fmt.Printf("  Art-Net:     %s:%d (universe %d)\n", cfg.ArtNetBroadcast, cfg.ArtNetPort, cfg.ArtNetUniverse)
	fmt.Printf("  Fixtures:    %d\n", cfg.FixtureCount)
	if cfg.ImagePath != "" {
		fmt.Printf("  Image:       %s\n", cfg.ImagePath)
	}
	fmt.Println("============================================")
}
