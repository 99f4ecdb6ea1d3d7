package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"reelsync/config"
	"reelsync/internal/cache"
	"reelsync/services/imdb"
	"reelsync/services/syncer"
	"reelsync/services/trakt"
)

func main() {
	configPath := os.Getenv("REELSYNC_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation.
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	if settings.Trakt.ClientID == "" || settings.Trakt.ClientSecret == "" {
		log.Fatalf("trakt client credentials missing; set trakt.clientId and trakt.clientSecret in %s", configPath)
	}
	if settings.Trakt.AccessKey == "" {
		log.Fatalf("trakt access key missing; set trakt.accessKey to an 8-character pin or a refresh token")
	}

	client := trakt.NewClient(settings.Trakt.ClientID, settings.Trakt.ClientSecret)
	token, err := client.Authenticate(settings.Trakt.AccessKey)
	if err != nil {
		log.Fatalf("trakt login failed: %v", err)
	}

	// Persist the refresh token so the pin is only needed once.
	if token.RefreshToken != "" && token.RefreshToken != settings.Trakt.AccessKey {
		settings.Trakt.AccessKey = token.RefreshToken
		if err := cfgManager.Save(settings); err != nil {
			log.Printf("Warning: could not persist refresh token: %v", err)
		}
	}

	responseCache := cache.New(settings.Cache.Dir)
	responseCache.SetExpiry(time.Duration(settings.Cache.ExpiryDays) * 24 * time.Hour)
	svc := syncer.New(client, responseCache)

	if settings.Import.RatingsCSV != "" {
		records, err := imdb.ReadListFile(settings.Import.RatingsCSV)
		if err != nil {
			log.Fatalf("read ratings export: %v", err)
		}
		outcome, err := svc.SyncRatings(records)
		if err != nil {
			log.Fatalf("sync ratings: %v", err)
		}
		report("ratings", outcome)

		if settings.Import.MarkWatched {
			outcome, err := svc.MarkWatched(records)
			if err != nil {
				log.Fatalf("mark watched: %v", err)
			}
			report("watched", outcome)
		}
	}

	if settings.Import.WatchlistCSV != "" {
		records, err := imdb.ReadListFile(settings.Import.WatchlistCSV)
		if err != nil {
			log.Fatalf("read watchlist export: %v", err)
		}
		outcome, err := svc.SyncWatchlist(records)
		if err != nil {
			log.Fatalf("sync watchlist: %v", err)
		}
		report("watchlist", outcome)
	}
}

func report(name string, o *syncer.Outcome) {
	fmt.Printf("%s: %d considered, %d added, %d existing, %d skipped, %d unresolved, %d not found\n",
		name, o.Considered, o.Added, o.Existing, o.Skipped, o.Unresolved, o.NotFound)
}
