// Package wire provides dependency injection for the remind application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/remind/internal/adapters/sqlite"
	"github.com/example/remind/internal/app"
	"github.com/example/remind/internal/clock"
	"github.com/example/remind/internal/config"
	"github.com/example/remind/internal/db"
	"github.com/example/remind/internal/ports/primary"
)

var (
	reminderService primary.ReminderService
	listService     primary.ListService
	statsService    primary.StatsService
	defaultListName string
	once            sync.Once
)

// ReminderService returns the singleton ReminderService instance.
func ReminderService() primary.ReminderService {
	once.Do(initServices)
	return reminderService
}

// ListService returns the singleton ListService instance.
func ListService() primary.ListService {
	once.Do(initServices)
	return listService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// DefaultListName returns the configured default list override, empty
// when none is set.
func DefaultListName() string {
	once.Do(initServices)
	return defaultListName
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		log.Fatalf("failed to resolve config path: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defaultListName = cfg.DefaultList

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err := db.Get(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store := sqlite.NewStore(database)
	clk := clock.System{}

	reminderService = app.NewReminderService(store, clk)
	listService = app.NewListService(store)
	statsService = app.NewStatsService(store, clk)
}
