package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/osse101/Daymon_Go/internal/config"
	"github.com/osse101/Daymon_Go/internal/database"
	"github.com/osse101/Daymon_Go/internal/database/postgres"
	"github.com/osse101/Daymon_Go/internal/eventlog"
)

// debug dumps one player's hatchery rows and recent events
func main() {
	nickname := flag.String("player", "", "player nickname")
	events := flag.Int("events", 10, "number of recent events to show")
	flag.Parse()
	if *nickname == "" {
		log.Fatal("usage: debug -player <nickname>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewHatcheryRepository(dbPool)
	player, err := repo.GetPlayerByNickname(ctx, *nickname)
	if err != nil {
		log.Fatalf("Failed to load player %s: %v", *nickname, err)
	}

	fmt.Println("--- Player ---")
	fmt.Printf("ID: %s, Nickname: %s, Gold: %d, Mood: %s, Unlocked: %v\n",
		player.ID, player.Nickname, player.Gold, player.Mood, player.UnlockedIncubatorSlots)

	records, err := repo.ListMonsters(ctx, player.ID)
	if err != nil {
		log.Fatalf("Failed to list monsters: %v", err)
	}

	fmt.Println("\n--- Monsters ---")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tELEMENT\tHATCHED\tSTARTED\tLEVEL\tID")
	for _, r := range records {
		started, level := "-", "-"
		if r.HatchingStartedAt != nil {
			started = r.HatchingStartedAt.Format("2006-01-02 15:04")
		}
		if r.Level != nil {
			level = fmt.Sprint(*r.Level)
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\n", r.Location, r.Element, r.IsHatched, started, level, r.ID)
	}
	tw.Flush()

	entries, err := eventlog.NewService(postgres.NewEventLogRepository(dbPool)).History(ctx, player.ID, *events)
	if err != nil {
		log.Printf("Failed to load events: %v", err)
		return
	}
	fmt.Println("\n--- Recent events ---")
	for _, e := range entries {
		fmt.Printf("%s  %-32s %v\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.EventType, e.Payload)
	}
}
