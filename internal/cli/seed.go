package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iliyamo/globetrotter/internal/config"
	"github.com/iliyamo/globetrotter/internal/database"
	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
)

var seedFile string

// SeedFile mirrors the TOML layout: repeated [[city]] and [[activity]]
// tables. avg_cost is optional on activities; an absent value is stored
// as NULL and counts as zero in budget estimates.
type SeedFile struct {
	Cities     []CitySeed     `toml:"city"`
	Activities []ActivitySeed `toml:"activity"`
}

type CitySeed struct {
	Name            string `toml:"name"`
	Country         string `toml:"country"`
	CostIndex       int    `toml:"cost_index"`
	PopularityScore int    `toml:"popularity_score"`
}

type ActivitySeed struct {
	Name          string `toml:"name"`
	Category      string `toml:"category"`
	AvgCost       *int64 `toml:"avg_cost"`
	DurationHours int    `toml:"duration_hours"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load city and activity reference data from a TOML file",
	Long:  `Parse a TOML seed file and insert its cities and activities into the store.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var seed SeedFile
		if _, err := toml.DecodeFile(seedFile, &seed); err != nil {
			return fmt.Errorf("parse %s: %w", seedFile, err)
		}
		if err := validateSeed(&seed); err != nil {
			return err
		}

		_ = godotenv.Load()
		dbc := config.LoadDB()
		db, err := database.Open(dbc.User, dbc.Pass, dbc.Host, dbc.Port, dbc.Name)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}

		cities := repository.NewCityRepo(db)
		activities := repository.NewActivityRepo(db)

		for _, cs := range seed.Cities {
			city := &model.City{
				Name:            cs.Name,
				Country:         cs.Country,
				CostIndex:       cs.CostIndex,
				PopularityScore: cs.PopularityScore,
			}
			if err := cities.Create(ctx, city); err != nil {
				return fmt.Errorf("insert city %q: %w", cs.Name, err)
			}
			infoColor.Printf("city %-20s id=%d\n", city.Name, city.ID)
		}
		for _, as := range seed.Activities {
			act := &model.Activity{
				Name:          as.Name,
				Category:      as.Category,
				AvgCost:       as.AvgCost,
				DurationHours: as.DurationHours,
			}
			if err := activities.Create(ctx, act); err != nil {
				return fmt.Errorf("insert activity %q: %w", as.Name, err)
			}
			infoColor.Printf("activity %-16s id=%d\n", act.Name, act.ID)
		}

		okColor.Printf("seeded %d cities, %d activities\n", len(seed.Cities), len(seed.Activities))
		return nil
	},
}

// validateSeed rejects entries that would be useless reference data.
func validateSeed(s *SeedFile) error {
	for i, c := range s.Cities {
		if c.Name == "" || c.Country == "" {
			return fmt.Errorf("city #%d: name and country are required", i+1)
		}
	}
	for i, a := range s.Activities {
		if a.Name == "" || a.Category == "" {
			return fmt.Errorf("activity #%d: name and category are required", i+1)
		}
		if a.AvgCost != nil && *a.AvgCost < 0 {
			return fmt.Errorf("activity #%d: avg_cost must not be negative", i+1)
		}
	}
	return nil
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.toml", "path to the TOML seed file")
}
