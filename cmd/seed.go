package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
)

// seedHabit is one activity a profile practises.
type seedHabit struct {
	name string
	// chance is the probability of completing it on a weekday.
	chance float64
	// weekend overrides chance on Saturdays and Sundays; negative keeps chance.
	weekend float64
}

// profile describes a persona for generating sample history.
type profile struct {
	description string
	daysBack    int
	habits      []seedHabit
}

var profiles = map[string]profile{
	"steady": {
		description: "Keeps most habits going nearly every day (~1 year)",
		daysBack:    365,
		habits: []seedHabit{
			{name: "Read", chance: 0.9, weekend: -1},
			{name: "Meditate", chance: 0.8, weekend: -1},
			{name: "Stretch", chance: 0.7, weekend: -1},
		},
	},
	"weekend-warrior": {
		description: "Exercises mostly on weekends (~6 months)",
		daysBack:    180,
		habits: []seedHabit{
			{name: "Run", chance: 0.15, weekend: 0.85},
			{name: "Climb", chance: 0.05, weekend: 0.6},
			{name: "Cook", chance: 0.3, weekend: 0.7},
		},
	},
	"workday": {
		description: "Weekday routines, weekends off (~3 months)",
		daysBack:    90,
		habits: []seedHabit{
			{name: "Inbox zero", chance: 0.75, weekend: 0},
			{name: "Walk at lunch", chance: 0.6, weekend: 0.1},
			{name: "Journal", chance: 0.5, weekend: 0.5},
		},
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed [profile]",
	Short: "Seed the tracker with realistic sample data",
	Long: `Populate the tracker with activities and a completion history that
simulate an active user.

Available profiles:
  steady          - Keeps most habits going nearly every day (~1 year)
  weekend-warrior - Exercises mostly on weekends (~6 months)
  workday         - Weekday routines, weekends off (~3 months)

If no profile is specified, "steady" is used. Activities that already exist
by name are reused.`,
	Example: `  daila seed
  daila seed weekend-warrior
  daila seed --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listProfiles, _ := cmd.Flags().GetBool("list")
		if listProfiles {
			writeProfiles(os.Stdout)
			return nil
		}

		profileName := "steady"
		if len(args) > 0 {
			profileName = args[0]
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return seedRun(os.Stdout, profileName, rng)
	},
}

func writeProfiles(w io.Writer) {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available profiles:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %s\n", name, profiles[name].description)
	}
}

func seedRun(w io.Writer, profileName string, rng *rand.Rand) error {
	p, ok := profiles[profileName]
	if !ok {
		return fmt.Errorf("unknown profile %q (run 'daila seed --list' to see available profiles)", profileName)
	}

	reg, log, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	byName := make(map[string]activity.ID)
	for _, t := range reg.List() {
		byName[t.Name] = t.ID
	}

	typesCreated, recordsCreated := 0, 0
	today := calendar.FromTime(now())
	start := today.AddDays(-p.daysBack)
	for _, h := range p.habits {
		id, exists := byName[h.name]
		if !exists {
			id = reg.Create(h.name)
			typesCreated++
		}
		for day := start; !day.After(today); day = day.Next() {
			if log.CompletedOn(day, id) || rng.Float64() >= h.chanceOn(day) {
				continue
			}
			log.Add(activity.Record{TypeID: id, Date: day})
			recordsCreated++
		}
	}

	if err := store.Save(reg, log); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	invalidatePromptCache()

	fmt.Fprintf(w, "Seeded with profile %q:\n", profileName)
	fmt.Fprintf(w, "  Activities created: %d\n", typesCreated)
	fmt.Fprintf(w, "  Records created:    %d\n", recordsCreated)
	return nil
}

func (h seedHabit) chanceOn(day calendar.Date) float64 {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		if h.weekend >= 0 {
			return h.weekend
		}
	}
	return h.chance
}

func init() {
	seedCmd.Flags().Bool("list", false, "list available profiles")
	rootCmd.AddCommand(seedCmd)
}
