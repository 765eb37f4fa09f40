package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level in play order with its scoring tuning, unlock state and best result.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, _, err := levels.Open(cfg.Levels.Catalog, cfg.Levels.MapsDir)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}
	writeLevels(cmd.OutOrStdout(), catalog, p)
	return nil
}

func writeLevels(w io.Writer, catalog *levels.Catalog, p *progress.Progress) {
	maxIDLen := 2
	for _, e := range catalog.Levels {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-3s  %-*s  %-8s  %-8s  %-8s  %-8s  %-6s  %s",
		"#", maxIDLen, "ID", "Par", "Max", "State", "Best", "Rating", "Time")))

	for i, e := range catalog.Levels {
		tuning := catalog.Tuning(e.ID)
		state := dimStyle.Render(fmt.Sprintf("%-8s", "locked"))
		if progress.IsLevelUnlocked(p, e.ID) {
			state = okStyle.Render(fmt.Sprintf("%-8s", "open"))
		}

		best, rating, bestTime := "-", "-", "-"
		if rec := p.Levels[e.ID]; rec != nil {
			if rec.BestScore != nil {
				best = strconv.Itoa(*rec.BestScore)
				rating = fmt.Sprintf("%d/3", rec.BestRating)
			}
			if rec.BestTimeMs != nil {
				bestTime = common.FormatTime(*rec.BestTimeMs)
			}
		}

		fmt.Fprintf(w, "  %-3d  %-*s  %-8s  %-8s  %s  %-8s  %-6s  %s\n",
			i+1, maxIDLen, e.ID,
			common.FormatTime(tuning.ParTimeMs), common.FormatTime(tuning.MaxTimeMs),
			state, best, rating, bestTime)
	}
}
