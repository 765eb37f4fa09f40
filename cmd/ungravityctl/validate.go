package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/ungravity/gameplay"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/physics"
	"github.com/milk9111/ungravity/tmx"
)

var validateCmd = &cobra.Command{
	Use:   "validate [maps...]",
	Short: "Parse and build maps without a window",
	Long: `Parses each map, builds it into a fresh physics world and reports what it
contains. With no arguments every catalog level is checked.

Examples:
  ungravityctl validate
  ungravityctl validate ./maps/my_level.tmx`,
	RunE: runValidate,
}

// MapReport is what a headless build of one map found.
type MapReport struct {
	Name    string
	Objects int
	Walls   int
	Stars   int
	Goals   int
	Err     error
}

// Warnings lists problems that leave the map loadable but not winnable.
func (r MapReport) Warnings() []string {
	var out []string
	if r.Goals == 0 {
		out = append(out, "no goal")
	}
	if r.Walls == 0 {
		out = append(out, "no walls")
	}
	return out
}

func runValidate(cmd *cobra.Command, args []string) error {
	var reports []MapReport
	if len(args) > 0 {
		for _, path := range args {
			reports = append(reports, validateFile(path))
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, loader, err := levels.Open(cfg.Levels.Catalog, cfg.Levels.MapsDir)
		if err != nil {
			return err
		}
		for _, e := range catalog.Levels {
			reports = append(reports, validateResource(cmd.Context(), loader, e.ID, e.Map))
		}
	}

	if failed := writeReports(cmd.OutOrStdout(), reports); failed > 0 {
		return fmt.Errorf("%d of %d maps failed", failed, len(reports))
	}
	return nil
}

func validateFile(path string) MapReport {
	data, err := os.ReadFile(path)
	if err != nil {
		return MapReport{Name: path, Err: err}
	}
	m, err := tmx.Parse(data)
	if err != nil {
		return MapReport{Name: path, Err: err}
	}
	return buildReport(path, m)
}

func validateResource(ctx context.Context, loader *levels.Loader, name, resource string) MapReport {
	m, err := loader.LoadMap(ctx, resource)
	if err != nil {
		return MapReport{Name: name, Err: err}
	}
	return buildReport(name, m)
}

func buildReport(name string, m *tmx.Map) MapReport {
	s := gameplay.NewSession(gameplay.DefaultSessionOptions())
	res := s.Build(m)
	return MapReport{
		Name:    name,
		Objects: res.ObjectsCount,
		Walls:   s.World.Count(physics.KindWall),
		Stars:   res.StarsTotal,
		Goals:   s.World.Count(physics.KindGoal),
	}
}

func writeReports(w io.Writer, reports []MapReport) (failed int) {
	for _, r := range reports {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", errStyle.Render("FAIL"), r.Name, r.Err)
			continue
		}

		status := okStyle.Render("ok  ")
		warnings := r.Warnings()
		if len(warnings) > 0 {
			status = warnStyle.Render("warn")
		}
		fmt.Fprintf(w, "%s %s: objects=%d walls=%d stars=%d goals=%d", status, r.Name, r.Objects, r.Walls, r.Stars, r.Goals)
		for _, msg := range warnings {
			fmt.Fprintf(w, " %s", warnStyle.Render("("+msg+")"))
		}
		fmt.Fprintln(w)
	}
	return failed
}
