// Package app orchestrates the full pipeline: discover the app root, load the
// tables, resolve probabilities, and export the reports.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gachatools/dropchance/internal/config"
	"github.com/gachatools/dropchance/internal/drop"
	"github.com/gachatools/dropchance/internal/output"
	"github.com/gachatools/dropchance/internal/tables"
)

// Run executes the report pipeline and returns the desired process exit code.
func Run() int {
	return RunWithOptions(Options{})
}

type Options struct {
	UseExamples bool
}

// RunWithOptions executes the report pipeline and returns the desired process
// exit code.
func RunWithOptions(opts Options) int {
	appRoot, err := FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := run(appRoot, opts); err != nil {
		if ee, ok := asExitError(err); ok {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// requiredTableError maps a missing required table onto exit code 2 so callers
// can tell "tables not found" from other failures. Anything else passes
// through.
func requiredTableError(err error) error {
	if errors.Is(err, tables.ErrNotFound) {
		return ExitWithError(2, err)
	}
	return err
}

func run(appRoot string, opts Options) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	configPath := filepath.Join(appRoot, "input", "drop_chance", "config.yaml")
	if opts.UseExamples {
		configPath = filepath.Join(appRoot, "input", "drop_chance", "examples", "config.example.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tableDirs := make([]string, 0, len(cfg.TableDirs))
	if opts.UseExamples {
		tableDirs = append(tableDirs, filepath.Join(appRoot, "input", "drop_chance", "examples"))
	} else {
		for _, dir := range cfg.TableDirs {
			tableDirs = append(tableDirs, filepath.Join(appRoot, dir))
		}
	}
	reportDir := filepath.Join(appRoot, cfg.ReportDir)

	itemNames, found, err := tables.LoadItemNames(tableDirs)
	if err != nil {
		return err
	}
	if !found {
		logger.Warn("item table missing, item names will be synthesized",
			zap.String("table", tables.ItemTableFile))
	}

	awards, err := tables.LoadAwards(tableDirs)
	if err != nil {
		return requiredTableError(err)
	}
	packs, err := tables.LoadPacks(tableDirs)
	if err != nil {
		return requiredTableError(err)
	}
	logger.Info("tables loaded",
		zap.Int("awards", len(awards)),
		zap.Int("packs", len(packs)),
		zap.Int("items", len(itemNames)))

	awardProbs := make(map[int]map[int]float64, len(awards))
	awardIDs := make([]int, 0, len(awards))
	for _, rec := range awards {
		probs, err := drop.ResolveAward(rec)
		if err != nil {
			return err
		}
		if _, seen := awardProbs[rec.AwardID]; !seen {
			awardIDs = append(awardIDs, rec.AwardID)
		}
		awardProbs[rec.AwardID] = probs
	}

	resolved := make([]drop.PackResolution, 0, len(packs))
	for _, rec := range packs {
		resolved = append(resolved, drop.ResolvePack(rec))
	}

	rows := output.BuildRows(awardProbs, resolved, itemNames)

	if err := output.ExportCSV(reportDir, awardIDs, rows); err != nil {
		return err
	}
	logger.Info("csv reports written",
		zap.String("dir", reportDir),
		zap.Int("awards", len(awardIDs)),
		zap.Int("rows", len(rows)))

	if cfg.IndexWorkbook {
		path, err := output.ExportIndexXLSX(reportDir, rows)
		if err != nil {
			return err
		}
		logger.Info("index workbook written", zap.String("path", path))
	}
	return nil
}
