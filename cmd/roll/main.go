// Package main provides the roll binary: a command-line front end for the
// dice-notation expression engine. It rolls expressions given as arguments,
// runs an interactive prompt when none are given, rolls named table entries,
// and executes Lua macro scripts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/dice"
	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/observability"
	"github.com/cory-johannsen/roll/internal/rolltable"
	"github.com/cory-johannsen/roll/internal/scripting"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	tablesDir := flag.String("tables", "", "path to roll-table YAML directory (overrides config)")
	tableName := flag.String("table", "", "roll-table name to roll from")
	entryName := flag.String("entry", "", "roll-table entry to roll (requires -table)")
	scriptPath := flag.String("script", "", "Lua macro script to execute")
	verbose := flag.Bool("v", false, "print rolls and formulas in addition to results")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	roller := dice.NewRoller(newSource(cfg.Dice), logger)

	if *scriptPath != "" {
		mgr := scripting.NewManager(roller, logger, cfg.Scripting.InstructionLimit)
		if err := mgr.Run(*scriptPath); err != nil {
			logger.Fatal("running script", zap.String("path", *scriptPath), zap.Error(err))
		}
		return
	}

	if *tableName != "" {
		rollTable(cfg, roller, logger, *tablesDir, *tableName, *entryName)
		return
	}

	if flag.NArg() > 0 {
		for _, expr := range flag.Args() {
			if err := rollExpression(roller, expr, *verbose); err != nil {
				logger.Fatal("rolling expression", zap.String("expression", expr), zap.Error(err))
			}
		}
		return
	}

	repl(roller, *verbose)
}

// newSource builds the randomness Source selected by configuration.
func newSource(cfg config.DiceConfig) dice.Source {
	if cfg.Source == "seeded" {
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewCryptoSource()
}

// rollExpression rolls one expression and prints the result; with verbose it
// also prints the individual rolls and both formula renderings.
func rollExpression(roller *dice.Roller, expr string, verbose bool) error {
	res, err := roller.Roll(expr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: %d\n", res.RollsFormulaInfix(), res.Value())
	if verbose {
		fmt.Fprintf(os.Stdout, "  rolls:   %s\n", res.RollsString())
		fmt.Fprintf(os.Stdout, "  formula: %s\n", res.FormulaInfix())
		fmt.Fprintf(os.Stdout, "  rpn:     %s\n", res.FormulaRPN())
	}
	return nil
}

// rollTable loads the roll tables and rolls one named entry.
func rollTable(cfg config.Config, roller *dice.Roller, logger *zap.Logger, dir, tableName, entryName string) {
	if dir == "" {
		dir = cfg.Tables.Dir
	}
	if dir == "" {
		logger.Fatal("no roll-table directory configured; pass -tables or set tables.dir")
	}
	if entryName == "" {
		logger.Fatal("no entry given; pass -entry with -table")
	}

	tables, err := rolltable.LoadDir(dir)
	if err != nil {
		logger.Fatal("loading roll tables", zap.String("dir", dir), zap.Error(err))
	}

	table, ok := tables[tableName]
	if !ok {
		logger.Fatal("unknown roll table", zap.String("table", tableName))
	}

	rec, err := table.Roll(entryName, roller)
	if err != nil {
		logger.Fatal("rolling table entry", zap.String("table", tableName), zap.String("entry", entryName), zap.Error(err))
	}

	fmt.Fprintf(os.Stdout, "%s/%s (%s): %d  [%s]  roll %s\n",
		rec.Table, rec.Entry, rec.Expression, rec.Result, rec.Rolls, rec.ID)
}

// repl reads expressions from stdin until EOF or "quit".
func repl(roller *dice.Roller, verbose bool) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, "roll> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return
		default:
			if err := rollExpression(roller, line, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
		fmt.Fprint(os.Stdout, "roll> ")
	}
}
