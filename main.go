package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"colduel/communication/client"
	"colduel/engine"
	"colduel/experiments"
	"colduel/experiments/metrics"
	"colduel/game"
	"colduel/meta"
	"colduel/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mode := flag.String("mode", "match", "One of match, experiment or judge")
	vt1 := flag.String("vt1", "Max", "Victory condition of the first mover")
	vt2 := flag.String("vt2", "SumNeg", "Victory condition of the second mover")
	col1 := flag.String("col1", "A", "Victory column of the first mover")
	col2 := flag.String("col2", "C", "Victory column of the second mover")
	opponent := flag.String("opponent", "strategic", "Second mover in match mode: strategic or random")
	matrix := flag.String("matrix", "random", "Experiment opponent: random or self")
	program := flag.String("program", "", "Program file submitted to the judge")
	rival := flag.String("rival", "", "Opponent program file submitted to the judge")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Games per condition pair and seating")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for column draws and random agents")
	flag.IntVar(&cfg.Turns, "turns", cfg.Turns, "Turns per game")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for experiment CSV files")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite results database, empty to skip")
	flag.StringVar(&cfg.JudgeAddr, "judge", cfg.JudgeAddr, "Judge address")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout per judge request")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *verbose {
		cfg.LogLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "match":
		var v1, v2 game.Victory
		if v1, v2, err = victories(*vt1, *col1, *vt2, *col2); err == nil {
			err = runMatch(ctx, cfg, v1, v2, *opponent)
		}
	case "experiment":
		err = runExperiment(ctx, cfg, *matrix)
	case "judge":
		err = runJudge(ctx, cfg, *program, *rival)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func victories(vt1, col1, vt2, col2 string) (game.Victory, game.Victory, error) {
	c1, err := game.ParseCondition(vt1)
	if err != nil {
		return game.Victory{}, game.Victory{}, err
	}
	c2, err := game.ParseCondition(vt2)
	if err != nil {
		return game.Victory{}, game.Victory{}, err
	}
	v1 := game.Victory{Condition: c1, Column: game.Column(col1)}
	v2 := game.Victory{Condition: c2, Column: game.Column(col2)}
	for _, v := range []game.Victory{v1, v2} {
		if !slices.Contains(game.DefaultColumns, v.Column) {
			return game.Victory{}, game.Victory{}, fmt.Errorf("unknown column %q", v.Column)
		}
	}
	return v1, v2, nil
}

func runMatch(ctx context.Context, cfg meta.Config, v1, v2 game.Victory, opponent string) error {
	var second player.Agent
	switch opponent {
	case "strategic":
		second = player.NewPlayer(player.WithTurns(cfg.Turns))
	case "random":
		second = player.NewRandomPlayer(cfg.Seed)
	default:
		return fmt.Errorf("unknown opponent %q", opponent)
	}

	agents := [2]player.Agent{player.NewPlayer(player.WithTurns(cfg.Turns)), second}
	e := engine.LocalEngine(agents, [2]game.Victory{v1, v2}, nil, engine.WithTurns(cfg.Turns))
	res, err := e.Run(ctx)
	if err != nil {
		return err
	}

	for _, col := range res.State.Columns() {
		fmt.Printf("%s: %v\n", col, res.State[col])
	}
	fmt.Printf("%s on %s: %t\n%s on %s: %t\nwinner: %d\n",
		v1.Condition, v1.Column, res.Wins[0], v2.Condition, v2.Column, res.Wins[1], res.Winner)
	return nil
}

func runExperiment(ctx context.Context, cfg meta.Config, matrix string) error {
	var m experiments.Matrix
	switch matrix {
	case "random":
		m = experiments.StrategicVsRandom(cfg.Games, cfg.Seed)
	case "self":
		m = experiments.SelfPlay(cfg.Games, cfg.Seed)
	default:
		return fmt.Errorf("unknown matrix %q", matrix)
	}
	m.Turns = cfg.Turns

	run, err := experiments.RunConditionMatrix(ctx, m)
	if err != nil {
		return err
	}

	var store *metrics.Store
	if cfg.DBPath != "" {
		store, err = metrics.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	dir, err := experiments.Persist(ctx, run, cfg.OutputDir, store)
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)

	return run.Summary.WriteTable(os.Stdout)
}

// runJudge submits both programs for every condition pair, first with program
// moving first and then with the seats swapped.
func runJudge(ctx context.Context, cfg meta.Config, programPath, rivalPath string) error {
	if programPath == "" || rivalPath == "" {
		return fmt.Errorf("judge mode needs -program and -rival")
	}
	program, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}
	rival, err := os.ReadFile(rivalPath)
	if err != nil {
		return fmt.Errorf("failed to read rival: %w", err)
	}

	judge := client.NewTCPJudge(cfg.JudgeAddr, cfg.Timeout)
	for _, seating := range []struct {
		label         string
		first, second string
		swapped       bool
	}{
		{"tested player goes first", string(program), string(rival), false},
		{"tested player goes second", string(rival), string(program), true},
	} {
		results := []string{}
		for _, c1 := range game.Conditions {
			for _, c2 := range game.Conditions {
				vs := [2]game.Victory{{Condition: c1}, {Condition: c2}}
				if seating.swapped {
					vs = [2]game.Victory{vs[1], vs[0]}
				}
				res, err := engine.RemoteEngine(judge, cfg.Syndicate, cfg.Name, seating.first, seating.second, vs).Run(ctx)
				if err != nil {
					return err
				}
				results = append(results, fmt.Sprintf("(%s, %s): %s", vs[0].Condition, vs[1].Condition, res.Judge))
			}
		}
		fmt.Printf("%s\n%s\n", seating.label, strings.Join(results, "\n"))
	}
	return nil
}
