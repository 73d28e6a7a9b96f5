// Command pinochle plays partnered pinochle at the terminal or simulates
// computer-only matches.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"pinochle/pinochle"
	"pinochle/pinochle/brain"
	"pinochle/replay"
	"pinochle/telemetry"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// fileConfig is the JSON layout accepted by -config.
type fileConfig struct {
	pinochle.Config
	Roster *brain.Roster `json:"roster,omitempty"`
}

type options struct {
	cfg     pinochle.Config
	roster  brain.Roster
	games   int
	tape    string
	verbose bool
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("[Game] %v", err)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(opts, logger); err != nil {
		if errors.Is(err, pinochle.ErrInputClosed) {
			log.Printf("[Game] Input closed, leaving the table")
			return
		}
		log.Fatalf("[Game] %v", err)
	}
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("pinochle", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON file with game settings and roster")
	seed := fs.Int64("seed", 0, "master seed (0 = time based)")
	target := fs.Int("target", 0, "score that ends the match")
	humans := fs.Int("humans", 1, "number of interactive seats")
	meld := fs.String("meld", "", "meld scoring: sum or four-kind")
	floor := fs.Bool("floor", false, "a missed bid never takes a total below zero")
	pass := fs.String("computer-pass", "", "computer pass guard: reachable or unreachable")
	games := fs.Int("games", 1, "matches to play")
	tape := fs.String("tape", "", "write the last match's tape as JSON to this file")
	verbose := fs.Bool("v", false, "log every engine event")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var fc fileConfig
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return options{}, fmt.Errorf("read config file: %w", err)
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			return options{}, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	opts := options{cfg: fc.Config, games: *games, tape: *tape, verbose: *verbose}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["seed"] || opts.cfg.Seed == 0 {
		opts.cfg.Seed = *seed
	}
	if set["target"] {
		opts.cfg.TargetScore = *target
	}
	if set["floor"] {
		opts.cfg.FloorAtZero = *floor
	}
	if *meld != "" {
		if err := opts.cfg.MeldPolicy.UnmarshalText([]byte(*meld)); err != nil {
			return options{}, err
		}
	}
	if *pass != "" {
		if err := opts.cfg.ComputerPass.UnmarshalText([]byte(*pass)); err != nil {
			return options{}, err
		}
	}

	switch {
	case fc.Roster != nil && !set["humans"]:
		opts.roster = *fc.Roster
	case fc.Roster != nil:
		opts.roster = *fc.Roster
		for i := range opts.roster.Seats {
			opts.roster.Seats[i].Kind = brain.KindComputer
			if i < *humans {
				opts.roster.Seats[i].Kind = brain.KindHuman
			}
		}
	default:
		opts.roster = brain.DefaultRoster(*humans)
	}
	if err := opts.roster.Validate(); err != nil {
		return options{}, err
	}
	if opts.games < 1 {
		return options{}, fmt.Errorf("-games must be at least 1")
	}
	if opts.games > 1 && opts.roster.Humans() > 0 {
		return options{}, fmt.Errorf("-games needs a computer-only table, use -humans 0")
	}
	return opts, nil
}

func run(opts options, logger *slog.Logger) error {
	seed := opts.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewSource(seed))
	interactive := opts.roster.Humans() > 0
	log.Printf("[Game] Seed %d, %d game(s), %d human seat(s)", seed, opts.games, opts.roster.Humans())

	var input brain.Input
	if interactive {
		input = newTerminal(os.Stdin, os.Stdout)
	}

	wins := map[int]int{}
	unfinished := 0
	var rec *replay.Recorder
	for i := 0; i < opts.games; i++ {
		cfg := opts.cfg
		cfg.Seed = master.Int63()
		gameID := uuid.New()
		teams, err := brain.NewFactory(master.Int63(), input, cfg.ComputerPass).WithGameID(gameID).Teams(opts.roster)
		if err != nil {
			return err
		}

		observers := pinochle.Observers{telemetry.New(logger)}
		if interactive {
			observers = append(observers, tableView{})
		}
		if opts.tape != "" {
			rec = replay.NewRecorder(gameID)
			observers = append(observers, rec)
		}
		cfg.Observer = observers

		game, err := pinochle.NewGame(cfg, teams...)
		if err != nil {
			return err
		}
		res, err := game.Play()
		if errors.Is(err, pinochle.ErrRoundLimit) {
			log.Printf("[Game] Game %d: %v", i+1, err)
			unfinished++
			continue
		}
		if err != nil {
			return err
		}
		wins[res.Winner]++
	}

	if opts.games > 1 || !interactive {
		printWins(opts.roster, wins, unfinished)
	}
	if opts.tape != "" && rec != nil {
		if err := writeTape(opts.tape, rec); err != nil {
			return err
		}
		log.Printf("[Game] Tape written to %s", opts.tape)
	}
	return nil
}

func printWins(roster brain.Roster, wins map[int]int, unfinished int) {
	data := pterm.TableData{{"Team", "Players", "Wins"}}
	for _, n := range roster.TeamNumbers() {
		var names []string
		for _, s := range roster.Seats {
			if s.Team == n {
				names = append(names, s.Name)
			}
		}
		data = append(data, []string{fmt.Sprint(n), fmt.Sprint(names), fmt.Sprint(wins[n])})
	}
	if unfinished > 0 {
		data = append(data, []string{"-", "round limit", fmt.Sprint(unfinished)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func writeTape(path string, rec *replay.Recorder) error {
	if err := rec.Err(); err != nil {
		return fmt.Errorf("record tape: %w", err)
	}
	data, err := rec.Tape().JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
