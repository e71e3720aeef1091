package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"passmint/cfg"
	"passmint/pkg/domain"
	"passmint/svc/db"
	"passmint/svc/gen"
	"passmint/svc/hist"
	"passmint/svc/tui"
	"passmint/svc/util"
)

func main() {
	var (
		generate  = flag.Bool("generate", false, "generate one password, record it and exit")
		length    = flag.Int("length", 0, "password length, clamped to [4,64] (default from config)")
		noUpper   = flag.Bool("no-upper", false, "exclude uppercase letters")
		noLower   = flag.Bool("no-lower", false, "exclude lowercase letters")
		noDigits  = flag.Bool("no-digits", false, "exclude digits")
		noSymbols = flag.Bool("no-symbols", false, "exclude symbols")
		listHist  = flag.Bool("list", false, "print history newest-first and exit")
		deleteID  = flag.String("delete", "", "delete the history entry with this id and exit")
	)
	flag.Parse()

	c, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(c); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	interactive := !*generate && !*listHist && *deleteID == ""
	if interactive {
		// The TUI owns the terminal, keep log output off stderr.
		util.InitLogFile(c.LogLevel, c.LogFile)
	} else {
		util.InitLog(c.LogLevel, c.Environment == "development")
	}
	runID := util.NewRunID()
	util.Info().Str("run_id", runID).Str("store", c.StoreBackend).Msg("starting passmint")

	store, err := openStore(c)
	if err != nil {
		util.Error().Err(err).Msg("failed to initialize store")
		fmt.Fprintln(os.Stderr, "failed to initialize store:", err)
		os.Exit(1)
	}
	defer store.Close()

	h := hist.New(store)
	ctx := context.Background()

	switch {
	case *generate:
		opts := domain.Options{
			Upper:   !*noUpper,
			Lower:   !*noLower,
			Digits:  !*noDigits,
			Symbols: !*noSymbols,
			Length:  c.DefaultLength,
		}
		if *length > 0 {
			opts.Length = domain.ClampLength(*length)
		}
		if err := runGenerate(ctx, h, opts); err != nil {
			if domain.IsValidation(err) {
				fmt.Fprintln(os.Stderr, err)
			} else {
				util.Error().Err(err).Msg("generate failed")
				fmt.Fprintln(os.Stderr, "generate failed:", err)
			}
			os.Exit(1)
		}
	case *listHist:
		runList(ctx, h)
	case *deleteID != "":
		if err := runDelete(ctx, h, *deleteID); err != nil {
			util.Error().Err(err).Msg("delete failed")
			fmt.Fprintln(os.Stderr, "delete failed:", err)
			os.Exit(1)
		}
	default:
		if err := tui.Run(c, h); err != nil {
			util.Error().Err(err).Msg("tui failed")
			fmt.Fprintln(os.Stderr, "tui failed:", err)
			os.Exit(1)
		}
	}
}

func openStore(c *cfg.Cfg) (db.Store, error) {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	switch c.StoreBackend {
	case cfg.StoreFile:
		return db.NewFile(c.DataDir)
	default:
		return db.NewSQLiteWithTimeout(c.DatabasePath, c.DBQueryTimeout)
	}
}

func runGenerate(ctx context.Context, h *hist.History, opts domain.Options) error {
	value, err := gen.Generate(opts)
	if err != nil {
		return err
	}
	entries, err := h.Append(h.Load(ctx), value)
	if err != nil {
		return err
	}
	if err := h.Persist(ctx, entries); err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runList(ctx context.Context, h *hist.History) {
	entries := h.Load(ctx)
	if len(entries) == 0 {
		fmt.Println("history is empty")
		return
	}
	for _, e := range entries {
		t, _ := e.Created()
		fmt.Printf("%-24s  %s  %s\n", e.ID, t.Local().Format("2006-01-02 15:04:05"), e.Value)
	}
}

func runDelete(ctx context.Context, h *hist.History, id string) error {
	entries := h.Load(ctx)
	return h.Persist(ctx, h.Remove(entries, id))
}
