package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/jusunglee/addrconv/internal/address"
	"github.com/jusunglee/addrconv/internal/batch"
	"github.com/jusunglee/addrconv/internal/db"
	"github.com/jusunglee/addrconv/internal/db/postgres"
	"github.com/jusunglee/addrconv/internal/db/sqlite"
	"github.com/jusunglee/addrconv/internal/logger"
	"github.com/jusunglee/addrconv/internal/preferences"
	"github.com/jusunglee/addrconv/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type config struct {
	mode        string
	site        string
	addressFile string
	detail      string
	name        string
	phone       string
	pccc        string
	savePccc    bool
	copy        bool
	format      string
	input       string
	output      string
	concurrency int
	databaseURL string
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("addrconv")
	var (
		mode        = fs.StringEnumLong("mode", "convert, batch, tui or presets", "convert", "batch", "tui", "presets")
		site        = fs.StringLong("site", address.DefaultPreset, "Target site preset ("+strings.Join(address.PresetIDs(), ", ")+")")
		addressFile = fs.StringLong("address-file", "", "JSON postal lookup result (- for stdin)")
		detail      = fs.StringLong("detail", "", "Detail address, e.g. 101동 1501호")
		name        = fs.StringLong("name", "", "Recipient name (Hangul or Latin)")
		phone       = fs.StringLong("phone", "", "Recipient phone number")
		pccc        = fs.StringLong("pccc", "", "Personal customs clearance code; the saved code is used when empty")
		savePccc    = fs.BoolLong("save-pccc", "Remember --pccc for later runs")
		copyAll     = fs.BoolLong("copy", "Copy all fields to the clipboard")
		format      = fs.StringEnumLong("format", "Output format for convert mode", "text", "json")
		input       = fs.StringLong("input", "-", "Batch input, JSON lines (- for stdin)")
		output      = fs.StringLong("output", "-", "Batch output, JSON lines (- for stdout)")
		concurrency = fs.Int64Long("concurrency", 4, "Batch conversions in flight")
		databaseURL = fs.StringLong("database-url", "", "Preference store: PostgreSQL URL or SQLite path (default: user config dir)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg := config{
		mode:        *mode,
		site:        *site,
		addressFile: *addressFile,
		detail:      *detail,
		name:        *name,
		phone:       *phone,
		pccc:        *pccc,
		savePccc:    *savePccc,
		copy:        *copyAll,
		format:      *format,
		input:       *input,
		output:      *output,
		concurrency: int(*concurrency),
		databaseURL: *databaseURL,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger.Init()

	if cfg.mode == "presets" {
		return printPresets(os.Stdout)
	}
	if _, ok := address.LookupPreset(cfg.site); !ok {
		return fmt.Errorf("unknown site %q (valid: %s)", cfg.site, strings.Join(address.PresetIDs(), ", "))
	}

	var store pcccStore
	repo, err := openRepository(ctx, cfg.databaseURL, log)
	if err != nil {
		log.WarnContext(ctx, "preference store unavailable, pccc will not be remembered", "error", err)
	} else {
		defer repo.Close()
		store = preferences.NewStore(repo)
	}

	resolved, err := resolvePccc(ctx, store, cfg.pccc, cfg.savePccc, log)
	if err != nil {
		return err
	}
	cfg.pccc = resolved.Value

	switch cfg.mode {
	case "batch":
		return runBatch(ctx, cfg, log)
	case "tui":
		return runTUI(ctx, cfg, store, resolved.AutoSave)
	default:
		return runConvert(ctx, cfg, log)
	}
}

type pcccStore interface {
	Load(ctx context.Context) (preferences.Pccc, error)
	Save(ctx context.Context, value string, autoSave bool) error
}

// resolvePccc picks the customs code for this run: the flag value, else the
// saved one. With save set the code is remembered; store may be nil.
func resolvePccc(ctx context.Context, store pcccStore, flagValue string, save bool, log *slog.Logger) (preferences.Pccc, error) {
	var saved preferences.Pccc
	if store != nil {
		var err error
		saved, err = store.Load(ctx)
		if err != nil {
			log.WarnContext(ctx, "could not load saved pccc", "error", err)
		}
	}

	out := preferences.Pccc{
		Value:    strings.ToUpper(strings.TrimSpace(flagValue)),
		AutoSave: saved.AutoSave,
	}
	if out.Value == "" {
		out.Value = saved.Value
	}
	if !save {
		return out, nil
	}

	if out.Value == "" {
		return out, errors.New("save-pccc needs a code: pass --pccc")
	}
	if store == nil {
		log.WarnContext(ctx, "pccc not saved, no preference store")
		return out, nil
	}
	if err := store.Save(ctx, out.Value, true); err != nil {
		return out, fmt.Errorf("saving pccc: %w", err)
	}
	out.AutoSave = true
	log.DebugContext(ctx, "saved pccc")
	return out, nil
}

func openRepository(ctx context.Context, databaseURL string, log *slog.Logger) (db.Repository, error) {
	if db.IsPostgresURL(databaseURL) {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		log.DebugContext(ctx, "using postgres preference store")
		return repo, nil
	}

	if databaseURL == "" {
		databaseURL = defaultDatabasePath()
	}
	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	log.DebugContext(ctx, "using sqlite preference store", "path", databaseURL)
	return repo, nil
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "addrconv.db"
	}
	return filepath.Join(dir, "addrconv", "addrconv.db")
}

func readAddress(path string) (*address.KoreanAddress, error) {
	if path == "" {
		return nil, errors.New("address-file is required")
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening address file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var addr address.KoreanAddress
	if err := json.NewDecoder(r).Decode(&addr); err != nil {
		return nil, fmt.Errorf("decoding address file: %w", err)
	}
	return &addr, nil
}

func runConvert(ctx context.Context, cfg config, log *slog.Logger) error {
	addr, err := readAddress(cfg.addressFile)
	if err != nil {
		return err
	}

	converted, ok := address.ConvertAddress(address.ConvertParams{
		KoreanAddress: addr,
		DetailAddress: cfg.detail,
		UserName:      cfg.name,
		Phone:         cfg.phone,
		Pccc:          cfg.pccc,
		SitePreset:    cfg.site,
	})
	if !ok {
		return errors.New("nothing to convert: name is required")
	}
	if converted.AddressLine1Warning || converted.AddressLine2Warning {
		log.WarnContext(ctx, "address shortened to fit site limits",
			"site", converted.Site,
			"line1_max", converted.AddressLine1Max,
			"line2_max", converted.AddressLine2Max,
		)
	}
	if converted.ShowPccc && converted.Pccc != "" && !converted.PcccValid {
		log.WarnContext(ctx, "pccc should be P followed by 12 digits", "pccc", converted.Pccc)
	}

	if cfg.copy {
		if err := clipboard.WriteAll(address.FormatForCopy(converted)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		log.InfoContext(ctx, "copied to clipboard", "site", converted.Site)
	}

	if cfg.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(converted)
	}
	printFields(os.Stdout, converted)
	return nil
}

func printFields(w io.Writer, c address.ConvertedAddress) {
	fmt.Fprintln(w, labelStyle.Render(c.SiteName))
	for _, f := range c.Fields() {
		line := labelStyle.Render(fmt.Sprintf("%-15s", f.Label)) + valueStyle.Render(f.Value)
		if (f.Label == "Address Line 1" && c.AddressLine1Warning) || (f.Label == "Address Line 2" && c.AddressLine2Warning) {
			line += " " + warnStyle.Render("(shortened)")
		}
		fmt.Fprintln(w, line)
	}
}

func printPresets(w io.Writer) error {
	for _, p := range address.Presets() {
		fmt.Fprintf(w, "%-11s %-11s name=%-8s line1=%-3d line2=%-3d state=%-4s phone=%-13s pccc=%t\n",
			p.ID, p.Name, p.NameFormat, p.AddressLine1Max, p.AddressLine2Max, p.StateFormat, p.PhoneFormat, p.ShowPccc)
	}
	return nil
}

func runBatch(ctx context.Context, cfg config, log *slog.Logger) error {
	var r io.Reader = os.Stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	results, err := batch.Convert(ctx, r, batch.Options{
		Concurrency: cfg.concurrency,
		DefaultSite: cfg.site,
		DefaultPccc: cfg.pccc,
	})
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := batch.Write(w, results); err != nil {
		return err
	}

	ok, failed := batch.Summary(results)
	log.InfoContext(ctx, "batch complete", "converted", ok, "failed", failed)
	return nil
}

func runTUI(ctx context.Context, cfg config, store tui.Saver, autoSave bool) error {
	addr, err := readAddress(cfg.addressFile)
	if err != nil {
		return err
	}

	_, _, err = tui.Run(ctx, tui.Options{
		Address: addr,
		Site:    cfg.site,
		Name:    cfg.name,
		Phone:   cfg.phone,
		Detail:  cfg.detail,
		Pccc:    preferences.Pccc{Value: cfg.pccc, AutoSave: autoSave},
		Store:   store,
	})
	return err
}
