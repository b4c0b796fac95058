package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/qadeck/callreport/internal/config"
	"github.com/qadeck/callreport/internal/export"
	"github.com/qadeck/callreport/internal/filter"
	"github.com/qadeck/callreport/internal/format"
	"github.com/qadeck/callreport/internal/har"
	"github.com/qadeck/callreport/internal/record"
	"github.com/qadeck/callreport/internal/report"
	"github.com/qadeck/callreport/internal/scheme"
)

func main() {
	var (
		output     = flag.String("o", "report.html", "output document path")
		schemeName = flag.String("scheme", "", "color scheme: light, dark or accessible (overrides "+config.EnvColorScheme+")")
		text       = flag.String("filter", "", "only render calls containing this substring")
		method     = flag.String("method", "", "only render calls with this HTTP method")
		errorsOnly = flag.Bool("errors-only", false, "only render calls with a 4xx/5xx status")
		slowest    = flag.Bool("slowest", false, "order calls by descending duration")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: callreport [flags] <capture.json | file.har>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := newLogger(*verbose)
	defer log.Sync()

	if err := run(flag.Arg(0), *output, *schemeName, filter.State{
		Text:          *text,
		Method:        *method,
		ErrorsOnly:    *errorsOnly,
		SortBySlowest: *slowest,
	}, log); err != nil {
		log.Fatal("report generation failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	return log
}

func run(input, output, schemeName string, sel filter.State, log *zap.Logger) error {
	cfg := config.FromEnv()
	if schemeName == "" {
		schemeName = cfg.SchemeName
	}

	sch, err := scheme.Load(schemeName)
	if err != nil {
		return err
	}
	log.Debug("color scheme loaded", zap.String("scheme", sch.Name))

	calls, err := loadCalls(input)
	if err != nil {
		return err
	}

	fmtr := format.New(log)
	asm := report.NewAssembler(fmtr, sch, log)
	if cfg.Attachments {
		sink, err := export.NewDirectorySink(cfg.AttachmentDir, log)
		if err != nil {
			return err
		}
		asm.Sink = sink
	}

	selected := sel.Apply(calls)
	var cards strings.Builder
	for _, i := range selected {
		card, callID, err := asm.Card(calls[i].Request, calls[i].Response)
		if err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
		log.Debug("card assembled",
			zap.Int("call", i), zap.Int("callId", callID),
			zap.String("url", calls[i].Request.URL))
		cards.WriteString(card)
	}

	doc := report.StandaloneDocument(cards.String(), sch)
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	css, err := fmtr.StylesheetCSS(sch.HighlightStyle)
	if err != nil {
		return err
	}
	cssPath := filepath.Join(filepath.Dir(output), "highlight.css")
	if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil {
		return fmt.Errorf("write highlight css: %w", err)
	}

	log.Info("report written",
		zap.String("path", output),
		zap.Int("calls", len(selected)))
	return nil
}

func loadCalls(path string) ([]record.Call, error) {
	if strings.EqualFold(filepath.Ext(path), ".har") {
		f, err := har.Load(path)
		if err != nil {
			return nil, err
		}
		return record.FromHARFile(f), nil
	}
	return record.LoadCaptureFile(path)
}
