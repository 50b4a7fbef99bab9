// Command sarifview-rank prints the runs of a seed file ranked by the findings that pass a filter
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"sarifview/internal/adapters/seed"
	"sarifview/internal/core/filter"
	"sarifview/internal/platform/logger"
	pstrings "sarifview/internal/platform/strings"
	"sarifview/internal/platform/version"
	"sarifview/internal/services/viewer/service"

	"github.com/joho/godotenv"
)

type options struct {
	seed        string
	query       string
	level       string
	baseline    string
	suppression string
	findings    bool
}

func main() {
	_ = godotenv.Load()

	var o options
	flag.StringVar(&o.seed, "seed", "", "seed file (.yaml or .yaml.gz)")
	flag.StringVar(&o.query, "q", "", "keyword query")
	flag.StringVar(&o.level, "level", "", "comma separated levels to keep")
	flag.StringVar(&o.baseline, "baseline", "", "comma separated baseline states to keep")
	flag.StringVar(&o.suppression, "suppression", "", "comma separated suppression states to keep")
	flag.BoolVar(&o.findings, "findings", false, "list the findings that pass under each run")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		bi := version.Info("sarifview-rank")
		fmt.Printf("%s %s (%s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		return
	}

	if err := run(os.Stdout, o); err != nil {
		logger.Get().Error().Err(err).Msg("rank failed")
		os.Exit(1)
	}
}

func run(w io.Writer, o options) error {
	if o.seed == "" {
		return errors.New("-seed is required")
	}
	f, err := seed.Load(o.seed)
	if err != nil {
		return err
	}

	sess := service.NewSession(nil)
	defer sess.Close()
	if err := f.Apply(sess); err != nil {
		return err
	}

	// flags override whatever the seed selected
	if o.query != "" {
		sess.SetFilter(filter.Keywords, filter.Value{Text: o.query})
	}
	for cat, csv := range map[filter.Category]string{
		filter.Level:       o.level,
		filter.Baseline:    o.baseline,
		filter.Suppression: o.suppression,
	} {
		if set := pstrings.SplitCSV(csv); len(set) > 0 {
			sess.SetFilter(cat, filter.Value{Set: set})
		}
	}

	return render(w, sess, o.findings)
}

func render(w io.Writer, sess *service.Session, findings bool) error {
	if sess.Loading() {
		_, err := fmt.Fprintln(w, "no logs loaded")
		return err
	}
	if err := table(w, sess, findings); err != nil {
		return err
	}
	// printed after the no-results message as well
	if sess.LegacyOmitted() {
		_, err := fmt.Fprintln(w, "note: logs with an unsupported schema version were omitted")
		return err
	}
	return nil
}

func table(w io.Writer, sess *service.Session, findings bool) error {
	if sess.NoResults() {
		_, err := fmt.Fprintf(w, "no results for %q\n", sess.Filter().Keywords())
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tMATCHED\tTOTAL")
	for _, a := range sess.Ranked() {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", a.Name, a.FilteredCount(), a.Total())
		if !findings {
			continue
		}
		for _, fd := range a.Filtered() {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", fd.RuleID, fd.LevelOrDefault(), fd.Message)
		}
	}
	return tw.Flush()
}
