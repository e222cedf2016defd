package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/arl/statsviz"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"wlinflate/config"
	"wlinflate/pkg/model"
	"wlinflate/pkg/output"
	"wlinflate/pkg/wordlist"
)

func main() {
	a := kingpin.New(filepath.Base(os.Args[0]), "simple tool to expand a wordlist with prepends, appends, extensions, and substitutions")
	flags := &config.Flags{}
	a.Flag("configfile", "config file").Short('c').ExistingFileVar(&flags.ConfigFile)
	a.Flag("wordlist", "path to wordlist").Short('w').StringVar(&flags.Wordlist)
	a.Flag("prepend", "prepend wordlist words (csv)").Short('p').StringVar(&flags.Prepend)
	a.Flag("append", "append wordlist words (csv)").Short('a').StringVar(&flags.Append)
	a.Flag("swap", "swap in for entries that contain {SWAP} (csv)").Short('s').StringVar(&flags.Swap)
	a.Flag("extensions", "extensions to search (csv)").Short('x').StringVar(&flags.Extensions)
	a.Flag("output", "output file").Short('o').StringVar(&flags.Output)
	a.Flag("verbose", "report line counts on stderr").Short('v').BoolVar(&flags.Verbose)
	a.Flag("statsviz", "serve runtime statistics on this address while running").StringVar(&flags.StatsvizAddr)
	a.HelpFlag.Short('h')

	_, err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "Error parsing commandline arguments"))
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := config.GetConfig(flags)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.StatsvizAddr != "" {
		go serveStatsviz(cfg)
	}

	if err := run(cfg); err != nil {
		cfg.Log.Fatal(err)
	}
}

func run(cfg *config.Configuration) error {
	wl, err := wordlist.Open(cfg.Wordlist, cfg.Transformations())
	if err != nil {
		return err
	}
	defer wl.Close()

	stats := model.Stats{
		Wordlist:       cfg.Wordlist,
		BaseCount:      wl.BaseCount(),
		EstimatedCount: wl.EstimatedCount(),
	}
	if cfg.Verbose {
		cfg.Log.WithFields(stats.Fields()).Infof("Original wordlist size: %d, estimated size after expansion: %d", stats.BaseCount, stats.EstimatedCount)
	}

	out, err := output.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	stats.Emitted, err = output.Drain(wl, out)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "can't close output")
	}

	if cfg.Verbose {
		cfg.Log.WithFields(stats.Fields()).Infof("Expanded wordlist size: %d", stats.Emitted)
	}
	return nil
}

func serveStatsviz(cfg *config.Configuration) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		cfg.Log.Warnf("Can't register statsviz: %v", err)
		return
	}
	cfg.Log.Debugf("Serving runtime statistics on http://%s/debug/statsviz/", cfg.StatsvizAddr)
	if err := http.ListenAndServe(cfg.StatsvizAddr, mux); err != nil {
		cfg.Log.Warnf("Statsviz server stopped: %v", err)
	}
}
