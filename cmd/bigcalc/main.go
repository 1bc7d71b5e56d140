// Command bigcalc evaluates arbitrary-precision decimal expressions, either
// from its arguments and input or as an HTTP service.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zephyrtronium/bigcalc"
)

func main() {
	var (
		inname, addr, origin string
		nl, verbose          bool
		prec, maxLen         int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.IntVar(&prec, "p", bigcalc.DefaultPrec, "fractional digits produced by division; further digits are truncated")
	flag.StringVar(&addr, "http", "", "serve POST /calculate on this address instead of reading input")
	flag.StringVar(&origin, "origin", "*", "Access-Control-Allow-Origin for the HTTP service")
	flag.IntVar(&maxLen, "max", 4096, "longest expression accepted by the HTTP service, in bytes")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	log, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bigcalc: creating logger:", err)
		os.Exit(2)
	}
	defer log.Sync()
	if err := checkPrec(prec); err != nil {
		log.Fatal("bad -p", zap.Int("prec", prec), zap.Error(err))
	}

	if addr != "" {
		s := &server{log: log, prec: uint(prec), origin: origin, max: maxLen}
		if err := serve(addr, s); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
		return
	}

	srcs, err := inputs(inname, flag.Args(), nl)
	if err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	failed := false
	for _, src := range srcs {
		r, err := bigcalc.EvalString(src, bigcalc.Prec(uint(prec)))
		if err != nil {
			log.Debug("evaluation failed", zap.String("expression", src), zap.Error(err))
			fmt.Println(err)
			failed = true
			continue
		}
		fmt.Println(r)
	}
	if failed {
		log.Sync()
		os.Exit(1)
	}
}

// maxPrec bounds -p. Every division may produce this many digits.
const maxPrec = 1 << 20

func checkPrec(prec int) error {
	switch {
	case prec < 0:
		return errors.New("precision must not be negative")
	case prec > maxPrec:
		return errors.Errorf("precision must be at most %d", maxPrec)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// inputs collects the expressions to evaluate: each argument, then the
// contents of the input file, which is split into lines if nl is set. Blank
// lines are skipped.
func inputs(inname string, args []string, nl bool) ([]string, error) {
	srcs := append([]string(nil), args...)
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return srcs, nil
	}
	defer f.Close()
	if !nl {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, errors.Wrap(err, "reading expression")
		}
		return append(srcs, string(b)), nil
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading expressions")
	}
	return srcs, nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrapf(err, "opening input %s", inname)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// serve runs the HTTP service until it fails or the process receives an
// interrupt, then shuts it down gracefully.
func serve(addr string, s *server) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return errors.Wrap(err, "listening")
	case <-ctx.Done():
	}
	s.log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(ctx), "shutting down")
}
