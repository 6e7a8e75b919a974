package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/clambin/actorsearch/internal/suggest"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	debug   = flag.Bool("debug", false, "debug mode")
	addr    = flag.String("addr", "http://localhost:8080", "actor search server address")
	delay   = flag.Duration("delay", suggest.DefaultDelay, "time to wait for more input before searching")
	minLen  = flag.Int("min", suggest.DefaultMinLength, "minimum input length")
	timeout = flag.Duration("timeout", 10*time.Second, "timeout for a single search")
)

// actor-suggest reads lines from stdin and treats each one as the new content of the search field.
func main() {
	flag.Parse()

	var opts slog.HandlerOptions
	if *debug {
		opts.Level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &opts))

	s := suggest.New(suggest.HTTPSource{
		BaseURL:    *addr,
		HTTPClient: &http.Client{Timeout: *timeout},
	}, l)
	s.Delay = *delay
	s.MinLength = *minLen
	defer s.Close()

	if err := run(s, os.Stdin, os.Stdout, *delay+*timeout); err != nil {
		l.Error("actor-suggest failed", "err", err)
		os.Exit(1)
	}
}

// run feeds each line of in to the suggester and prints the results. Once in is exhausted, run waits up to wait
// for the result of the last line.
func run(s *suggest.Suggester, in io.Reader, out io.Writer, wait time.Duration) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	var last string
	var pending bool
	var deadline <-chan time.Time
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if !pending {
					return <-scanErr
				}
				lines = nil
				deadline = time.After(wait)
				continue
			}
			last = strings.TrimSpace(line)
			pending = true
			s.Input(line)
		case result := <-s.Results():
			printResult(out, result)
			if result.Query == last {
				pending = false
				if lines == nil {
					return <-scanErr
				}
			}
		case <-deadline:
			return fmt.Errorf("no suggestions for %q after %s", last, wait)
		}
	}
}

func printResult(out io.Writer, result suggest.Result) {
	if len(result.Suggestions) == 0 {
		_, _ = fmt.Fprintf(out, "%q: no suggestions\n", result.Query)
		return
	}
	_, _ = fmt.Fprintf(out, "%q:\n", result.Query)
	for _, p := range result.Suggestions {
		_, _ = fmt.Fprintf(out, "  %s (%d)\n", p.Name, p.ID)
	}
}
