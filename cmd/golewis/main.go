//Command golewis is the interactive front end for the lewis solver: it
//reads formulas, prints the solved Lewis structure(s) and VSEPR prediction,
//and optionally appends every solved report to a compressed archive.
//
//With arguments it solves each one and exits; without arguments it starts
//a prompt loop with persistent input history.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lewis "github.com/solvate/golewis"
	"github.com/solvate/golewis/archive"
	"github.com/solvate/golewis/report"
)

const (
	appName     = "golewis"
	historyFile = ".golewis_history"
	prompt      = "Formula: "
)

const banner = "Lewis Structure + VSEPR\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	os.Exit(run())
}

//run exists so the deferred archive Close outlives any exit path.
func run() int {
	archivePath := flag.String("archive", "", "append solved reports to this compressed archive (.zst, .gz, .lz or .raw)")
	flag.Usage = usage
	flag.Parse()

	var arch *archive.Writer
	if *archivePath != "" {
		var err error
		arch, err = archive.NewWriter(*archivePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		defer arch.Close()
	}

	if flag.NArg() > 0 {
		code := 0
		for _, formula := range flag.Args() {
			if err := solveOne(formula, arch); err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				code = 1
			}
		}
		return code
	}
	return repl(arch)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %s [-archive file] [formula ...]

With formulas as arguments, solves each and exits. Without, starts an
interactive prompt. Type :quit to leave it.
`, appName)
}

func solveOne(formula string, arch *archive.Writer) error {
	r, err := lewis.Solve(formula)
	if err != nil {
		return err
	}
	fmt.Println(report.Render(r))
	if arch != nil {
		if err := arch.WNext(r); err != nil {
			return err
		}
	}
	return nil
}

func repl(arch *archive.Writer) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		formula := strings.TrimSpace(line)
		if formula == "" {
			continue
		}
		if strings.HasPrefix(formula, ":") {
			switch strings.ToLower(formula) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		//any error just re-prompts; nothing persists from a failed run
		if err := solveOne(formula, arch); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		ln.AppendHistory(formula)
	}
}
