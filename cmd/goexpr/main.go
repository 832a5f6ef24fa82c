package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/goexpr"
	"github.com/peterh/liner"
)

const historyFile = ".goexpr_history"

var (
	flagExpr   = flag.String("e", "", "evaluate `source` instead of reading a file")
	flagDepth  = flag.Int("depth", 0, "maximum nesting `depth` (default 2048)")
	flagNoLib  = flag.Bool("nolib", false, "do not load the prelude library")
	flagConfig = flag.String("config", "", "read settings from YAML `file`")
	flagVars   varFlags
)

type varFlags []string

func (v *varFlags) String() string {
	return strings.Join(*v, ",")
}

func (v *varFlags) Set(s string) error {
	if !strings.Contains(s, "=") {
		return fmt.Errorf("want name=expr, got %q", s)
	}
	*v = append(*v, s)
	return nil
}

func init() {
	flag.Var(&flagVars, "var", "bind `name=expr` before running (repeatable)")
}

func setup(s *session) error {
	cfg := &goexpr.Config{}
	if *flagConfig != "" {
		f, err := os.Open(*flagConfig)
		if err != nil {
			return err
		}
		cfg, err = goexpr.LoadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	if !*flagNoLib && cfg.UsePrelude() {
		if err := goexpr.LoadLib(s.base); err != nil {
			return err
		}
	}
	// configured and -var bindings shadow the prelude
	if err := cfg.Apply(s.base); err != nil {
		return err
	}
	for _, v := range flagVars {
		if err := s.bind(v); err != nil {
			return err
		}
	}
	s.maxDepth = cfg.MaxDepth
	if *flagDepth > 0 {
		s.maxDepth = *flagDepth
	}
	return nil
}

func repl(s *session) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyFile
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				log.Print(err)
			}
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			err = s.command(line)
			if err == errQuit {
				return
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}

		ret, err := s.eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(ret)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("goexpr: ")
	flag.Parse()

	if flag.NArg() > 1 || (flag.NArg() == 1 && *flagExpr != "") {
		flag.Usage()
		os.Exit(2)
	}

	s := newSession(os.Stdout)
	if err := setup(s); err != nil {
		log.Fatal(err)
	}

	var ret goexpr.Value
	var err error
	switch {
	case *flagExpr != "":
		ret, err = s.eval(*flagExpr)
	case flag.NArg() == 1:
		f, ferr := os.Open(flag.Arg(0))
		if ferr != nil {
			log.Fatal(ferr)
		}
		ret, err = s.evalReader(f)
		f.Close()
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		repl(s)
		return
	default:
		ret, err = s.evalReader(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ret)
}
