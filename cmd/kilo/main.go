// Command kilo is a minimal full-screen terminal text viewer.
//
//	kilo [-config path] [-debug] [-version] [file]
//
// Arrow keys move the cursor, Ctrl-Q (or the configured key) quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/kilo/buffer"
	"github.com/lixenwraith/kilo/config"
	"github.com/lixenwraith/kilo/editor"
	"github.com/lixenwraith/kilo/render"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

var (
	configFlag  = flag.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/kilo/kilo.toml)")
	debugFlag   = flag.Bool("debug", false, "Write a debug log")
	versionFlag = flag.Bool("version", false, "Print version and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if *versionFlag {
		fmt.Println(render.Welcome)
		return 0
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	logFile, err := setupLogging(cfg.Log.Dir, cfg.Log.Debug, cfg.LogMaxSize())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Validated by config.Load
	quitKeys, _ := cfg.QuitKeys()

	buf := buffer.New()
	if flag.NArg() > 0 {
		if err := buf.LoadFile(flag.Arg(0)); err != nil {
			log.Printf("fatal: %+v", err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		log.Printf("loaded %s: %d rows", flag.Arg(0), buf.NumRows())
	}

	if err := edit(buf, quitKeys); err != nil {
		log.Printf("fatal: %+v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadConfig reads the named file, or the default location when name is
// empty. Only an explicitly named file has to exist.
func loadConfig(name string) (config.Config, error) {
	if name != "" {
		return config.Load(name, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path, false)
}

// edit owns the terminal for the lifetime of the editor. By the time it
// returns, the screen is cleared on error and the original attributes are
// restored, so the caller can print to stderr.
func edit(buf *buffer.Buffer, quitKeys []terminal.Event) error {
	sess, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	return guarded(sess, func() error {
		rows, cols, err := sess.Size()
		if err != nil {
			sess.ClearScreen()
			return err
		}
		log.Printf("terminal %dx%d", rows, cols)

		ed := editor.New(buf, viewport.Dims{Rows: rows, Cols: cols},
			editor.WithQuitKey(quitKeys...),
			editor.WithLogger(log.Default()),
		)
		if err := ed.Run(sess, terminal.NewDecoder(sess)); err != nil {
			sess.ClearScreen()
			return err
		}
		return nil
	})
}

// rawTerminal is the part of *terminal.Session the guard needs
type rawTerminal interface {
	Restore() error
	EmergencyReset()
}

// Crash reporting hooks, replaced in tests
var (
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// guarded runs fn with the terminal restored on every way out. A Restore
// failure is reported only when fn succeeded.
func guarded(term rawTerminal, fn func() error) (err error) {
	defer func() {
		if rerr := term.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	// Panic Recovery: runs before the Restore above, so the screen is cleared
	// while still in raw mode, then attributes are restored
	defer func() {
		if r := recover(); r != nil {
			term.EmergencyReset()
			log.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(crashOut, "\r\nkilo crashed: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
			crashExit(1)
		}
	}()

	return fn()
}
