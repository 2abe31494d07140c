package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/fred"
	"github.com/iw2rmb/fred/buffer"
	"github.com/iw2rmb/fred/editor"
	"github.com/iw2rmb/fred/internal/config"
)

// envDebug names the environment variable holding a debug log path.
const envDebug = "FRED_DEBUG"

var errNotTerminal = errors.New("stdout is not a terminal")

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "fred: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	path, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(os.Getenv(envDebug))
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("fred %s starting", fred.VersionTag())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	buf, msg := loadBuffer(path)
	cfg.Message = msg
	cfg.OnChange = func(ev editor.ChangeEvent) {
		log.Printf("edit: version=%d cursor=%v mode=%s", ev.Version, ev.Cursor, ev.Mode)
	}
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.Width, cfg.Height = w, h
	} else {
		log.Printf("terminal size: %v", err)
	}

	p := tea.NewProgram(model{editor: editor.New(cfg, buf)}, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Printf("fred: session ended")
	return nil
}

// parseArgs accepts at most one positional argument, the file to open.
func parseArgs(args []string, stderr io.Writer) (string, error) {
	fs := flag.NewFlagSet("fred", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: fred [file]\n")
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	switch fs.NArg() {
	case 0:
		return "", nil
	case 1:
		return fs.Arg(0), nil
	default:
		fs.Usage()
		return "", fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "fred")
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func loadConfig() (editor.Config, error) {
	path, err := config.Path()
	if err != nil {
		log.Printf("config: %v; using defaults", err)
		return config.Default().Editor()
	}
	f, err := config.Load(path)
	if err != nil {
		return editor.Config{}, err
	}
	if len(f.Undecoded) > 0 {
		log.Printf("config %s: unknown keys %v", path, f.Undecoded)
	}
	cfg, err := f.Editor()
	if err != nil {
		return editor.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("config %s loaded", path)
	return cfg, nil
}

// loadBuffer opens path. Read failures leave the buffer empty and are
// reported through the returned status message.
func loadBuffer(path string) (*buffer.Buffer, string) {
	greeting := "fred " + fred.VersionTag()
	if path == "" {
		return buffer.New(), greeting
	}
	buf, err := buffer.LoadFile(path)
	if err != nil {
		log.Printf("load: %v", err)
		return buf, fmt.Sprintf("cannot read %s", path)
	}
	log.Printf("load %s: %d lines", path, buf.Len())
	return buf, greeting
}
