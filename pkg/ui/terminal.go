package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Terminal renders notifications with pterm. Info, success and headers
// go to stdout; error and fatal go to stderr.
type Terminal struct {
	section pterm.SectionPrinter
	info    pterm.PrefixPrinter
	err     pterm.PrefixPrinter
	success pterm.PrefixPrinter
	fatal   pterm.PrefixPrinter

	interactive bool
}

// NewTerminal builds the terminal UI, disabling styling when stdout is
// not a terminal or the environment reports no color support.
func NewTerminal() *Terminal {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !interactive || termenv.EnvColorProfile() == termenv.Ascii {
		pterm.DisableColor()
		pterm.DisableStyling()
	}

	return &Terminal{
		section:     pterm.DefaultSection,
		info:        pterm.Info,
		err:         *pterm.Error.WithWriter(os.Stderr),
		success:     pterm.Success,
		fatal:       *pterm.Fatal.WithFatal(false).WithWriter(os.Stderr),
		interactive: interactive,
	}
}

// Header renders a section header identifying what is about to run.
func (t *Terminal) Header(text string) {
	t.section.Println(text)
}

// Info displays an informational message.
func (t *Terminal) Info(msg string) {
	t.info.Println(msg)
}

// Error displays an error message.
func (t *Terminal) Error(msg string) {
	t.err.Println(msg)
}

// Success displays a success message.
func (t *Terminal) Success(msg string) {
	t.success.Println(msg)
}

// Fatal displays a fatal message. Exiting is left to the caller.
func (t *Terminal) Fatal(msg string) {
	t.fatal.Println(msg)
}

// StartTask opens a progress bar scoped to one command invocation.
func (t *Terminal) StartTask(description string) Task {
	bar, err := pterm.DefaultProgressbar.WithTotal(100).WithTitle(description).Start()
	if err != nil {
		// Progress rendering is best effort; the run goes on without it.
		return silentTask{}
	}
	return &progressTask{bar: bar}
}

// progressTask adapts a pterm progress bar to the Task interface,
// translating absolute completion values into increments.
type progressTask struct {
	bar     *pterm.ProgressbarPrinter
	current int
}

func (p *progressTask) Progress(completed int) {
	if completed < 0 {
		completed = 0
	}
	if completed > 100 {
		completed = 100
	}
	if completed <= p.current {
		return
	}
	p.bar.Add(completed - p.current)
	p.current = completed
}

func (p *progressTask) Done() {
	_, _ = p.bar.Stop()
}

type silentTask struct{}

func (silentTask) Progress(int) {}
func (silentTask) Done()        {}
