package console

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"reforge/internal/domain"
)

var (
	phaseColor   = color.New(color.FgBlue, color.Bold)
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	bannerColor  = color.New(color.FgMagenta, color.Bold)
)

// Reporter writes colored progress lines to stdout.
type Reporter struct {
	verbose bool
	tty     bool
}

func New(verbose bool) *Reporter {
	return &Reporter{
		verbose: verbose,
		tty:     isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Banner prints the run header with the tool version and in/out paths.
func (r *Reporter) Banner(version, input, output string) {
	bannerColor.Println("==================================================")
	bannerColor.Printf("reforge v%s — rebuild, align, sign, install\n", version)
	bannerColor.Println("==================================================")
	infoColor.Printf("> INPUT:  %s\n", input)
	infoColor.Printf("< OUTPUT: %s\n", output)
}

func (r *Reporter) Phasef(format string, a ...any) {
	fmt.Println()
	phaseColor.Printf(format+"\n", a...)
}

func (r *Reporter) Infof(format string, a ...any) {
	infoColor.Printf(format+"\n", a...)
}

func (r *Reporter) Successf(format string, a ...any) {
	successColor.Printf(format+"\n", a...)
}

func (r *Reporter) Warnf(format string, a ...any) {
	warnColor.Printf(format+"\n", a...)
}

func (r *Reporter) Failf(format string, a ...any) {
	failColor.Printf(format+"\n", a...)
}

func (r *Reporter) Debugf(format string, a ...any) {
	if r.verbose {
		fmt.Printf(format+"\n", a...)
	}
}

// Spinner starts a progress spinner and returns its stop func. Verbose
// runs print command output instead, and non-terminals get nothing.
func (r *Reporter) Spinner(suffix string) func() {
	if r.verbose || !r.tty {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}

var _ domain.Reporter = (*Reporter)(nil)
