// SPDX-License-Identifier: MPL-2.0

package setup

import (
	"fmt"
	"io"
	"strings"

	"clearsetup/internal/pyruntime"
	"clearsetup/internal/venv"
	"clearsetup/pkg/platform"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// StartCommand is how the operator launches the assistant once the
// environment is active.
const StartCommand = "python assistant.py"

var (
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Reporter emits operator-facing progress lines and the final instructions
// block. It is purely formatting; it never fails the run.
type Reporter struct {
	out   io.Writer
	class platform.Class
	plain bool
}

// NewReporter creates a Reporter writing to out. Plain mode disables lipgloss
// styling and glamour markdown rendering.
func NewReporter(out io.Writer, class platform.Class, plain bool) *Reporter {
	return &Reporter{out: out, class: class, plain: plain}
}

// RuntimeFound reports the resolved interpreter and its version.
func (r *Reporter) RuntimeFound(h *pyruntime.Handle) {
	r.step(fmt.Sprintf("Found %s (%s)", h.Name, h.Version), h.Path)
}

// CreatingEnvironment reports that environment creation is starting.
func (r *Reporter) CreatingEnvironment(dir string) {
	r.step("Creating virtual environment", dir)
}

// ReusingEnvironment reports that a valid existing environment is reused.
func (r *Reporter) ReusingEnvironment(dir string) {
	r.step("Reusing existing virtual environment", dir)
}

// Activating reports the activation entry point applied to this run.
func (r *Reporter) Activating(script string) {
	r.step("Activating environment", script)
}

// Installing reports the package set about to be installed.
func (r *Reporter) Installing(packages []string) {
	r.step("Installing packages", strings.Join(packages, ", "))
}

// Instructions prints the final next-steps block: the platform-correct
// activation command, the assistant start command, and the manual follow-up.
func (r *Reporter) Instructions(dir string) {
	md := fmt.Sprintf(`## Setup complete

Next steps:

1. Activate the environment: %s
2. Start the assistant: %s
3. Open %s in your browser (the assistant serves on http://localhost:8000)
`,
		"`"+venv.ActivateCommand(dir, r.class)+"`",
		"`"+StartCommand+"`",
		"`index.html`")

	if r.plain {
		fmt.Fprint(r.out, "\n"+stripInlineCode(md))
		return
	}

	rendered, err := renderMarkdown(md)
	if err != nil {
		fmt.Fprint(r.out, "\n"+stripInlineCode(md))
		return
	}
	fmt.Fprint(r.out, rendered)
}

func (r *Reporter) step(title, detail string) {
	if r.plain {
		if detail != "" {
			fmt.Fprintf(r.out, "==> %s (%s)\n", title, detail)
		} else {
			fmt.Fprintf(r.out, "==> %s\n", title)
		}
		return
	}

	line := stepStyle.Render("==> ") + successStyle.Render(title)
	if detail != "" {
		line += " " + detailStyle.Render("("+detail+")")
	}
	fmt.Fprintln(r.out, line)
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

// stripInlineCode removes markdown backticks for the plain fallback.
func stripInlineCode(md string) string {
	return strings.ReplaceAll(strings.TrimPrefix(md, "## "), "`", "")
}
