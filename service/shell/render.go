package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/event"
	"github.com/viant/schedsim/service/scheduler"
)

var (
	accent  = lipgloss.Color("#FF5F00")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
	failure = lipgloss.Color("#FF0000")
	white   = lipgloss.Color("#FFFFFF")
)

// renderer writes styled output; styles degrade to plain text when out is not a terminal.
type renderer struct {
	out          io.Writer
	titleStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func newRenderer(out io.Writer) *renderer {
	r := lipgloss.NewRenderer(out)
	return &renderer{
		out:          out,
		titleStyle:   r.NewStyle().Bold(true).Foreground(white),
		accentStyle:  r.NewStyle().Foreground(accent).Bold(true),
		mutedStyle:   r.NewStyle().Foreground(muted),
		successStyle: r.NewStyle().Foreground(success).Bold(true),
		errorStyle:   r.NewStyle().Foreground(failure),
	}
}

func (r *renderer) println(text string) {
	_, _ = fmt.Fprintln(r.out, text)
}

func (r *renderer) banner() {
	r.println(r.titleStyle.Render("CPU scheduling simulator") + r.mutedStyle.Render(" - type 'help' for commands"))
}

func (r *renderer) help() {
	r.println(r.titleStyle.Render("Commands:"))
	for _, name := range commandOrder {
		r.println("  " + usages[name])
	}
	r.println(r.mutedStyle.Render("States legend: R ready, X running, B blocked, F finished"))
}

func (r *renderer) error(err error) {
	r.println(r.errorStyle.Render("error: " + err.Error()))
}

func (r *renderer) usage(err *UsageError) {
	r.println(r.errorStyle.Render(err.Error()))
}

func (r *renderer) created(p *process.Process) {
	r.println(fmt.Sprintf("created process: PID=%d, name='%s', CPU=%d, MEM=%d, PRIO=%d, state=%s",
		p.ID, p.Name, p.Remaining, p.Memory, p.Priority, p.State))
}

func (r *renderer) list(processes []*process.Process) {
	if len(processes) == 0 {
		r.println(r.mutedStyle.Render("no processes"))
		return
	}
	r.println(r.titleStyle.Render("PID | Name     | CPU | MEM | PRIO | State"))
	for _, p := range processes {
		r.println(fmt.Sprintf("%3d | %-8s | %3d | %3d | %4d | %s", p.ID, p.Name, p.Remaining, p.Memory, p.Priority, p.State))
	}
}

func (r *renderer) transitioned(command string, p *process.Process) {
	switch command {
	case CommandBlock:
		r.println(fmt.Sprintf("process %d blocked", p.ID))
	case CommandUnblock:
		r.println(fmt.Sprintf("process %d unblocked (ready)", p.ID))
	case CommandKill:
		r.println(fmt.Sprintf("process %d finished (kill)", p.ID))
	}
}

// event renders the trace of a run
func (r *renderer) event(e *event.Event) {
	switch e.Kind {
	case event.KindStart:
		r.println(r.accentStyle.Render(fmt.Sprintf("Running %s...", strings.ToUpper(e.Context.Algorithm))))
	case event.KindStep:
		r.println(fmt.Sprintf("[Cycle %d] -> Running %s (PID %d) - CPU remaining: %d", e.Cycle, e.Name, e.PID, e.Remaining))
		r.println(r.mutedStyle.Render("States: " + states(e.Snapshot)))
	case event.KindPreempt:
		r.println(r.mutedStyle.Render(fmt.Sprintf("[Cycle %d] process %d preempted", e.Cycle, e.PID)))
	case event.KindSkip:
		r.println(r.mutedStyle.Render(fmt.Sprintf("[Cycle %d] process %d no longer ready, skipped", e.Cycle, e.PID)))
	case event.KindFinish:
		r.println(r.successStyle.Render(fmt.Sprintf("✓ process %d finished", e.PID)))
	case event.KindIdle:
		r.println(r.mutedStyle.Render(fmt.Sprintf("[Cycle %d] no process ready to run", e.Cycle)))
	case event.KindComplete:
		r.println(r.accentStyle.Render("Simulation finished."))
	}
}

func (r *renderer) summary(report *scheduler.Report) {
	r.println(r.mutedStyle.Render(fmt.Sprintf("cycles: %d, dispatches: %d, preemptions: %d, context switches: %d",
		report.Cycles, report.Dispatches, report.Preemptions, report.ContextSwitches)))
	finished := 0
	for _, stats := range report.Processes {
		if stats.Finished {
			finished++
		}
	}
	if finished == 0 {
		return
	}
	r.println(r.mutedStyle.Render(fmt.Sprintf("avg waiting: %.2f, avg turnaround: %.2f, avg response: %.2f",
		report.AvgWaiting, report.AvgTurnaround, report.AvgResponse)))
}

func states(snapshot []process.Status) string {
	items := make([]string, 0, len(snapshot))
	for _, status := range snapshot {
		items = append(items, status.String())
	}
	return strings.Join(items, " | ")
}
