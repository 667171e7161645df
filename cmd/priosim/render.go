package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var processHues = []color.Attribute{
	color.FgCyan, color.FgGreen, color.FgYellow, color.FgMagenta,
	color.FgBlue, color.FgRed, color.FgHiCyan, color.FgHiGreen,
}

// palette hands out one color per process id, in order of first appearance.
type palette struct {
	colorize bool
	byID     map[int]*color.Color
	idle     *color.Color
}

func newPalette(colorize bool) *palette {
	p := &palette{colorize: colorize, byID: map[int]*color.Color{}}
	p.idle = p.newColor(color.FgHiBlack, color.Faint)
	return p
}

func (p *palette) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p *palette) forOccupant(o simulator.Occupant) *color.Color {
	id, ok := o.ProcessID()
	if !ok {
		return p.idle
	}
	c, ok := p.byID[id]
	if !ok {
		c = p.newColor(color.Bold, processHues[len(p.byID)%len(processHues)])
		p.byID[id] = c
	}
	return c
}

func segmentLabel(o simulator.Occupant) string {
	if id, ok := o.ProcessID(); ok {
		return "P" + strconv.Itoa(id)
	}
	return "idle"
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// renderGantt draws one cell per segment with the segment start times underneath:
//
//	| P1 | P2 | P1 |
//	0    1    4    8
func renderGantt(w io.Writer, res *simulator.Result, colorize bool) {
	colors := newPalette(colorize)
	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, seg := range res.Segments {
		label := segmentLabel(seg.Occupant)
		start := strconv.Itoa(seg.Start)
		width := max(len(label)+2, len(start)+1, 4)
		bar.WriteString(colors.forOccupant(seg.Occupant).Sprint(center(label, width)))
		bar.WriteString("|")
		axis.WriteString(start + strings.Repeat(" ", width+1-len(start)))
	}
	axis.WriteString(strconv.Itoa(res.TotalTime))

	fmt.Fprintln(w, "Gantt chart")
	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
	fmt.Fprintln(w)
}

func renderTable(w io.Writer, res *simulator.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	for _, p := range res.SortedByID() {
		table.Append([]string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", res.AverageTurnaroundTime),
		fmt.Sprintf("%.2f", res.AverageWaitingTime),
		fmt.Sprintf("%.2f", res.AverageResponseTime),
	})
	table.Render()

	fmt.Fprintf(w, "Average Waiting Time: %.2f    Average Turnaround Time: %.2f\n",
		res.AverageWaitingTime, res.AverageTurnaroundTime)
	fmt.Fprintf(w, "Total Time: %d    Idle Time: %d    CPU Utilization: %.2f%%    Throughput: %.2f/t    Context Switches: %d\n",
		res.TotalTime, res.IdleTime, res.CPUUtilization*100, res.Throughput, res.ContextSwitches)
}

// renderResult writes res in the requested output format.
func renderResult(w io.Writer, res *simulator.Result, output string, colorize bool) error {
	switch output {
	case outputTable:
		renderGantt(w, res, colorize)
		renderTable(w, res)
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return fmt.Errorf("unknown output %q, want %s or %s", output, outputTable, outputJSON)
}
