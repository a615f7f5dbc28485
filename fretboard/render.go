package fretboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
)

var (
	rootStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	intervalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle   = lipgloss.NewStyle().Faint(true)
)

const cellWidth = 4

func cell(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}

// Render draws the board highest string on top, marking every selected
// pitch with its interval label.
func (f *Fretboard) Render(sel model.Selection, preferFlats bool) string {
	labels := make(map[model.Pitch]string)
	pitches := interval.Pitches(sel)
	for i, p := range pitches {
		labels[p] = interval.Label(sel.Intervals[i])
	}

	var header strings.Builder
	header.WriteString(cell(""))
	for fret := 0; fret <= f.Frets; fret++ {
		header.WriteString(cell(fmt.Sprint(fret)))
	}
	rows := []string{headerStyle.Render(header.String())}

	for s := len(f.Tuning) - 1; s >= 0; s-- {
		open := f.Tuning[s]
		var row strings.Builder
		row.WriteString(cell(note.PitchName(open, preferFlats)))
		for fret := 0; fret <= f.Frets; fret++ {
			p := open + model.Pitch(fret)
			label, ok := labels[p]
			switch {
			case !ok:
				row.WriteString(emptyStyle.Render(cell("-")))
			case label == "R":
				row.WriteString(rootStyle.Render(cell(label)))
			default:
				row.WriteString(intervalStyle.Render(cell(label)))
			}
		}
		rows = append(rows, row.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
