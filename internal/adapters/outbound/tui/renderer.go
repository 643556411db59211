package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fivefactor/ipipneo/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	levelColors = map[domain.Level]lipgloss.Color{
		domain.LevelLow:     info,
		domain.LevelAverage: warning,
		domain.LevelHigh:    success,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	domainStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a scored questionnaire for terminal output.
func RenderResult(r *domain.Result) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render(r.Theory)
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %d questions", r.Model, int(r.Question)))
	person := titleStyle.Render(fmt.Sprintf("sex %s · age %d", r.Person.Sex, r.Person.Age))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + person))
	b.WriteString("\n\n")

	// ── Domains ──
	for i, d := range r.Person.Result.Personalities {
		renderDomain(&b, d)
		if i < len(r.Person.Result.Personalities)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if cmp := r.Person.Result.Compare; cmp != nil {
		changed := countChanged(cmp)
		b.WriteString("  " + titleStyle.Render("Reversal") + "  ")
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d answers reverse-keyed", changed)))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("%s %s · %s · %s", r.Library, r.Version, r.Date, r.ID)))
	return b.String()
}

func renderDomain(b *strings.Builder, d domain.DomainResult) {
	name := domainStyle.Render(padRight(d.Label.Name(), 20))
	bar := coloredBar(d.Score, 20, d.Level)
	score := lipgloss.NewStyle().Bold(true).Foreground(levelColor(d.Level)).Render(fmt.Sprintf("%5.1f", d.Score))
	t := dimStyle.Render(fmt.Sprintf("T %.1f", d.TScore))
	fmt.Fprintf(b, "  %s %s  %s %s  %s\n", name, bar, score, levelTag(d.Level), t)

	for _, tr := range d.Traits {
		title, err := domain.FacetTitle(d.Label, tr.Trait)
		if err != nil {
			title = tr.Name
		}
		icon := lipgloss.NewStyle().Foreground(levelColor(tr.Level)).Render("●")
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			icon,
			padRight(title, 28),
			dimStyle.Render(fmt.Sprintf("%5.1f", tr.Score)),
			faintStyle.Render(string(tr.Level)),
		)
	}
}

func countChanged(cmp *domain.Comparison) int {
	n := 0
	for i := range cmp.Original {
		if i < len(cmp.Reversed) && cmp.Original[i].Selected != cmp.Reversed[i].Selected {
			n++
		}
	}
	return n
}

func levelTag(l domain.Level) string {
	return lipgloss.NewStyle().Foreground(levelColor(l)).Render(padRight(string(l), 7))
}

func levelColor(l domain.Level) lipgloss.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return fg
}

func coloredBar(score float64, width int, l domain.Level) string {
	filled := max(0, min(int(score)*width/100, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(levelColor(l)).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderNorm formats the norm record selected for a respondent.
func RenderNorm(rec domain.NormRecord, v domain.Variant, sex domain.Sex, age int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Norm #%d", rec.ID)) + "  " + dimStyle.Render(rec.Category) + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d questions · sex %s · age %d", int(v), sex, age)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, l := range domain.Labels {
		mean, _ := rec.DomainMean(l)
		sd, _ := rec.DomainSD(l)
		fmt.Fprintf(&b, "  %s %s  %s\n",
			domainStyle.Render(padRight(l.Name(), 20)),
			fmt.Sprintf("mean %7.2f", mean),
			dimStyle.Render(fmt.Sprintf("sd %6.2f", sd)),
		)
		for i := 1; i <= 6; i++ {
			key, _ := domain.FacetKey(l, i)
			fm, _ := rec.FacetMean(l, i)
			fsd, _ := rec.FacetSD(l, i)
			fmt.Fprintf(&b, "    %s %s  %s\n",
				padRight(key, 28),
				fmt.Sprintf("mean %6.2f", fm),
				faintStyle.Render(fmt.Sprintf("sd %5.2f", fsd)),
			)
		}
	}
	return b.String()
}

// RenderFacets formats the facet-to-item layout of a variant. Reverse-keyed
// items carry an R suffix.
func RenderFacets(v domain.Variant, rows []domain.FacetInfo) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Facets · %d questions", int(v))) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range rows {
		title, err := domain.FacetTitle(r.Label, r.Trait)
		if err != nil {
			title = r.Name
		}
		reversed := make(map[int]bool, len(r.Reversed))
		for _, id := range r.Reversed {
			reversed[id] = true
		}
		items := make([]string, len(r.Items))
		for i, id := range r.Items {
			s := fmt.Sprintf("%d", id)
			if reversed[id] {
				s = failStyle.Render(s + "R")
			}
			items[i] = s
		}
		fmt.Fprintf(&b, "  %s %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d", r.Facet)),
			domainStyle.Render(string(r.Label)),
			padRight(title, 24),
			strings.Join(items, " "),
		)
	}
	return b.String()
}

// RenderHistory formats saved results for terminal output.
func RenderHistory(entries []domain.ResultEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No result history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Result History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}

		parts := make([]string, 0, len(domain.Labels))
		for _, l := range domain.Labels {
			s := fmt.Sprintf("%s %5.1f", l, e.Scores[string(l)])
			if i > 0 {
				diff := e.Scores[string(l)] - entries[i-1].Scores[string(l)]
				switch {
				case diff >= 0.05:
					s += passStyle.Render("↑")
				case diff <= -0.05:
					s += failStyle.Render("↓")
				default:
					s += " "
				}
			}
			parts = append(parts, s)
		}

		date := e.Date
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(id),
			dimStyle.Render(fmt.Sprintf("%s%d", e.Sex, e.Age)),
			strings.Join(parts, "  "),
		)
	}

	return b.String()
}
