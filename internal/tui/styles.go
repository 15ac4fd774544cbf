package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zinosalaam1/greyarchive/internal/content"
)

// ---------------------------------------------------------------------------
// Neutral palette: the archive is grey on purpose
// ---------------------------------------------------------------------------

const (
	colorNeutral950 lipgloss.Color = "#0a0a0a"
	colorNeutral900 lipgloss.Color = "#171717"
	colorNeutral800 lipgloss.Color = "#262626"
	colorNeutral700 lipgloss.Color = "#404040"
	colorNeutral600 lipgloss.Color = "#525252"
	colorNeutral500 lipgloss.Color = "#737373"
	colorNeutral400 lipgloss.Color = "#a3a3a3"
	colorNeutral300 lipgloss.Color = "#d4d4d4"
	colorNeutral200 lipgloss.Color = "#e5e5e5"
	colorNeutral100 lipgloss.Color = "#f5f5f5"

	colorSuccess lipgloss.Color = "#22c55e"
	colorGlow    lipgloss.Color = "#4ade80"
)

type styles struct {
	r *lipgloss.Renderer

	panel        lipgloss.Style
	panelPerfect lipgloss.Style
	header       lipgloss.Style
	presenter    lipgloss.Style
	title        lipgloss.Style
	heading      lipgloss.Style
	theme        lipgloss.Style
	body         lipgloss.Style
	bright       lipgloss.Style
	dim          lipgloss.Style
	faint        lipgloss.Style
	label        lipgloss.Style
	input        lipgloss.Style
	placeholder  lipgloss.Style
	cursor       lipgloss.Style
	button       lipgloss.Style
	buttonOff    lipgloss.Style
	affordance   lipgloss.Style
	code         lipgloss.Style
	codePerfect  lipgloss.Style
	success      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := &styles{r: r}
	s.panel = r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorNeutral800).
		Padding(1, 3)
	s.panelPerfect = s.panel.BorderForeground(colorSuccess)
	s.header = r.NewStyle().Foreground(colorNeutral600)
	s.presenter = r.NewStyle().Foreground(colorNeutral300)
	s.title = r.NewStyle().Foreground(colorNeutral100).Bold(true)
	s.heading = r.NewStyle().Foreground(colorNeutral200).Bold(true)
	s.theme = r.NewStyle().Foreground(colorNeutral400)
	s.body = r.NewStyle().Foreground(colorNeutral300)
	s.bright = r.NewStyle().Foreground(colorNeutral100)
	s.dim = r.NewStyle().Foreground(colorNeutral500)
	s.faint = r.NewStyle().Foreground(colorNeutral600).Italic(true)
	s.label = r.NewStyle().Foreground(colorNeutral500)
	s.input = r.NewStyle().Foreground(colorNeutral100)
	s.placeholder = r.NewStyle().Foreground(colorNeutral700)
	s.cursor = r.NewStyle().Foreground(colorNeutral400)
	s.button = r.NewStyle().
		Foreground(colorNeutral100).
		Background(colorNeutral800).
		Padding(0, 2)
	s.buttonOff = r.NewStyle().
		Foreground(colorNeutral700).
		Background(colorNeutral900).
		Padding(0, 2)
	s.affordance = r.NewStyle().Foreground(colorNeutral600).Underline(true)
	s.code = r.NewStyle().Foreground(colorNeutral400).Bold(true)
	s.codePerfect = r.NewStyle().Foreground(colorGlow).Bold(true)
	s.success = r.NewStyle().Foreground(colorGlow)
	return s
}

// tone maps a script tone to a style. accent is the room's hex color.
func (s *styles) tone(t content.Tone, accent string) lipgloss.Style {
	switch t {
	case content.ToneDim:
		return s.dim
	case content.ToneFaint:
		return s.faint
	case content.ToneAccent:
		return s.accent(accent)
	default:
		return s.body
	}
}

func (s *styles) accent(hex string) lipgloss.Style {
	if hex == "" {
		return s.bright
	}
	return s.r.NewStyle().Foreground(lipgloss.Color(hex))
}
