package styles

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Color    Color
	Doc      lipgloss.Style
	TitleBar lipgloss.Style
	Status   lipgloss.Style
	Cell     lipgloss.Style
	Green    lipgloss.Style
	Purple   lipgloss.Style
	Yellow   lipgloss.Style
	Subtle   lipgloss.Style
}

type Color struct {
	Yellow            lipgloss.Color
	Green             lipgloss.Color
	Purple            lipgloss.Color
	Subtle            lipgloss.AdaptiveColor
	PrimaryForeground lipgloss.AdaptiveColor
}

func Default() *Style {
	yellow := lipgloss.Color("#FAD105")
	green := lipgloss.Color("#17C81D")
	purple := lipgloss.Color("#DA0ED3")
	subtle := lipgloss.AdaptiveColor{Light: "#9A9C93", Dark: "#6C6C6C"}
	primaryForeground := lipgloss.AdaptiveColor{Light: "#383838", Dark: "#D9DCCF"}

	return &Style{
		Color: Color{
			// timing colors
			Yellow: yellow,
			Green:  green,
			Purple: purple,
			// thematic colors
			Subtle:            subtle,
			PrimaryForeground: primaryForeground,
		},
		Doc: lipgloss.NewStyle().Margin(1, 1),
		TitleBar: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primaryForeground).
			Foreground(primaryForeground),
		Status: lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Cell:   lipgloss.NewStyle().Foreground(primaryForeground),
		Green:  lipgloss.NewStyle().Foreground(green),
		Purple: lipgloss.NewStyle().Foreground(purple),
		Yellow: lipgloss.NewStyle().Foreground(yellow),
		Subtle: lipgloss.NewStyle().Foreground(subtle),
	}
}
