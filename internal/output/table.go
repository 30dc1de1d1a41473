package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"teamgen/internal/roster"
)

var (
	teamTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	leaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	teamBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// renderTable renders one bordered block per team, leader first.
func renderTable(r roster.Roster) string {
	blocks := make([]string, 0, len(r))
	for i, team := range r {
		var b strings.Builder
		b.WriteString(teamTitleStyle.Render(fmt.Sprintf("Team %d", i+1)))
		b.WriteString("\n")
		b.WriteString(leaderStyle.Render(team.Leader.Name + " (leader)"))
		for _, m := range team.Members {
			b.WriteString("\n" + m.Name)
		}
		blocks = append(blocks, teamBoxStyle.Render(b.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
