package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/game"
)

// surfaces tracks which of the three game surfaces is visible and what the
// intro and game-over panels show. It is the session's Presenter.
type surfaces struct {
	phase     game.Phase
	score     string
	highScore string
}

func (s *surfaces) ShowIntro(highScore string) {
	s.phase = game.PhaseIntro
	s.highScore = highScore
}

func (s *surfaces) ShowPlaying() {
	s.phase = game.PhasePlaying
}

func (s *surfaces) ShowGameOver(score, highScore string) {
	s.phase = game.PhaseGameOver
	s.score = score
	s.highScore = highScore
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFC107")).
			Padding(1, 4).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// introPanel renders the start screen.
func introPanel(highScore string, width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S K Y H O P"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("High score: "))
	b.WriteString(valueStyle.Render(highScore))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("press space to start"))
	return place(panelStyle.Render(b.String()), width, height)
}

// gameOverPanel renders the final score and high score.
func gameOverPanel(score, highScore string, width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s%s\n", labelStyle.Render("Score:      "), valueStyle.Render(score)))
	b.WriteString(fmt.Sprintf("%s%s", labelStyle.Render("High score: "), valueStyle.Render(highScore)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("press r to play again"))
	return place(panelStyle.Render(b.String()), width, height)
}

func place(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
