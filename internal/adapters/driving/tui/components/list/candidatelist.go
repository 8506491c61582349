// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsgc-labs/titan-scout/internal/adapters/driving/tui/styles"
	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// CandidateList displays ranked candidates in a navigable list.
type CandidateList struct {
	candidates []domain.Candidate
	selected   int
	styles     *styles.Styles
	width      int
	height     int
}

// NewCandidateList creates a new candidate list component.
func NewCandidateList(s *styles.Styles) *CandidateList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CandidateList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the candidate list.
func (r *CandidateList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *CandidateList) Update(msg tea.Msg) (*CandidateList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.candidates) > 0 {
				r.selected = len(r.candidates) - 1
			}
		}
	}
	return r, nil
}

// View renders the candidate list.
func (r *CandidateList) View() string {
	header := r.styles.Subtitle.Render(fmt.Sprintf("Candidates (%d)", len(r.candidates)))
	if len(r.candidates) == 0 {
		return header + "\n\n" + r.styles.Muted.Render("No candidates yet. Press s to scan.")
	}

	lines := make([]string, 0, len(r.candidates)*2+2)
	lines = append(lines, header, "")

	// Each candidate takes two lines
	visibleCount := max(1, (r.height-2)/2)

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.candidates))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderCandidate(i, &r.candidates[i]))
	}

	return strings.Join(lines, "\n")
}

// renderCandidate formats a single candidate as a name line and a detail line.
func (r *CandidateList) renderCandidate(index int, c *domain.Candidate) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := truncate(c.Name, max(10, r.width-24))
	year := c.YearBorn
	if y, ok := c.BirthYear(); ok {
		year = fmt.Sprintf("%d", y)
	}

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, name))
	} else {
		nameLine = r.styles.Normal.Render(indicator + name)
	}
	nameLine += " " + r.styles.Badge(c.DiscoveryMethod)

	detail := fmt.Sprintf("    %s | %s | %s", c.Club, year, c.FoundVia)
	detailLine := r.styles.Muted.Render(truncate(detail, max(20, r.width-2)))

	return nameLine + "\n" + detailLine
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// SetCandidates replaces the list. The selection is kept on the same
// identity when it is still present.
func (r *CandidateList) SetCandidates(candidates []domain.Candidate) {
	var keep string
	if c := r.SelectedCandidate(); c != nil {
		keep = c.Identity
	}

	r.candidates = candidates
	r.selected = 0
	if keep == "" {
		return
	}
	for i := range candidates {
		if candidates[i].Identity == keep {
			r.selected = i
			return
		}
	}
}

// Candidates returns the current candidates.
func (r *CandidateList) Candidates() []domain.Candidate {
	return r.candidates
}

// Selected returns the index of the selected candidate.
func (r *CandidateList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *CandidateList) SetSelected(index int) {
	if index >= 0 && index < len(r.candidates) {
		r.selected = index
	}
}

// SelectedCandidate returns the currently selected candidate, or nil if none.
func (r *CandidateList) SelectedCandidate() *domain.Candidate {
	if len(r.candidates) == 0 || r.selected < 0 || r.selected >= len(r.candidates) {
		return nil
	}
	return &r.candidates[r.selected]
}

// MoveUp moves selection up.
func (r *CandidateList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *CandidateList) MoveDown() {
	if r.selected < len(r.candidates)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *CandidateList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *CandidateList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *CandidateList) Height() int {
	return r.height
}

// Count returns the number of candidates.
func (r *CandidateList) Count() int {
	return len(r.candidates)
}

// IsEmpty returns whether the list is empty.
func (r *CandidateList) IsEmpty() bool {
	return len(r.candidates) == 0
}
