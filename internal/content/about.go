// Package content holds the copy shown on the about page.
package content

const (
	Institute = "Instituto Relva de Ciências Ambientais e Tecnologia"
	Short     = "Relva"
	Tagline   = "Environmental science, grown in the open."
)

// Highlight is one titled paragraph of the about page.
type Highlight struct {
	Title string
	Body  string
}

// Highlights returns the mission, vision and values blocks in display order.
func Highlights() []Highlight {
	return []Highlight{
		{
			Title: "Mission",
			Body: "Advancing environmental science through innovative research and sustainable " +
				"practices that benefit communities and ecosystems.",
		},
		{
			Title: "Vision",
			Body: "A world where environmental stewardship and technology create a sustainable " +
				"future for many generations to come.",
		},
		{
			Title: "Values",
			Body: "Integrity, collaboration, and a deep commitment to environmental " +
				"responsibility guide everything we do at Instituto Relva.",
		},
	}
}

// Wrap breaks s into lines of at most width runes on word boundaries. Words
// longer than width get a line of their own.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var (
		lines []string
		cur   []rune
	)
	word := []rune{}
	flush := func() {
		if len(word) == 0 {
			return
		}
		if len(cur) > 0 && len(cur)+1+len(word) > width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, word...)
		word = word[:0]
	}
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			flush()
			continue
		}
		word = append(word, r)
	}
	flush()
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
