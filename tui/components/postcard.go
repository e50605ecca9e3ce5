package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

// CardOptions controls how a post card is drawn.
type CardOptions struct {
	Now    time.Time
	Locale language.Tag
	// Width is the total card width including the border; 0 means 72.
	Width    int
	Selected bool
	// MaxLines caps body lines before truncation; 0 means no limit.
	MaxLines int
}

// PostCard renders a post with author, relative time, body and counters.
func PostCard(p domain.Post, opts CardOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 72
	}
	inner := max(width-4, 20)

	header := Avatar(p.Author.Name) + " " + AuthorLine(p.Author.Name, p.Author.Verified) +
		"  " + common.TimestampStyle.Render(common.FormatRelative(p.CreatedAt, opts.Now, opts.Locale))

	body := lipgloss.NewStyle().Width(inner).Render(p.Content)
	if opts.MaxLines > 0 {
		lines := strings.Split(body, "\n")
		if len(lines) > opts.MaxLines {
			lines = lines[:opts.MaxLines]
			last := strings.TrimRight(lines[len(lines)-1], " ")
			lines[len(lines)-1] = ansi.Truncate(last, inner-1, "") + "…"
		}
		body = strings.Join(lines, "\n")
	}

	content := strings.Join([]string{
		clampWidth(header, inner),
		common.ContentStyle.Render(body),
		Counters(p),
	}, "\n")

	style := common.UnselectedStyle
	if opts.Selected {
		style = common.SelectedStyle
	}
	return style.Width(inner + 2).Render(content)
}

// Counters renders the like / comment / share line of a post.
func Counters(p domain.Post) string {
	heart := common.MetadataStyle.Render("♡")
	likes := common.MetadataStyle.Render(fmt.Sprintf("%d", p.Likes))
	if p.Liked {
		heart = common.LikeActiveStyle.Render("♥")
		likes = common.LikeActiveStyle.Render(fmt.Sprintf("%d", p.Likes))
	}
	rest := common.MetadataStyle.Render(fmt.Sprintf("   💬 %d   ⟳ %d", len(p.Comments), p.Shares))
	return heart + " " + likes + rest
}

// CommentLine renders one comment of a thread.
func CommentLine(c domain.Comment, now time.Time, tag language.Tag, width int) string {
	head := Avatar(c.Author.Name) + " " + common.AuthorStyle.Render(c.Author.Name) +
		"  " + common.TimestampStyle.Render(common.FormatRelative(c.CreatedAt, now, tag))
	body := lipgloss.NewStyle().Width(max(width-4, 20)).MarginLeft(4).Render(c.Content)
	return head + "\n" + common.ContentStyle.Render(body)
}

func clampWidth(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
