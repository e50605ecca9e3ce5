package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/feedstate"
	"github.com/CrestNiraj12/termsocial/infra/config"
	"github.com/CrestNiraj12/termsocial/infra/logging"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

const contentColumnWidth = 48

// Feed prints the home feed without starting the TUI.
type Feed struct {
	Refreshes int
}

func addFeed(topLevel *cobra.Command) {
	f := &Feed{}
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the home feed as a table.",
		Example: `
termsocial feed
termsocial feed --refresh 2
TERMSOCIAL_SEED=42 termsocial feed -r 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.Refreshes < 0 {
				return fmt.Errorf("--refresh must be >= 0, got %d", f.Refreshes)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logs, err := logging.Setup(cfg.LogPath)
			if err != nil {
				return err
			}
			defer logs.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return f.do(ctx, newServices(cfg), cfg.Locale(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&f.Refreshes, "refresh", "r", 0, "Number of refreshes to run before printing.")

	topLevel.AddCommand(cmd)
}

// do seeds a feed, applies the requested refreshes and prints the result.
func (f *Feed) do(ctx context.Context, svc services, tag language.Tag, out io.Writer) error {
	user, err := svc.accounts.CurrentUser(ctx)
	if err != nil {
		return err
	}
	seed, err := svc.posts.Seed(ctx)
	if err != nil {
		return err
	}
	mgr := feedstate.New(user, seed, svc.clock, svc.ids)

	for range f.Refreshes {
		if err := mgr.BeginRefresh(); err != nil {
			return err
		}
		batch, err := svc.posts.Refresh(ctx)
		mgr.CompleteRefresh(batch, err)
		if err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
	}

	printFeed(out, mgr.Posts(), svc.clock.Now(), tag)
	return nil
}

func printFeed(out io.Writer, posts []domain.Post, now time.Time, tag language.Tag) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	liked := color.New(color.FgHiMagenta)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("AUTOR"), bold.Sprint("HACE"), bold.Sprint("LIKES"),
		bold.Sprint("COMENTARIOS"), bold.Sprint("CONTENIDO"))
	for _, p := range posts {
		author := p.Author.Name
		if p.Author.Verified {
			author += " ✓"
		}
		likes := common.FormatCount(p.Likes, tag)
		if p.Liked {
			likes = liked.Sprint(likes)
		}
		tbl.AddRow(
			faint.Sprint(p.ID),
			author,
			common.FormatRelative(p.CreatedAt, now, tag),
			likes,
			len(p.Comments),
			oneLine(p.Content, contentColumnWidth),
		)
	}
	_, _ = fmt.Fprintln(out, tbl)
}

func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return ansi.Truncate(s, width, "…")
}
