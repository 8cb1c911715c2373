package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/content"
)

const dateLayout = "2006-01-02"

func newContentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate and list blog posts and portfolio projects",
	}

	cmd.AddCommand(newContentValidateCmd(app))
	cmd.AddCommand(newContentListCmd(app))

	return cmd
}

func newContentValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every content file against its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.content.validate")
			cfg := app.Config.Content

			blog, blogErr := content.LoadBlog(cfg.BlogDir())
			portfolio, portfolioErr := content.LoadPortfolio(cfg.PortfolioDir())
			problems := append(splitErrors(blogErr), splitErrors(portfolioErr)...)
			logger.Info(ctx, "content validated",
				"path", cfg.Dir, "posts", len(blog), "projects", len(portfolio), "problems", len(problems))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Blog posts:         %d valid\n", len(blog))
			fmt.Fprintf(out, "Portfolio projects: %d valid\n", len(portfolio))

			if len(problems) == 0 {
				fmt.Fprintln(out, "\n"+components.SuccessAlert("All content files are valid.").View())
				return nil
			}

			lines := make([]string, 0, len(problems))
			for _, p := range problems {
				lines = append(lines, "• "+p.Error())
			}
			fmt.Fprintln(out, "\n"+components.ErrorAlert(strings.Join(lines, "\n")).View())
			return newCommandError("validate content", fmt.Sprintf("checking %q", cfg.Dir),
				fmt.Errorf("%d invalid file(s)", len(problems)), "Fix the front matter fields listed above.")
		},
	}
}

// splitErrors flattens an errors.Join result.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}

type contentListOptions struct {
	featured   bool
	tag        string
	jsonOutput bool
}

func newContentListCmd(app *AppContext) *cobra.Command {
	opts := &contentListOptions{}

	cmd := &cobra.Command{
		Use:       "list <blog|portfolio>",
		Short:     "List blog posts or portfolio projects, newest first",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"blog", "portfolio"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.content.list")
			cfg := app.Config.Content

			switch args[0] {
			case "blog":
				posts, err := content.LoadBlog(cfg.BlogDir())
				if err != nil {
					logger.Warn(ctx, "some blog posts were skipped", "error", err)
				}
				if opts.featured {
					posts = posts.Featured()
				}
				posts = filterPosts(posts, opts.tag)
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), postsJSON(posts))
				}
				return renderPosts(cmd.OutOrStdout(), posts)

			case "portfolio":
				projects, err := content.LoadPortfolio(cfg.PortfolioDir())
				if err != nil {
					logger.Warn(ctx, "some portfolio projects were skipped", "error", err)
				}
				if opts.featured {
					projects = projects.Featured()
				}
				projects = filterProjects(projects, opts.tag)
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), projectsJSON(projects))
				}
				return renderProjects(cmd.OutOrStdout(), projects)

			default:
				return newCommandError("list content", fmt.Sprintf("choosing collection %q", args[0]),
					fmt.Errorf("unknown collection"), "Use 'blog' or 'portfolio'.")
			}
		},
	}

	cmd.Flags().BoolVar(&opts.featured, "featured", false, "Only featured entries")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "Only entries with this tag")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func filterPosts(posts content.Blog, tag string) content.Blog {
	if tag == "" {
		return posts
	}
	out := make(content.Blog, 0, len(posts))
	for _, p := range posts {
		if hasTag(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

func filterProjects(projects content.Portfolio, tag string) content.Portfolio {
	if tag == "" {
		return projects
	}
	out := make(content.Portfolio, 0, len(projects))
	for _, p := range projects {
		if hasTag(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

func renderPosts(w io.Writer, posts content.Blog) error {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No blog posts found.")
		return nil
	}
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SLUG\tTITLE\tPUBLISHED\tREAD TIME\tTAGS")
	for _, p := range posts {
		title := p.Title
		if p.Featured {
			title += " ★"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			p.Slug, title, p.PublishDate.Format(dateLayout), p.ReadingTime(), strings.Join(p.Tags, ", "))
	}
	return writer.Flush()
}

func renderProjects(w io.Writer, projects content.Portfolio) error {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No portfolio projects found.")
		return nil
	}
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SLUG\tTITLE\tCLIENT\tDATE\tCATEGORY")
	for _, p := range projects {
		title := p.Title
		if p.Featured {
			title += " ★"
		}
		client := p.Client
		if client == "" {
			client = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", p.Slug, title, client, p.Date.Format(dateLayout), p.Category)
	}
	return writer.Flush()
}

type postJSON struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PublishDate string   `json:"publishDate"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	ReadTime    string   `json:"readTime"`
}

func postsJSON(posts content.Blog) []postJSON {
	out := make([]postJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			PublishDate: p.PublishDate.Format(dateLayout),
			Author:      p.Author,
			Tags:        p.Tags,
			Featured:    p.Featured,
			ReadTime:    p.ReadingTime(),
		})
	}
	return out
}

type projectJSON struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Client     string   `json:"client,omitempty"`
	Date       string   `json:"date"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Featured   bool     `json:"featured"`
	ProjectURL string   `json:"projectUrl,omitempty"`
}

func projectsJSON(projects content.Portfolio) []projectJSON {
	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectJSON{
			Slug:       p.Slug,
			Title:      p.Title,
			Client:     p.Client,
			Date:       p.Date.Format(dateLayout),
			Category:   p.Category,
			Tags:       p.Tags,
			Featured:   p.Featured,
			ProjectURL: p.ProjectURL,
		})
	}
	return out
}
