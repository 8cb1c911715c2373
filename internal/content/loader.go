package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/validation"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadBlog reads every *.md and *.mdx file under dir as a blog post. Valid
// posts are returned newest first even when other files fail; the failures
// are joined into the returned error.
func LoadBlog(dir string) (Blog, error) {
	var posts Blog
	err := walk(dir, func(path, slug string, data []byte) error {
		var post BlogPost
		body, err := ParseFrontMatter(path, data, &post)
		if err != nil {
			return err
		}
		if err := validation.Struct(path, post); err != nil {
			return err
		}
		post.Slug, post.Path, post.Body = slug, path, body
		posts = append(posts, post)
		return nil
	})
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PublishDate.Equal(posts[j].PublishDate.Time) {
			return posts[i].PublishDate.After(posts[j].PublishDate.Time)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, err
}

// LoadPortfolio reads every *.md and *.mdx file under dir as a portfolio
// project, newest first.
func LoadPortfolio(dir string) (Portfolio, error) {
	var projects Portfolio
	err := walk(dir, func(path, slug string, data []byte) error {
		var project PortfolioProject
		body, err := ParseFrontMatter(path, data, &project)
		if err != nil {
			return err
		}
		if err := validation.Struct(path, project); err != nil {
			return err
		}
		project.Slug, project.Path, project.Body = slug, path, body
		projects = append(projects, project)
		return nil
	})
	sort.SliceStable(projects, func(i, j int) bool {
		if !projects[i].Date.Equal(projects[j].Date.Time) {
			return projects[i].Date.After(projects[j].Date.Time)
		}
		return projects[i].Slug < projects[j].Slug
	})
	return projects, err
}

// walk visits the markdown files under dir in lexical order. A missing dir
// yields an empty collection.
func walk(dir string, visit func(path, slug string, data []byte) error) error {
	var errs []error
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			errs = append(errs, apperrors.NewParseError(path, 0, readErr))
			return nil
		}
		if visitErr := visit(path, slugFor(dir, path), data); visitErr != nil {
			errs = append(errs, visitErr)
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

func slugFor(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
