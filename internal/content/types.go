// Package content defines the blog and portfolio collections and loads them
// from markdown files with YAML front matter.
package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a calendar date or timestamp decoded from front matter. Both
// quoted and unquoted values are accepted.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	value := strings.TrimSpace(node.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("line %d: invalid date %q", node.Line, node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// BlogPost is one entry of the blog collection.
type BlogPost struct {
	Slug        string   `yaml:"-"`
	Path        string   `yaml:"-"`
	Body        string   `yaml:"-"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	PublishDate Date     `yaml:"publishDate" validate:"required"`
	Author      string   `yaml:"author" validate:"required"`
	Image       string   `yaml:"image" validate:"required"`
	Tags        []string `yaml:"tags" validate:"required"`
	Featured    bool     `yaml:"featured"`
	ReadTime    string   `yaml:"readTime,omitempty"`
	Category    string   `yaml:"category,omitempty"`
}

// ReadingTime returns ReadTime, or an estimate from the body when unset.
func (p BlogPost) ReadingTime() string {
	if p.ReadTime != "" {
		return p.ReadTime
	}
	return EstimateReadTime(p.Body)
}

// PortfolioProject is one entry of the portfolio collection.
type PortfolioProject struct {
	Slug        string   `yaml:"-"`
	Path        string   `yaml:"-"`
	Body        string   `yaml:"-"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Client      string   `yaml:"client,omitempty"`
	Date        Date     `yaml:"date" validate:"required"`
	Category    string   `yaml:"category" validate:"required"`
	Images      []string `yaml:"images" validate:"required"`
	Featured    bool     `yaml:"featured"`
	Tags        []string `yaml:"tags,omitempty"`
	ProjectURL  string   `yaml:"projectUrl,omitempty" validate:"omitempty,url"`
}

// Blog is the blog collection, newest first.
type Blog []BlogPost

// Featured returns the featured posts.
func (b Blog) Featured() Blog {
	var out Blog
	for _, p := range b {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every tag used in the collection, sorted and deduplicated.
func (b Blog) Tags() []string {
	var all []string
	for _, p := range b {
		all = append(all, p.Tags...)
	}
	return uniqueSorted(all)
}

// Portfolio is the portfolio collection, newest first.
type Portfolio []PortfolioProject

// Featured returns the featured projects.
func (p Portfolio) Featured() Portfolio {
	var out Portfolio
	for _, project := range p {
		if project.Featured {
			out = append(out, project)
		}
	}
	return out
}

// Tags returns every tag used in the collection, sorted and deduplicated.
func (p Portfolio) Tags() []string {
	var all []string
	for _, project := range p {
		all = append(all, project.Tags...)
	}
	return uniqueSorted(all)
}

// Categories returns every project category, sorted and deduplicated.
func (p Portfolio) Categories() []string {
	all := make([]string, 0, len(p))
	for _, project := range p {
		all = append(all, project.Category)
	}
	return uniqueSorted(all)
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
