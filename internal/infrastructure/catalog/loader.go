// Package catalog loads theme catalogs from YAML, TOML or JSON files.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/validation"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadFile reads, validates and converts a catalog file. The format follows
// the extension: .yaml/.yml, .toml or .json.
func LoadFile(path string) (*domaintheme.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data using the format implied by path.
func Parse(path string, data []byte) (*domaintheme.Catalog, error) {
	dto, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(path, dto); err != nil {
		return nil, err
	}
	return build(path, dto)
}

func decode(path string, data []byte) (*fileDTO, error) {
	var dto fileDTO
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &dto); err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, apperrors.NewParseError(path, line, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&dto); err != nil {
			return nil, apperrors.NewParseError(path, 0, err)
		}
	default:
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("unsupported catalog format %q", ext))
	}
	return &dto, nil
}

func build(path string, dto *fileDTO) (*domaintheme.Catalog, error) {
	themes := make([]domaintheme.Definition, 0, len(dto.Themes))
	for _, t := range dto.Themes {
		themes = append(themes, t.toDomain())
	}

	defaults := domaintheme.Defaults{Light: dto.Defaults.Light, Dark: dto.Defaults.Dark}
	if dto.IncludeBuiltin {
		themes = append(themes, domaintheme.Builtin().All()...)
		if defaults.Light == "" {
			defaults.Light = domaintheme.DefaultLightID
		}
		if defaults.Dark == "" {
			defaults.Dark = domaintheme.DefaultDarkID
		}
	}

	c, err := domaintheme.NewCatalog(themes, defaults)
	if err != nil {
		return nil, apperrors.NewValidationError(path, "themes", err.Error(), err)
	}
	if err := checkDefaults(path, c, defaults); err != nil {
		return nil, err
	}
	return c, nil
}

// checkDefaults requires each named default to exist with the matching
// category.
func checkDefaults(path string, c *domaintheme.Catalog, defaults domaintheme.Defaults) error {
	for _, category := range []domaintheme.Category{domaintheme.CategoryLight, domaintheme.CategoryDark} {
		id := defaults.For(category)
		if id == "" {
			continue
		}
		def, ok := c.FindByID(id)
		if !ok {
			return apperrors.NewValidationError(path, "defaults."+string(category),
				fmt.Sprintf("theme %q is not in the catalog", id), domaintheme.NewNotFoundError(id))
		}
		if def.Category != category {
			return apperrors.NewValidationError(path, "defaults."+string(category),
				fmt.Sprintf("theme %q is %s", id, def.Category), nil)
		}
	}
	return nil
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
