// Package config loads report definitions: what to render, how to style it
// and where the output lands.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/docx"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/htmltable"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
	"github.com/aerissecure/pivotgrid/table"
	"github.com/aerissecure/pivotgrid/xlsx"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: PIVOTGRID_ORIGIN__ROW sets origin.row.
const EnvPrefix = "PIVOTGRID_"

// Output formats.
const (
	FormatXLSX  = "xlsx"
	FormatHTML  = "html"
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatDOCX  = "docx"
)

// Origin is the 1-based top-left cell of a spreadsheet region.
type Origin struct {
	Column int `koanf:"column"`
	Row    int `koanf:"row"`
}

// Report is a report definition.
type Report struct {
	Title     string `koanf:"title"`
	TableName string `koanf:"table_name"`
	Sheet     string `koanf:"sheet"`
	Locale    string `koanf:"locale"`
	Format    string `koanf:"format"`
	Origin    Origin `koanf:"origin"`

	RowGroups  bool   `koanf:"row_groups"`
	IndentUnit string `koanf:"indent_unit"`
	AutoFit    bool   `koanf:"autofit"`
	ErrorValue string `koanf:"error_value"`

	ColumnCaptions []pivotgrid.DynamicCaption `koanf:"column_captions"`
	RowCaptions    []pivotgrid.DynamicCaption `koanf:"row_captions"`

	// StylePreset names the template used when Style is absent.
	StylePreset string            `koanf:"style_preset"`
	Style       *style.TableStyle `koanf:"style"`

	language language.Tag
}

func defaults() map[string]any {
	return map[string]any{
		"format":        FormatXLSX,
		"sheet":         "Report",
		"locale":        "en-US",
		"style_preset":  "default",
		"autofit":       true,
		"origin.column": 1,
		"origin.row":    1,
	}
}

// Default returns the report definition used without a file.
func Default() (*Report, error) {
	return Load("")
}

// Load reads a report definition from path, a YAML, JSON or TOML file chosen
// by extension, over the defaults and under PIVOTGRID_ environment overrides.
// An empty path loads defaults and environment only.
func Load(path string) (*Report, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "report definition %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse report definition %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded report definition")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var r Report
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &r,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &r, conf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode report definition")
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return &r, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported report definition format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// finish resolves the template and checks the definition.
func (r *Report) finish() error {
	switch r.Format {
	case FormatXLSX, FormatHTML, FormatTable, FormatCSV, FormatDOCX:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output format %q", r.Format)
	}

	tag, err := language.Parse(r.Locale)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid locale %q", r.Locale)
	}
	r.language = tag

	if r.Origin.Column < 1 || r.Origin.Row < 1 {
		return errors.Newf(errors.ErrConfigParse, "origin %d/%d must be 1-based", r.Origin.Column, r.Origin.Row)
	}

	if r.Style == nil {
		preset, ok := style.Preset(r.StylePreset)
		if !ok {
			return errors.Newf(errors.ErrConfigParse, "unknown style preset %q", r.StylePreset)
		}
		r.Style = preset
	}
	r.Style.Bind()
	if err := r.Style.Normalize(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid style")
	}
	if err := r.Style.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid style")
	}

	for _, c := range append(append([]pivotgrid.DynamicCaption{}, r.ColumnCaptions...), r.RowCaptions...) {
		if c.Level < 1 {
			return errors.Newf(errors.ErrConfigParse, "dynamic caption level %d must be 1-based", c.Level)
		}
	}
	return nil
}

// Language returns the parsed locale.
func (r *Report) Language() language.Tag { return r.language }

func (r *Report) errorValue() any {
	if r.ErrorValue == "" {
		return nil
	}
	return r.ErrorValue
}

// XLSXOptions returns the spreadsheet options of the report.
func (r *Report) XLSXOptions() xlsx.Options {
	return xlsx.Options{
		TableName:      r.TableName,
		Column:         r.Origin.Column,
		Row:            r.Origin.Row,
		Title:          r.Title,
		ColumnCaptions: r.ColumnCaptions,
		RowCaptions:    r.RowCaptions,
		Style:          r.Style.Clone(),
		RowGroups:      r.RowGroups,
		IndentUnit:     r.IndentUnit,
		AutoFit:        r.AutoFit,
		Locale:         r.language,
		ErrorValue:     r.errorValue(),
	}
}

// HTMLOptions returns the HTML options of the report.
func (r *Report) HTMLOptions() htmltable.Options {
	return htmltable.Options{
		Title:          r.Title,
		ColumnCaptions: r.ColumnCaptions,
		RowCaptions:    r.RowCaptions,
		Style:          r.Style.Clone(),
		RowGroups:      r.RowGroups,
		IndentUnit:     r.IndentUnit,
		Locale:         r.language,
	}
}

// DOCXOptions returns the Word document options of the report.
func (r *Report) DOCXOptions() docx.Options {
	return docx.Options{
		Title:          r.Title,
		ColumnCaptions: r.ColumnCaptions,
		RowCaptions:    r.RowCaptions,
		Style:          r.Style.Clone(),
		IndentUnit:     r.IndentUnit,
		Locale:         r.language,
		ErrorValue:     r.errorValue(),
	}
}

// TableOptions returns the generic table options of the report.
func (r *Report) TableOptions() table.Options {
	return table.Options{
		ColumnCaptions: r.ColumnCaptions,
		RowCaptions:    r.RowCaptions,
	}
}
