package mdsite

import (
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Default site settings and directory layout.
const (
	DefaultSiteName       = "mdsite"
	DefaultTitleSeparator = " · "
	DefaultContentDir     = "documents"
	DefaultTemplatesDir   = "templates"
	DefaultPartialsDir    = "partials"
	DefaultStylesDir      = "styles"
	DefaultFontsDir       = "fonts"
	DefaultOutputDir      = "build"
	DefaultTheme          = "github"
)

// DefaultConverterArgs invoke pandoc as the external document converter,
// reading markdown on stdin and writing an HTML fragment to stdout.
var DefaultConverterArgs = []string{"pandoc", "-f", "markdown", "-t", "html"}

// Config holds site-wide build settings. The zero value is usable: every
// empty field takes its default.
type Config struct {
	// Name is the site name, used as the bare page title and the title
	// suffix on document pages.
	Name string `yaml:"name"`
	// TitleSeparator joins a document title and the site name.
	TitleSeparator string `yaml:"title_separator"`
	// ContentDir holds the source documents.
	ContentDir string `yaml:"content_dir"`
	// TemplatesDir holds the post and index page templates.
	TemplatesDir string `yaml:"templates_dir"`
	// PartialsDir holds reusable template fragments; every file becomes a
	// named partial (extension stripped).
	PartialsDir string `yaml:"partials_dir"`
	// StylesDir holds the base stylesheet and font stylesheet template.
	StylesDir string `yaml:"styles_dir"`
	// FontsDir holds font binaries inlined into assets/fonts.css.
	FontsDir string `yaml:"fonts_dir"`
	// OutputDir is the output root.
	OutputDir string `yaml:"output_dir"`
	// Theme names the chroma style used for code highlighting CSS.
	Theme string `yaml:"theme"`
	// ConverterArgs is the external converter argv. Empty means pandoc.
	ConverterArgs []string `yaml:"converter"`
}

// LoadConfig reads a YAML config file and applies defaults. A missing
// file is not an error: the defaults describe a complete site layout.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withDefaults(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults fills every empty field with its default value.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultSiteName
	}
	if c.TitleSeparator == "" {
		c.TitleSeparator = DefaultTitleSeparator
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.PartialsDir == "" {
		c.PartialsDir = DefaultPartialsDir
	}
	if c.StylesDir == "" {
		c.StylesDir = DefaultStylesDir
	}
	if c.FontsDir == "" {
		c.FontsDir = DefaultFontsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if len(c.ConverterArgs) == 0 {
		c.ConverterArgs = DefaultConverterArgs
	}
	return c
}
