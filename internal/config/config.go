package config

// Defaults applied by the CLI before reading journal.yaml or
// JOURNAL_* environment overrides.
const (
	DefaultContentDir   = "content"
	DefaultTemplatesDir = "templates"
	DefaultFontsDir     = "assets/fonts"
	DefaultOutputDir    = "public"
	DefaultSiteTitle    = "Journal"
	DefaultSiteURL      = "https://journal.example.com"
)

// DefaultPalette is the badge color cycle for tags: the i-th tag in
// sorted order gets entry i modulo the palette length. 15 entries.
var DefaultPalette = []string{
	"#ea00ff", // magenta
	"#ff0808", // red
	"#009e00", // green
	"#094fff", // blue
	"#ffdb0c", // yellow
	"#ff6b00", // orange
	"#00d4ff", // cyan
	"#9d00ff", // purple
	"#ff0066", // pink
	"#00ff88", // teal
	"#76ff57", // lime
	"#ff57ff", // fuchsia
	"#57ffff", // aqua
	"#ff5757", // coral
	"#5757ff", // indigo
}

// Config is the full, immutable configuration of one publish run.
// It is decoded once at startup and passed down; nothing reads
// configuration ambiently after that.
type Config struct {
	ContentDir   string   `mapstructure:"contentDir"`
	TemplatesDir string   `mapstructure:"templatesDir"`
	FontsDir     string   `mapstructure:"fontsDir"`
	OutputDir    string   `mapstructure:"outputDir"`
	SiteTitle    string   `mapstructure:"siteTitle"`
	SiteURL      string   `mapstructure:"siteURL"`
	Author       string   `mapstructure:"author"`
	Palette      []string `mapstructure:"palette"`
}
