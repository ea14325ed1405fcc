package inkwell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for an inkwell site. Values come from
// inkwell.yml, overridden by INKWELL_* environment variables.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // site name (default "Blog")
	URL         string `mapstructure:"url"`         // canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // author name for the footer and JSON-LD
	Social      Social `mapstructure:"social"`

	ContentDir string `mapstructure:"content_dir"` // Markdown sources (default "content")
	StaticDir  string `mapstructure:"static_dir"`  // user-owned assets (default "public")
	OutputDir  string `mapstructure:"output_dir"`  // static build target (default "dist")
	CacheDir   string `mapstructure:"cache_dir"`   // build cache location (default ".inkwell")

	Addr          string `mapstructure:"addr"`           // dev server listen address (default ":3000")
	AdminPassword string `mapstructure:"admin_password"` // enables the authoring dashboard when set
	SessionSecret string `mapstructure:"session_secret"` // required when the dashboard is enabled
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // set true when serving dev over HTTPS

	CacheTTL time.Duration `mapstructure:"cache_ttl"` // dev content cache TTL (default 5min)

	Deploy DeployConfig `mapstructure:"deploy"`
}

// Social holds account handles rendered as footer links. Each link is the
// fixed service prefix concatenated with the handle.
type Social struct {
	GitHub   string `mapstructure:"github"`
	Twitter  string `mapstructure:"twitter"`
	LinkedIn string `mapstructure:"linkedin"`
}

// DeployConfig describes the external sync command that publishes the
// output directory. The literal "{out}" in Args is replaced with OutputDir.
type DeployConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	Retries int      `mapstructure:"retries"` // extra attempts after a failure (default 1, 0 disables retrying)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.CacheDir == "" {
		c.CacheDir = ".inkwell"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

// LoadConfig reads the site configuration from path (or ./inkwell.yml when
// path is empty) and applies INKWELL_* environment overrides, e.g.
// INKWELL_ADMIN_PASSWORD or INKWELL_DEPLOY_COMMAND.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("inkwell")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("INKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register every key so AutomaticEnv can resolve overrides even when the
	// key is absent from the config file.
	for _, key := range []string{
		"name", "url", "description", "author",
		"social.github", "social.twitter", "social.linkedin",
		"content_dir", "static_dir", "output_dir", "cache_dir",
		"addr", "admin_password", "session_secret", "cookie_secure",
		"cache_ttl", "deploy.command", "deploy.args",
	} {
		v.SetDefault(key, nil)
	}
	// deploy.retries defaults to 1; an explicit 0 disables retrying.
	v.SetDefault("deploy.retries", 1)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("inkwell: read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("inkwell: parse config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the dev server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
