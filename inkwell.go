// Package inkwell is a Markdown-driven blog engine. Posts live as
// Markdown files with YAML front matter; inkwell renders them into a
// fully static site (pages, RSS, sitemap, open-graph images) and serves
// them live in development with a file-backed authoring dashboard.
package inkwell

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// App is the central inkwell application used by the dev server. It wires
// together the content source, cache, watcher, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Source *Source
	Cache  *PostCache

	log          zerolog.Logger
	loginLimiter *loginLimiter
	watcher      *Watcher
	customRoutes []func(*App)
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, logger zerolog.Logger, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		log:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Serve initializes the content source, cache, watcher, middleware, and
// routes, then starts the dev server. Drafts are visible in dev.
func (a *App) Serve() error {
	if err := a.setup(); err != nil {
		return err
	}

	a.log.Info().Str("addr", a.Config.Addr).Str("content", a.Config.ContentDir).Msg("dev server listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup validates the configuration and wires source, cache, watcher,
// middleware, and routes without starting the listener.
func (a *App) setup() error {
	if a.dashboardEnabled() && a.Config.SessionSecret == "" {
		return fmt.Errorf("inkwell: session_secret is required when admin_password is set")
	}
	if _, err := os.Stat(a.Config.ContentDir); err != nil {
		return fmt.Errorf("inkwell: content dir %q: %w", a.Config.ContentDir, err)
	}

	a.Source = NewSource(a.Config.ContentDir)
	a.Cache = NewPostCache(a.Source, a.Config.CacheTTL, true)
	a.loginLimiter = newLoginLimiter(5, time.Minute)

	watcher, err := NewWatcher(a.Config.ContentDir, func() {
		a.log.Info().Msg("content changed, reloading")
		a.Cache.Invalidate()
	})
	if err != nil {
		return fmt.Errorf("inkwell: watch content: %w", err)
	}
	a.watcher = watcher

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) dashboardEnabled() bool {
	return a.Config.AdminPassword != ""
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded theme assets; the user's static dir takes precedence for
	// everything else under /assets and /uploads.
	e.GET("/assets/theme.css", a.handleThemeCSS)
	e.Static("/assets", a.Config.StaticDir)
	e.Static("/uploads", a.Config.StaticDir+"/"+uploadsSubdir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/og/:slug", a.handleOGImage)

	if a.dashboardEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.GET("/admin/post/new/", a.handleAdminNew)
		e.GET("/admin/post/:slug/", a.handleAdminPost)
		e.POST("/admin/save/", a.handleAdminSave)
		e.POST("/admin/delete/:slug/", a.handleAdminDelete)
		e.GET("/admin/images/", a.handleImageList)
		e.POST("/admin/images/upload/", a.handleImageUpload)
		e.POST("/admin/images/delete/:filename/", a.handleImageDelete)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
