package inkwell

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-press/inkwell/ogimage"
	"github.com/inkwell-press/inkwell/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, views.Home(viewSite(a.Config), viewPosts(posts), "", tags))
}

func (a *App) handleTag(c echo.Context) error {
	tag := c.Param("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, views.Home(viewSite(a.Config), viewPosts(posts), tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(viewSite(a.Config)))
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	related := FilterRelatedPosts(post, posts)
	return Render(c, views.PostPage(viewSite(a.Config), viewPost(post), viewPosts(related)))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteFeed(c.Response(), a.Config, posts)
}

// handleOGImage serves /og/<slug>.png, generated on the fly in dev. The
// special slug "home" yields the site-wide card.
func (a *App) handleOGImage(c echo.Context) error {
	name := c.Param("slug")
	const ext = ".png"
	if len(name) <= len(ext) || name[len(name)-len(ext):] != ext {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	slug := name[:len(name)-len(ext)]

	card := ogimage.Card{Site: a.Config.URL, Author: a.Config.Author}
	if slug == "home" {
		card.Title = a.Config.Name
		card.Description = a.Config.Description
	} else {
		post, err := a.Cache.GetPost(slug)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			return err
		}
		card.Title = post.Title
		card.Description = post.Description
		card.Date = post.Date
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().WriteHeader(http.StatusOK)
	return ogimage.EncodePNG(c.Response(), card)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	userPath := a.Config.StaticDir + "/favicon.svg"
	if fileExists(userPath) {
		return c.File(userPath)
	}
	data, err := faviconBytes()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, RobotsTxt(a.Config))
}

// handleThemeCSS serves the embedded default stylesheet unless the user's
// static dir overrides it.
func (a *App) handleThemeCSS(c echo.Context) error {
	userPath := a.Config.StaticDir + "/theme.css"
	if fileExists(userPath) {
		return c.File(userPath)
	}
	data, err := themeCSSBytes()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", data)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(viewSite(a.Config)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError(viewSite(a.Config)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
