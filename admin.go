package inkwell

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"

	"github.com/inkwell-press/inkwell/markdown"
	"github.com/inkwell-press/inkwell/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(viewSite(a.Config), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(viewSite(a.Config), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminNew(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	blank := views.Post{Date: time.Now().Format("2006-01-02")}
	return Render(c, views.AdminForm(viewSite(a.Config), blank, CsrfToken(c)))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Source.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return Render(c, views.AdminForm(viewSite(a.Config), viewPost(post), CsrfToken(c)))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	postSlug := strings.TrimSpace(c.FormValue("slug"))
	if postSlug == "" {
		postSlug = slug.Make(title)
	}
	if postSlug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Slug+is+required.+Add+a+title+or+slug.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	t, err := markdown.ParseDate(date)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	tags := FilterEmpty(strings.Split(c.FormValue("tags"), ","))
	post := Post{
		Title:       title,
		Date:        date,
		Time:        t,
		Tags:        normalizeTags(tags),
		Description: strings.TrimSpace(c.FormValue("description")),
		Slug:        postSlug,
		Hero:        strings.TrimSpace(c.FormValue("hero")),
		Markdown:    c.FormValue("content"),
		Draft:       c.FormValue("draft") != "",
	}
	original := strings.TrimSpace(c.FormValue("original_slug"))
	if err := a.Source.ReplacePost(original, post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Source.DeletePost(c.Param("slug")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(viewSite(a.Config), viewPosts(posts), msg, CsrfToken(c)))
}

func (a *App) adminImagesView(images []Image, csrf string) templ.Component {
	infos := make([]views.ImageInfo, 0, len(images))
	for _, img := range images {
		infos = append(infos, views.ImageInfo{
			Filename: img.Filename,
			Width:    img.Width,
			Height:   img.Height,
		})
	}
	return views.AdminImages(viewSite(a.Config), infos, csrf)
}
