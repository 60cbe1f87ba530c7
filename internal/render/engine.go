// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render builds the public site HTML from database content: the
// homepage composed of typed sections, dynamic pages addressed by slug,
// reusable component fragments, and the sitemap.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"time"

	"lorasite/internal/models"
	"lorasite/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fallbacks supplies deploy-level values used when the settings row
// leaves the corresponding field blank.
type Fallbacks struct {
	GoogleVerification string
	BingVerification   string
}

// Engine renders public pages. Templates are compiled once at startup;
// all page data comes from the stores at render time.
type Engine struct {
	contents   *store.ContentStore
	components *store.ComponentStore
	categories *store.CategoryStore
	menus      *store.MenuStore
	settings   *store.SettingsStore
	homepage   *store.HomepageStore
	fallbacks  Fallbacks
	tmpl       *template.Template
}

// New compiles the embedded site templates and returns a ready engine.
func New(contents *store.ContentStore, components *store.ComponentStore, categories *store.CategoryStore, menus *store.MenuStore, settings *store.SettingsStore, homepage *store.HomepageStore, fallbacks Fallbacks) (*Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse site templates: %w", err)
	}
	return &Engine{
		contents:   contents,
		components: components,
		categories: categories,
		menus:      menus,
		settings:   settings,
		homepage:   homepage,
		fallbacks:  fallbacks,
		tmpl:       tmpl,
	}, nil
}

// layoutData feeds the base template: shared chrome plus the page main.
type layoutData struct {
	SiteName           string
	Title              string
	MetaDescription    string
	MetaKeywords       string
	GoogleAnalyticsID  string
	GoogleVerification string
	BingVerification   string
	MainMenu           models.MenuItems
	FooterMenu         models.MenuItems
	CompanyName        string
	Address            string
	Phone              string
	Email              string
	Facebook           string
	Instagram          string
	Twitter            string
	LinkedIn           string
	YouTube            string
	Main               template.HTML
	Year               int
}

// RenderHomepage renders the homepage from its configured sections.
// Inactive sections are skipped; sections render in order.
func (e *Engine) RenderHomepage() ([]byte, error) {
	hp, err := e.homepage.Get()
	if err != nil {
		return nil, fmt.Errorf("load homepage settings: %w", err)
	}

	sections := make(models.HomeSections, len(hp.Sections))
	copy(sections, hp.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].SortOrder < sections[j].SortOrder
	})

	var main bytes.Buffer
	for _, sec := range sections {
		if !sec.IsActive {
			continue
		}
		main.WriteString(string(e.renderHomeSection(&sec)))
	}

	return e.renderLayout("", "", template.HTML(main.String()))
}

// RenderPage renders a dynamic page: hero banner from the featured image,
// then the section list in array order. Contents without sections fall
// back to the legacy body, emitted verbatim.
func (e *Engine) RenderPage(content *models.Content) ([]byte, error) {
	var main bytes.Buffer

	main.WriteString(string(e.exec("page_hero", map[string]string{
		"Title": content.Title,
		"Image": content.FeaturedImage,
	})))

	if content.HasSections() {
		resolved := ResolveSections(content.Sections, e.contents, e.components)
		for _, sec := range resolved {
			switch sec.Type {
			case models.SectionText:
				main.WriteString(`<section class="text">`)
				main.WriteString(string(sec.HTML))
				main.WriteString("</section>\n")
			case models.SectionCard:
				main.WriteString(string(e.exec("cards", cardsView{Cards: sec.Cards})))
			case models.SectionComponent:
				main.WriteString(string(ComponentFragment(sec.Key, sec.Component)))
			}
		}
	} else if content.Body != "" {
		main.WriteString(`<section class="text">`)
		main.WriteString(content.Body)
		main.WriteString("</section>\n")
	}

	return e.renderLayout(content.Title, content.Description, template.HTML(main.String()))
}

// RenderNotFound renders the dedicated page shown for unknown or
// inactive slugs.
func (e *Engine) RenderNotFound() ([]byte, error) {
	main := e.exec("notfound", nil)
	return e.renderLayout("Page not found", "", main)
}

// RenderComponent renders a single component as a standalone fragment,
// for embedding by external pages.
func (e *Engine) RenderComponent(c *models.Component) []byte {
	return []byte(ComponentFragment(c.Slug, c))
}

type aboutView struct {
	Title    string
	Image    string
	BodyHTML template.HTML
}

type cardsView struct {
	Title string
	Cards []models.Summary
}

// renderHomeSection renders one homepage section. Malformed payloads and
// failed lookups log a warning and render nothing, so a single bad
// section never takes the homepage down.
func (e *Engine) renderHomeSection(sec *models.HomeSection) template.HTML {
	data, err := sec.DecodeData()
	if err != nil {
		slog.Warn("homepage section payload invalid, skipping", "type", sec.Type, "error", err)
		return ""
	}

	switch d := data.(type) {
	case *models.HeroData:
		return e.exec("hero", d)

	case *models.AboutData:
		return e.exec("about", aboutView{Title: d.Title, Image: d.Image, BodyHTML: template.HTML(d.Body)})

	case *models.ServicesData:
		return e.exec("services", d)

	case *models.NewsData:
		return e.exec("cards", cardsView{Title: d.Title, Cards: e.newsCards(d)})

	case *models.ComponentData:
		comp := resolveComponent(&d.ComponentID, e.components)
		if comp == nil {
			return ""
		}
		return ComponentFragment(comp.Slug, comp)
	}
	return ""
}

// newsCards pulls the newest active contents of the configured category.
// Lookup failures degrade to an empty list.
func (e *Engine) newsCards(d *models.NewsData) []models.Summary {
	cat, err := e.categories.FindBySlug(d.CategorySlug)
	if err != nil || cat == nil {
		if err != nil {
			slog.Warn("news section category lookup failed", "slug", d.CategorySlug, "error", err)
		}
		return nil
	}

	limit := d.Limit
	if limit <= 0 {
		limit = 3
	}

	contents, err := e.contents.ListNewestByCategory(cat.ID, limit)
	if err != nil {
		slog.Warn("news section content fetch failed", "category", d.CategorySlug, "error", err)
		return nil
	}

	cards := make([]models.Summary, 0, len(contents))
	for _, c := range contents {
		cards = append(cards, c.Summarize())
	}
	return cards
}

// renderLayout wraps a rendered main block in the shared site chrome.
// Settings and menu lookups degrade to empty values so the page still
// renders when those tables are unreachable.
func (e *Engine) renderLayout(title, metaDescription string, main template.HTML) ([]byte, error) {
	data := layoutData{
		SiteName:           "Lorasite",
		Title:              title,
		GoogleVerification: e.fallbacks.GoogleVerification,
		BingVerification:   e.fallbacks.BingVerification,
		Main:               main,
		Year:               time.Now().Year(),
	}

	if s, err := e.settings.Get(); err != nil {
		slog.Warn("settings lookup failed, rendering with defaults", "error", err)
	} else {
		data.SiteName = s.SiteName
		data.MetaDescription = s.MetaDescription
		data.MetaKeywords = s.MetaKeywords
		data.GoogleAnalyticsID = s.GoogleAnalyticsID
		if s.GoogleVerification != "" {
			data.GoogleVerification = s.GoogleVerification
		}
		if s.BingVerification != "" {
			data.BingVerification = s.BingVerification
		}
		data.CompanyName = s.CompanyName
		data.Address = s.Address
		data.Phone = s.Phone
		data.Email = s.Email
		data.Facebook = s.Facebook
		data.Instagram = s.Instagram
		data.Twitter = s.Twitter
		data.LinkedIn = s.LinkedIn
		data.YouTube = s.YouTube
	}
	if metaDescription != "" {
		data.MetaDescription = metaDescription
	}

	if m, err := e.menus.FindActiveByType(models.MenuMain); err != nil {
		slog.Warn("main menu lookup failed", "error", err)
	} else if m != nil {
		data.MainMenu = m.Items
	}
	if m, err := e.menus.FindActiveByType(models.MenuFooter); err != nil {
		slog.Warn("footer menu lookup failed", "error", err)
	} else if m != nil {
		data.FooterMenu = m.Items
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("execute base template: %w", err)
	}
	return buf.Bytes(), nil
}

// exec executes a named sub-template and returns the fragment. Failures
// log and render as empty so one broken block never breaks the page.
func (e *Engine) exec(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Warn("template fragment failed", "template", name, "error", err)
		return ""
	}
	return template.HTML(buf.String())
}
