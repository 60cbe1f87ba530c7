// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"
	"strings"

	"lorasite/internal/models"
)

// ComponentFragment renders a stored component as an inline HTML fragment:
// a <style> tag keyed to the component, the raw markup inside a container
// div, then its script. Component html/css/js is admin-authored and trusted;
// it is emitted verbatim.
func ComponentFragment(key string, c *models.Component) template.HTML {
	var b strings.Builder
	attr := template.HTMLEscapeString(key)

	if c.CSS != "" {
		b.WriteString(`<style data-component="` + attr + `">`)
		b.WriteString(c.CSS)
		b.WriteString("</style>\n")
	}

	b.WriteString(`<div class="cms-component" data-component="` + attr + `">`)
	b.WriteString(c.HTML)
	b.WriteString("</div>\n")

	if c.JS != "" {
		b.WriteString("<script>")
		b.WriteString(c.JS)
		b.WriteString("</script>\n")
	}

	return template.HTML(b.String())
}
