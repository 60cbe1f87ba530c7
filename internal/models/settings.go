// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// Settings is the singleton site configuration document. Exactly one row
// exists; it is created lazily on first read with sensible defaults.
type Settings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	CompanyName     string `json:"companyName"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`

	// SEO
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`

	// Outbound mail
	SMTPHost     string `json:"smtpHost"`
	SMTPPort     int    `json:"smtpPort"`
	SMTPUser     string `json:"smtpUser"`
	SMTPPassword string `json:"-"`
	SMTPFrom     string `json:"smtpFrom"`

	// Social links
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`

	// Analytics and crawler verification
	GoogleAnalyticsID  string `json:"googleAnalyticsId"`
	GoogleVerification string `json:"googleVerification"`
	BingVerification   string `json:"bingVerification"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns the names of required or malformed fields. The update
// is rejected as a whole when the list is non-empty.
func (s *Settings) Validate() []string {
	var invalid []string
	if strings.TrimSpace(s.SiteName) == "" {
		invalid = append(invalid, "siteName")
	}
	if s.Email != "" && !strings.Contains(s.Email, "@") {
		invalid = append(invalid, "email")
	}
	return invalid
}

// DefaultSettings returns the values used when the singleton is created
// lazily on first read.
func DefaultSettings() *Settings {
	return &Settings{
		SiteName:    "Lorasoft",
		CompanyName: "Lorasoft",
		SMTPPort:    587,
	}
}
