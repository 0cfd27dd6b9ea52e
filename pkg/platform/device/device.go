// Package device turns raw User-Agent headers into short display strings for
// audit trails.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns "<browser> on <platform>" for a User-Agent header.
func ParseUserAgent(userAgent string) string {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	platform := ua.OS()
	if platform == "" {
		platform = ua.Platform()
	}
	if platform == "" {
		platform = "Unknown OS"
	}
	if ua.Mobile() && !strings.Contains(platform, "iPhone") && !strings.Contains(platform, "Android") {
		platform = strings.TrimSpace(ua.Platform() + " " + platform)
	}

	return strings.Join(strings.Fields(browser+" on "+platform), " ")
}
