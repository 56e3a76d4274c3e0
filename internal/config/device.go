package config

import (
	"os"
	"strings"
)

// DetectColorScheme returns the host's preferred scheme or "" when unknown.
// APP_COLOR_SCHEME wins; GTK_THEME variants like "Adwaita:dark" are honored.
func DetectColorScheme() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("APP_COLOR_SCHEME"))) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	}
	if gtk := strings.ToLower(os.Getenv("GTK_THEME")); gtk != "" {
		if strings.HasSuffix(gtk, ":dark") || strings.HasSuffix(gtk, "-dark") {
			return "dark"
		}
	}
	return ""
}

// DetectLocale returns the first non-empty of APP_LOCALE, LC_ALL, LC_MESSAGES
// and LANG. "C" and "POSIX" count as unset.
func DetectLocale() string {
	for _, key := range []string{"APP_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return v
	}
	return ""
}
