// Package templates holds the templ components of the portfolio page.
package templates

import "strconv"

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func activityLabel(tier string, days int) string {
	switch tier {
	case "hot":
		return "atualizado agora"
	case "active":
		return "atualizado hoje"
	case "warm":
		if days == 1 {
			return "atualizado há 1 dia"
		}
		return "atualizado há " + strconv.Itoa(days) + " dias"
	default:
		return "sem atualizações recentes"
	}
}

func socialGlyph(kind string) string {
	switch kind {
	case "github":
		return "GH"
	case "linkedin":
		return "in"
	case "email":
		return "@"
	default:
		return "↗"
	}
}
