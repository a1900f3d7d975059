// Package views renders the site's pages and HTMX fragments. Components live
// in the .templ files next to this one.
package views

//go:generate templ generate

import (
	"strconv"
	"strings"
)

// SiteName is appended to every page title
const SiteName = "Portfolio"

type navItem struct {
	anchor string
	label  string
}

var navItems = []navItem{
	{anchor: "#home", label: "Home"},
	{anchor: "#about", label: "About"},
	{anchor: "#projects", label: "Projects"},
	{anchor: "#skills", label: "Skills"},
	{anchor: "#contact", label: "Contact"},
}

// href points the anchor back at the home page when rendered elsewhere
func (n navItem) href(onHome bool) string {
	if onHome {
		return n.anchor
	}
	return "/" + n.anchor
}

// Chrome is what the layout needs besides the page body
type Chrome struct {
	Title  string
	Owner  string
	Year   int
	OnHome bool
	// Scripts are extra deferred scripts for this page
	Scripts []string
}

// PageTitle composes "<title> | Portfolio"
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == SiteName {
		return SiteName
	}
	return title + " | " + SiteName
}

func copyright(chrome Chrome) string {
	owner := chrome.Owner
	if owner == "" {
		owner = SiteName
	}
	return "© " + strconv.Itoa(chrome.Year) + " Made with ♥ by " + owner
}
