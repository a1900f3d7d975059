package views

import (
	"encoding/json"
	"net/url"
	"strconv"

	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
)

const (
	emptyTitle = "No projects found matching your criteria."
	emptyHint  = "Try adjusting your search or filter settings."

	// ListingTarget is the element id the HTMX fragment replaces
	ListingTarget = "listing"
	// SearchFormID owns the query input and, through form=, the scope input
	// inside the swapped fragment
	SearchFormID = "project-search"
	// ListingScript filters the exported listing in the browser
	ListingScript = "/static/listing.js"
)

// listingURL builds the projects page URL for a query and scope
func listingURL(query string, scope models.Scope) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if scope != "" && scope != models.ScopeAll {
		values.Set("scope", string(scope))
	}
	if len(values) == 0 {
		return "/projects"
	}
	return "/projects?" + values.Encode()
}

func scopeLabel(label string, n int) string {
	return label + " (" + strconv.Itoa(n) + ")"
}

func toggleClass(active bool) string {
	if active {
		return "filter active"
	}
	return "filter"
}

// searchFields lists the fields listing.js matches a query against, in the
// same order models.Project.Matches checks them
func searchFields(card services.Card) (string, error) {
	fields := append([]string{card.Title, card.Description}, card.Technologies...)
	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
