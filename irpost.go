// Package irpost publishes stock-exchange press releases to a WordPress site.
// It scrapes a company's investor-relations page for news items, extracts
// the press release behind the item an operator selects, and posts it
// through the WordPress REST API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package irpost
