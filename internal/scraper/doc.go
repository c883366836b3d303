// Package scraper fetches the club's fixture calendar over HTTP.
//
// The configured URL normally serves the iCalendar feed directly. When it
// serves an HTML page instead (for example the club's fixtures page), the
// scraper looks for the page's calendar link, follows it once, and requires
// that response to be a calendar.
package scraper
