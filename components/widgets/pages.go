package widgets

// Page identifies a sidebar destination widgets can be placed on.
type Page string

// Known pages. PageDashboard doubles as the pin sentinel: a widget whose
// Pages list contains it renders on the dashboard regardless of its other
// memberships.
const (
	PageDashboard Page = "dashboard"
	PageCustomers Page = "customers"
	PageAgents    Page = "agents"
	PageStrategy  Page = "strategy"
	PageKnowledge Page = "knowledge"
	PageLab       Page = "lab"
	PageWidgets   Page = "widgets"
	PageSettings  Page = "settings"
)

// PageNames maps pages to their sidebar display names.
var PageNames = map[Page]string{
	PageDashboard: "Dashboard",
	PageCustomers: "Customers",
	PageAgents:    "Agents",
	PageStrategy:  "Investment Strategy",
	PageKnowledge: "Knowledge Base",
	PageLab:       "Lab",
	PageWidgets:   "Widget Settings",
	PageSettings:  "Settings",
}

// WidgetPageOptions lists the pages eligible for direct widget placement.
// Dashboard is excluded because membership there is pin-derived; widgets and
// settings are administrative surfaces.
var WidgetPageOptions = []Page{
	PageCustomers,
	PageAgents,
	PageStrategy,
	PageKnowledge,
	PageLab,
}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	_, ok := PageNames[p]
	return ok
}

// Name returns the display name for the page, or the raw identifier when the
// page is unknown.
func (p Page) Name() string {
	if name, ok := PageNames[p]; ok {
		return name
	}
	return string(p)
}

// ParsePage converts a raw identifier into a Page.
func ParsePage(raw string) (Page, bool) {
	p := Page(raw)
	return p, p.Valid()
}

func containsPage(pages []Page, page Page) bool {
	for _, p := range pages {
		if p == page {
			return true
		}
	}
	return false
}
