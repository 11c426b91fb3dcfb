package dashboard

// View is one of the dashboard's top-level sections.
type View struct {
	Key    string
	NavID  string
	ViewID string
	Label  string
}

// Views lists the sections in nav order. The first one is the default.
var Views = []View{
	{Key: "dashboard", NavID: "nav-dashboard", ViewID: "view-dashboard", Label: "Dashboard"},
	{Key: "clusters", NavID: "nav-clusters", ViewID: "view-clusters", Label: "Topic Clusters"},
	{Key: "raw-data", NavID: "nav-raw-data", ViewID: "view-raw-data", Label: "Raw Data"},
	{Key: "accounts", NavID: "nav-accounts", ViewID: "view-accounts", Label: "Accounts"},
	{Key: "settings", NavID: "nav-settings", ViewID: "view-settings", Label: "Settings"},
}

type NavItem struct {
	View
	Active bool
}

// Navigation is the nav bar state: exactly one item is active.
type Navigation struct {
	Items      []NavItem
	Active     View
	Breadcrumb string
}

// Navigate activates the view with the given key, falling back to the
// first view for unknown keys.
func Navigate(key string) Navigation {
	active := Views[0]
	for _, v := range Views {
		if v.Key == key {
			active = v
			break
		}
	}

	items := make([]NavItem, len(Views))
	for i, v := range Views {
		items[i] = NavItem{View: v, Active: v.Key == active.Key}
	}
	return Navigation{Items: items, Active: active, Breadcrumb: active.Label}
}

// Visible reports whether the section with the given key is shown.
func (n Navigation) Visible(key string) bool {
	return n.Active.Key == key
}
