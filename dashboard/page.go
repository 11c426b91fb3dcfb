package dashboard

// PageOptions carries the per-request UI state.
type PageOptions struct {
	View              string
	Query             string
	NotificationsOpen bool
}

// Page is the full view-model for the dashboard template.
type Page struct {
	Nav           Navigation
	Stats         StatCards
	Query         string
	Matches       int
	Rows          []SignalRow
	RawRows       []RawRow
	Clusters      []ClusterCard
	TopicChart    ChartConfig
	ScatterChart  ChartConfig
	Notifications NotificationsView
	HasData       bool
}

// BuildPage derives everything the page shows from a snapshot. The search
// query narrows the dashboard table only; raw data and charts use the full set.
func BuildPage(snap Snapshot, opts PageOptions) Page {
	matches := Search(snap.Signals, opts.Query)
	return Page{
		Nav:           Navigate(opts.View),
		Stats:         FormatStats(snap.Stats),
		Query:         opts.Query,
		Matches:       len(matches),
		Rows:          SignalRows(matches),
		RawRows:       RawRows(snap.Signals),
		Clusters:      ClusterCards(snap.Clusters),
		TopicChart:    TopicChart(snap.Clusters),
		ScatterChart:  ScatterChart(snap.Signals),
		Notifications: Notifications(snap.Signals, opts.NotificationsOpen),
		HasData:       len(snap.Signals) > 0,
	}
}
