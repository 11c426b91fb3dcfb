package dashboard

import (
	"strings"

	"signal-dashboard/models"
)

const maxNotifications = 5

// ExportPlaceholder is all the export action does for now.
const ExportPlaceholder = "Exporting data to CSV... (Feature coming soon)"

// Dropdown is the notification menu's open/closed state.
type Dropdown struct {
	Open bool
}

func (d *Dropdown) Toggle() {
	d.Open = !d.Open
}

// Click handles a click anywhere on the page. A click on the trigger
// toggles the menu; any other click closes it.
func (d *Dropdown) Click(onTrigger bool) {
	if onTrigger {
		d.Toggle()
		return
	}
	d.Open = false
}

// Next is the state after a click on the trigger.
func (d Dropdown) Next() Dropdown {
	d.Click(true)
	return d
}

type Notification struct {
	Title   string
	Source  string
	Cluster string
}

// NotificationsView is what the dropdown renders.
type NotificationsView struct {
	Dropdown
	Items []Notification
}

// Notifications lists the first few high impact signals.
func Notifications(signals []models.Signal, open bool) NotificationsView {
	view := NotificationsView{Dropdown: Dropdown{Open: open}}
	for _, s := range signals {
		if len(view.Items) == maxNotifications {
			break
		}
		if !strings.EqualFold(s.ImpactLevel, "high") {
			continue
		}
		view.Items = append(view.Items, Notification{
			Title:   Truncate(orDefault(s.Title, NoTitle), TitleLimit),
			Source:  orDefault(s.Source, UnknownSource),
			Cluster: orDefault(s.TopicCluster, Uncategorized),
		})
	}
	return view
}
