package dashboard

import (
	"strconv"

	"signal-dashboard/models"
)

type ClusterCard struct {
	Name  string
	Count int
	Label string
}

// ClusterCards returns one card per cluster in the map's order.
func ClusterCards(counts *models.ClusterCounts) []ClusterCard {
	if counts == nil {
		return nil
	}
	cards := make([]ClusterCard, 0, counts.Len())
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		cards = append(cards, ClusterCard{
			Name:  pair.Key,
			Count: pair.Value,
			Label: strconv.Itoa(pair.Value) + " Signals",
		})
	}
	return cards
}
