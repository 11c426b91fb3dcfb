package dashboard

import (
	"strings"

	"signal-dashboard/models"
)

// Search keeps signals whose title, source or topic cluster contains query,
// ignoring case. An empty query keeps everything. Order is preserved.
func Search(signals []models.Signal, query string) []models.Signal {
	term := strings.ToLower(query)
	if term == "" {
		return signals
	}

	matches := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if containsFold(s.Title, term) || containsFold(s.Source, term) || containsFold(s.TopicCluster, term) {
			matches = append(matches, s)
		}
	}
	return matches
}

func containsFold(field, lowerTerm string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerTerm)
}
