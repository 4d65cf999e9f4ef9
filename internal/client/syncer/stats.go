package syncer

import (
	"math"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Stats is derived read-only from a collection snapshot; nothing here is
// persisted.
type Stats struct {
	Total                int `json:"total"`
	WithPhone            int `json:"withPhone"`
	WithoutPhone         int `json:"withoutPhone"`
	PhoneCoveragePercent int `json:"phoneCoveragePercent"`
}

// CalcStats computes phone-coverage statistics over a snapshot. Coverage is
// 0 for an empty collection.
func CalcStats(users []models.User) Stats {
	s := Stats{Total: len(users)}
	for _, u := range users {
		if u.HasPhone() {
			s.WithPhone++
		}
	}
	s.WithoutPhone = s.Total - s.WithPhone
	if s.Total > 0 {
		s.PhoneCoveragePercent = int(math.Round(float64(s.WithPhone) / float64(s.Total) * 100))
	}
	return s
}
