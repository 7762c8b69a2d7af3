package schedule

import "github.com/sremy91/intuis-schedule-card/internal/models"

// Catalog is the ordered list of zones supplied by the gateway for one
// render cycle. It is read per invocation and never cached across refreshes.
type Catalog []models.Zone

// ByName resolves a zone name by exact match.
func (c Catalog) ByName(name string) (models.Zone, bool) {
	for _, z := range c {
		if z.Name == name {
			return z, true
		}
	}
	return models.Zone{}, false
}

// ByID resolves a zone by id.
func (c Catalog) ByID(id int) (models.Zone, bool) {
	for _, z := range c {
		if z.ID == id {
			return z, true
		}
	}
	return models.Zone{}, false
}
