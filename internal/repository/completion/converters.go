package completion

import "dispatch/internal/entities"

func ToDomain(c *CompletionDB) *entities.CompletionRecord {
	if c == nil {
		return nil
	}

	return &entities.CompletionRecord{
		CourierID:       c.CourierID,
		OrderID:         c.OrderID,
		Region:          c.RegionID,
		RegionSeq:       c.RegionSeq,
		CompletedAt:     c.CompletedAt.UTC(),
		LeadTimeSeconds: c.LeadTimeSeconds,
	}
}

func ToDomainLeadTimes(models []RegionLeadTimeDB) []entities.RegionLeadTime {
	result := make([]entities.RegionLeadTime, len(models))
	for i, m := range models {
		result[i] = entities.RegionLeadTime{
			Region:       m.RegionID,
			TotalSeconds: m.TotalSeconds,
			Count:        m.Count,
		}
	}
	return result
}
