package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/upstream"
	"catalog-sync/feature/catalog/models"
)

// Normalize maps a raw detail onto a record and its category memberships.
// It returns reconcile.ErrMalformedRecord when the id or the name is missing.
// Category references without a name or URL are dropped; a repeated category
// name keeps its first occurrence by slot.
func Normalize(detail *upstream.Detail) (*models.CatalogRecord, []models.CategoryMembership, error) {
	if detail == nil {
		return nil, nil, fmt.Errorf("%w: empty detail", reconcile.ErrMalformedRecord)
	}
	if detail.ID == nil {
		return nil, nil, fmt.Errorf("%w: id is missing", reconcile.ErrMalformedRecord)
	}
	if detail.Name == nil || strings.TrimSpace(*detail.Name) == "" {
		return nil, nil, fmt.Errorf("%w: name is missing for id %d", reconcile.ErrMalformedRecord, *detail.ID)
	}

	record := &models.CatalogRecord{
		ID:                     *detail.ID,
		Name:                   *detail.Name,
		BaseExperience:         detail.BaseExperience,
		Height:                 detail.Height,
		Order:                  detail.Order,
		Weight:                 detail.Weight,
		LocationAreaEncounters: detail.LocationAreaEncounters,
	}

	slots := make([]upstream.TypeSlot, 0, len(detail.Types))
	for _, slot := range detail.Types {
		if slot.Type == nil || slot.Type.Name == "" || slot.Type.URL == "" {
			continue
		}
		slots = append(slots, slot)
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	memberships := make([]models.CategoryMembership, 0, len(slots))
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if _, dup := seen[slot.Type.Name]; dup {
			continue
		}
		seen[slot.Type.Name] = struct{}{}
		memberships = append(memberships, models.CategoryMembership{
			RecordID:     record.ID,
			CategoryName: slot.Type.Name,
			CategoryURL:  slot.Type.URL,
		})
	}

	return record, memberships, nil
}
