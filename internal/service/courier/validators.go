package courier

import (
	"fmt"
	"slices"

	"dispatch/internal/entities"
	"dispatch/pkg/timewindow"
)

func validateCreate(c entities.CourierCreate) error {
	if c.ID <= 0 {
		return ErrInvalidCourierID
	}
	if !c.Category.IsValid() {
		return ErrInvalidCategory
	}
	if err := validateRegions(c.Regions); err != nil {
		return err
	}
	return validateWorkingHours(c.WorkingHours)
}

func validateRegions(regions []int32) error {
	for _, region := range regions {
		if region <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidRegion, region)
		}
	}
	return nil
}

func validateWorkingHours(hours []string) error {
	for _, h := range hours {
		if err := timewindow.Validate(h); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWorkingHours, err)
		}
	}
	return nil
}

// normalizeRegions регионы курьера хранятся множеством.
func normalizeRegions(regions []int32) []int32 {
	normalized := make([]int32, 0, len(regions))
	normalized = append(normalized, regions...)
	slices.Sort(normalized)
	return slices.Compact(normalized)
}
