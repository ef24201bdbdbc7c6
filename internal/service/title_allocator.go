package service

import (
	"fmt"
	"regexp"
)

// TitleAllocator produces unique, human-readable titles for generated exams
// and challenges by suffixing "(n)" on collision. The next suffix is one
// past the highest suffix ever observed, not the count of existing records,
// so deleting "Mock Exam - Biology (1)" does not cause the suffix to be
// handed out twice.
//
// Allocation alone is not race-safe: two concurrent writers can compute the
// same title. The title columns carry a unique index and persisting services
// retry on gorm.ErrDuplicatedKey, recomputing the candidate each attempt.
type TitleAllocator interface {
	Allocate(base string, existing []string) string
}

type titleAllocator struct{}

func NewTitleAllocator() TitleAllocator {
	return &titleAllocator{}
}

func (a *titleAllocator) Allocate(base string, existing []string) string {
	if len(existing) == 0 {
		return base
	}

	suffixed := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + ` \((\d+)\)$`)
	collision := false
	maxN := 0
	for _, title := range existing {
		if title == base {
			collision = true
			continue
		}
		m := suffixed.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		collision = true
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		if n > maxN {
			maxN = n
		}
	}
	if !collision {
		return base
	}
	return fmt.Sprintf("%s (%d)", base, maxN+1)
}
