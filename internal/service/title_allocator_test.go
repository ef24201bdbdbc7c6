package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleAllocator(t *testing.T) {
	allocator := NewTitleAllocator()

	tests := []struct {
		name     string
		base     string
		existing []string
		want     string
	}{
		{
			name: "no existing titles returns base",
			base: "Mock Exam - Biology",
			want: "Mock Exam - Biology",
		},
		{
			name:     "unrelated titles do not collide",
			base:     "Mock Exam - Biology",
			existing: []string{"Mock Exam - Chemistry", "Daily Challenge - Mon Jan 5 2026"},
			want:     "Mock Exam - Biology",
		},
		{
			name:     "base taken gets first suffix",
			base:     "Mock Exam - Biology",
			existing: []string{"Mock Exam - Biology"},
			want:     "Mock Exam - Biology (1)",
		},
		{
			name:     "next suffix is one past the highest",
			base:     "Mock Exam - Biology",
			existing: []string{"Mock Exam - Biology", "Mock Exam - Biology (1)", "Mock Exam - Biology (2)"},
			want:     "Mock Exam - Biology (3)",
		},
		{
			name:     "gaps from deletions are not reused",
			base:     "Mock Exam - Biology",
			existing: []string{"Mock Exam - Biology (4)"},
			want:     "Mock Exam - Biology (5)",
		},
		{
			name:     "longer titles sharing the prefix are ignored",
			base:     "Mock Exam - Biology",
			existing: []string{"Mock Exam - Biology Advanced", "Mock Exam - Biology (extra)"},
			want:     "Mock Exam - Biology",
		},
		{
			name:     "base containing regex metacharacters",
			base:     "Daily Challenge - Mon Jan 5 2026",
			existing: []string{"Daily Challenge - Mon Jan 5 2026", "Daily Challenge - Mon Jan 5 2026 (1)"},
			want:     "Daily Challenge - Mon Jan 5 2026 (2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allocator.Allocate(tt.base, tt.existing))
		})
	}
}

// Suffixes must stay monotonic across delete-and-regenerate cycles so a
// freed title is never handed out a second time.
func TestTitleAllocatorMonotonicUnderDeletion(t *testing.T) {
	allocator := NewTitleAllocator()
	base := "Mock Exam - Physics"

	existing := []string{}
	first := allocator.Allocate(base, existing)
	assert.Equal(t, base, first)

	existing = append(existing, first)
	second := allocator.Allocate(base, existing)
	assert.Equal(t, "Mock Exam - Physics (1)", second)

	// Deleting the un-suffixed exam must not resurrect the bare base while
	// a suffixed sibling still exists.
	afterDelete := []string{second}
	third := allocator.Allocate(base, afterDelete)
	assert.Equal(t, "Mock Exam - Physics (2)", third)
}
