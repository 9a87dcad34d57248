package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalWeekdays(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want Weekdays
	}{
		{"already canonical", []string{"Mon", "Fri"}, Weekdays{"Mon", "Fri"}},
		{"out of order", []string{"Fri", "Mon"}, Weekdays{"Mon", "Fri"}},
		{"duplicates collapse", []string{"Wed", "Wed", "Mon"}, Weekdays{"Mon", "Wed"}},
		{"full week shuffled", []string{"Sun", "Sat", "Fri", "Thu", "Wed", "Tue", "Mon"},
			Weekdays{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
		{"empty", nil, Weekdays{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalWeekdays(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalWeekdaysRejectsUnknown(t *testing.T) {
	_, err := CanonicalWeekdays([]string{"Mon", "Monday"})
	assert.Error(t, err)

	_, err = CanonicalWeekdays([]string{"mon"})
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"patient", "doctor", "admin"} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), role)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
}
