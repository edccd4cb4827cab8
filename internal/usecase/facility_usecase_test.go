package usecase

import (
	"testing"

	"bhrms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSplitServices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entity.ServiceList
	}{
		{"simple list", "Emergency Care,Surgery", entity.ServiceList{"Emergency Care", "Surgery"}},
		{"whitespace trimmed", " Immunization , Consultation ", entity.ServiceList{"Immunization", "Consultation"}},
		{"empty entries dropped", "Laboratory,,Pharmacy,", entity.ServiceList{"Laboratory", "Pharmacy"}},
		{"single service", "Maternal Care", entity.ServiceList{"Maternal Care"}},
		{"empty input", "", entity.ServiceList{}},
		{"only separators", ", ,", entity.ServiceList{}},
		{"duplicates kept", "X-Ray,X-Ray", entity.ServiceList{"X-Ray", "X-Ray"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitServices(tt.raw))
		})
	}
}
