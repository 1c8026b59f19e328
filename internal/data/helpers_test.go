package data

import (
	"CourtsideApi/internal/assert"
	"testing"
)

func TestParsePinList(t *testing.T) {
	tests := []struct {
		name         string
		pinList      []string
		assignWant   []string
		unassignWant []string
	}{
		{
			name:         "Parse Assignment",
			pinList:      []string{"a1b2c3", "d4e5f6"},
			assignWant:   []string{"a1b2c3", "d4e5f6"},
			unassignWant: nil,
		},
		{
			name:         "Parse Unassignment",
			pinList:      []string{"-a1b2c3", "-d4e5f6"},
			assignWant:   nil,
			unassignWant: []string{"a1b2c3", "d4e5f6"},
		},
		{
			name:         "Parse Assign & Unassign",
			pinList:      []string{"a1b2c3", "-d4e5f6"},
			assignWant:   []string{"a1b2c3"},
			unassignWant: []string{"d4e5f6"},
		},
		{
			name:         "Skips Empty Strings",
			pinList:      []string{"", "a1b2c3"},
			assignWant:   []string{"a1b2c3"},
			unassignWant: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as, ua := parsePinList(tt.pinList)
			assert.StringSliceEqual(t, as, tt.assignWant)
			assert.StringSliceEqual(t, ua, tt.unassignWant)
		})
	}
}

func TestCalculateMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		wantLastPage int
	}{
		{name: "Exact Pages", totalRecords: 20, page: 1, pageSize: 5, wantLastPage: 4},
		{name: "Partial Last Page", totalRecords: 21, page: 1, pageSize: 5, wantLastPage: 5},
		{name: "Single Page", totalRecords: 3, page: 1, pageSize: 10, wantLastPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := CalculateMetadata(tt.totalRecords, tt.page, tt.pageSize)
			assert.Equal(t, metadata.LastPage, tt.wantLastPage)
			assert.Equal(t, metadata.TotalRecords, tt.totalRecords)
			assert.Equal(t, metadata.FirstPage, 1)
		})
	}
}

func TestCalculateMetadataEmpty(t *testing.T) {
	metadata := CalculateMetadata(0, 1, 5)

	assert.Equal(t, metadata, Metadata{})
}
