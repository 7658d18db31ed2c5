package models

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaged_TotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{total: 0, pageSize: 20, want: 0},
		{total: 1, pageSize: 20, want: 1},
		{total: 20, pageSize: 20, want: 1},
		{total: 21, pageSize: 20, want: 2},
		{total: 2, pageSize: 1, want: 2},
		{total: 3, pageSize: math.MaxInt, want: 1},
		{total: math.MaxInt, pageSize: 2, want: math.MaxInt/2 + 1},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.total)+"/"+strconv.Itoa(tt.pageSize), func(t *testing.T) {
			p := NewPaged([]int{}, tt.total, 1, tt.pageSize)
			assert.Equal(t, tt.want, p.TotalPages())
		})
	}
}

func TestNewPaged_Clamps(t *testing.T) {
	p := NewPaged[int](nil, 3, 0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.NotNil(t, p.Items)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name                  string
		page, pageSize, total int
		wantStart, wantEnd    int
	}{
		{name: "first page", page: 1, pageSize: 2, total: 3, wantStart: 0, wantEnd: 2},
		{name: "last partial page", page: 2, pageSize: 2, total: 3, wantStart: 2, wantEnd: 3},
		{name: "past the end", page: 5, pageSize: 2, total: 3, wantStart: 3, wantEnd: 3},
		{name: "empty", page: 1, pageSize: 20, total: 0, wantStart: 0, wantEnd: 0},
		{name: "invalid values use defaults", page: 0, pageSize: -1, total: 30, wantStart: 0, wantEnd: 20},
		{name: "huge page", page: 1<<62 + 1, pageSize: 2, total: 2, wantStart: 2, wantEnd: 2},
		{name: "max page", page: math.MaxInt, pageSize: math.MaxInt, total: 5, wantStart: 5, wantEnd: 5},
		{name: "huge page size", page: 1, pageSize: math.MaxInt, total: 2, wantStart: 0, wantEnd: 2},
		{name: "second huge page", page: 2, pageSize: math.MaxInt, total: 2, wantStart: 2, wantEnd: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageWindow(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMapPaged(t *testing.T) {
	p := NewPaged([]int{1, 2}, 5, 2, 2)
	got := MapPaged(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, got.Items)
	assert.Equal(t, 5, got.TotalItems)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 2, got.PageSize)
	assert.Equal(t, 3, got.TotalPages())
}
