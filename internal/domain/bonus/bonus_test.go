package bonus

import (
	"reflect"
	"testing"
)

func TestProvisional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []BPSEntry
		want    map[int]int
	}{
		{
			name:    "empty fixture",
			entries: nil,
			want:    map[int]int{},
		},
		{
			name: "distinct scores take three two one",
			entries: []BPSEntry{
				{Element: 1, BPS: 34},
				{Element: 2, BPS: 30},
				{Element: 3, BPS: 28},
				{Element: 4, BPS: 20},
			},
			want: map[int]int{1: 3, 2: 2, 3: 1},
		},
		{
			name: "two way tie for first skips second tier",
			entries: []BPSEntry{
				{Element: 1, BPS: 32},
				{Element: 2, BPS: 32},
				{Element: 3, BPS: 29},
			},
			want: map[int]int{1: 3, 2: 3, 3: 1},
		},
		{
			name: "tie for second awards two to both",
			entries: []BPSEntry{
				{Element: 1, BPS: 40},
				{Element: 2, BPS: 31},
				{Element: 3, BPS: 31},
				{Element: 4, BPS: 30},
			},
			want: map[int]int{1: 3, 2: 2, 3: 2},
		},
		{
			name: "three way tie for first exhausts podium",
			entries: []BPSEntry{
				{Element: 1, BPS: 27},
				{Element: 2, BPS: 27},
				{Element: 3, BPS: 27},
				{Element: 4, BPS: 26},
			},
			want: map[int]int{1: 3, 2: 3, 3: 3},
		},
		{
			name: "tie for third awards one to every member",
			entries: []BPSEntry{
				{Element: 1, BPS: 40},
				{Element: 2, BPS: 35},
				{Element: 3, BPS: 22},
				{Element: 4, BPS: 22},
				{Element: 5, BPS: 10},
			},
			want: map[int]int{1: 3, 2: 2, 3: 1, 4: 1},
		},
		{
			name: "fewer than three players",
			entries: []BPSEntry{
				{Element: 9, BPS: 44},
				{Element: 7, BPS: 25},
			},
			want: map[int]int{9: 3, 7: 2},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Provisional(tc.entries)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Provisional() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProvisionalDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	entries := []BPSEntry{
		{Element: 1, BPS: 10},
		{Element: 2, BPS: 30},
		{Element: 3, BPS: 20},
	}
	want := append([]BPSEntry(nil), entries...)

	Provisional(entries)

	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("input mutated: %v, want %v", entries, want)
	}
}
