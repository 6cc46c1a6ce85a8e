package entry

import (
	"errors"
	"testing"
)

// validPicks returns a legal 15-pick selection: positions 1-15, element 6 as
// captain and element 7 as vice-captain.
func validPicks() Picks {
	picks := make([]Pick, 0, SquadSize)
	for i := 1; i <= SquadSize; i++ {
		pick := Pick{Element: i, Position: i, Multiplier: 1}
		if i > StartingSize {
			pick.Multiplier = 0
		}
		picks = append(picks, pick)
	}
	picks[5].IsCaptain = true
	picks[5].Multiplier = 2
	picks[6].IsViceCaptain = true

	return Picks{EntryID: 42, Event: 7, Picks: picks}
}

func TestPicksValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(p *Picks)
		wantErr error
	}{
		{
			name:   "valid selection",
			mutate: func(p *Picks) {},
		},
		{
			name: "fourteen picks",
			mutate: func(p *Picks) {
				p.Picks = p.Picks[:SquadSize-1]
			},
			wantErr: ErrInvalidSquadSize,
		},
		{
			name: "duplicate element",
			mutate: func(p *Picks) {
				p.Picks[1].Element = p.Picks[0].Element
			},
			wantErr: ErrDuplicatePlayer,
		},
		{
			name: "duplicate squad position",
			mutate: func(p *Picks) {
				p.Picks[1].Position = p.Picks[0].Position
			},
			wantErr: ErrInvalidSquadPosition,
		},
		{
			name: "position out of range",
			mutate: func(p *Picks) {
				p.Picks[14].Position = 16
			},
			wantErr: ErrInvalidSquadPosition,
		},
		{
			name: "multiplier above triple captain",
			mutate: func(p *Picks) {
				p.Picks[5].Multiplier = 4
			},
			wantErr: ErrInvalidMultiplier,
		},
		{
			name: "negative multiplier",
			mutate: func(p *Picks) {
				p.Picks[3].Multiplier = -1
			},
			wantErr: ErrInvalidMultiplier,
		},
		{
			name: "no captain",
			mutate: func(p *Picks) {
				p.Picks[5].IsCaptain = false
			},
			wantErr: ErrCaptainCount,
		},
		{
			name: "two captains",
			mutate: func(p *Picks) {
				p.Picks[0].IsCaptain = true
			},
			wantErr: ErrCaptainCount,
		},
		{
			name: "two vice-captains",
			mutate: func(p *Picks) {
				p.Picks[8].IsViceCaptain = true
			},
			wantErr: ErrViceCaptainCount,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			picks := validPicks()
			tc.mutate(&picks)

			err := picks.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPicksValidateRejectsBadIdentifiers(t *testing.T) {
	t.Parallel()

	picks := validPicks()
	picks.EntryID = 0
	if err := picks.Validate(); err == nil {
		t.Fatal("expected error for zero entry id")
	}

	picks = validPicks()
	picks.Event = 0
	if err := picks.Validate(); err == nil {
		t.Fatal("expected error for zero event")
	}

	picks = validPicks()
	picks.Picks[2].Element = 0
	if err := picks.Validate(); err == nil {
		t.Fatal("expected error for zero pick element")
	}
}

func TestPickIsStarter(t *testing.T) {
	t.Parallel()

	if !(Pick{Position: 11}).IsStarter() {
		t.Fatal("position 11 must be a starter")
	}
	if (Pick{Position: 12}).IsStarter() {
		t.Fatal("position 12 must be bench")
	}
}
