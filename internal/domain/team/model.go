package team

import "fmt"

// Team is one bootstrap Premier League club.
type Team struct {
	ID        int
	Name      string
	ShortName string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
