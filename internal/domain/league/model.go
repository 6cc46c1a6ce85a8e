package league

import "fmt"

// League is a classic mini-league the service renders live standings for.
type League struct {
	ID   int
	Name string
}

// Member is one manager entry competing in a league.
type Member struct {
	EntryID     int
	EntryName   string
	ManagerName string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

func (m Member) Validate() error {
	if m.EntryID <= 0 {
		return fmt.Errorf("league member entry id must be greater than zero")
	}
	if m.EntryName == "" {
		return fmt.Errorf("league member entry name is required")
	}

	return nil
}
