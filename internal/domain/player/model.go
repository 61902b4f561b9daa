package player

import (
	"fmt"
	"strings"
)

// Player is a member of the competition roster.
type Player struct {
	ID       int64
	Name     string
	FullName string
	ImageURL string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}
