package course

import (
	"fmt"
	"strings"
)

// Course is a golf course rounds are played on.
type Course struct {
	ID   int64
	Name string
}

func (c Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("course name is required")
	}
	return nil
}
