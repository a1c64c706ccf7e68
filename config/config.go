// Package config parses the JSON problem-instance format (§6 External
// Interfaces) into a domain.Configuration, grounded on the teacher's
// Parameters.Read (gosl/io.ReadFile + encoding/json.Unmarshal) but
// returning errors instead of panicking: a library consumed by a CLI
// should let its caller decide how to fail, not abort the process.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gaschedule/domain"
)

// Parse reads and builds a domain.Configuration from the JSON file at
// path. Room and CourseClass id counters are fresh for every call
// (domain.NewBuilder owns a private RoomFactory/ClassFactory, never a
// process-global counter), so re-parsing a second configuration never
// leaks ids from the first.
func Parse(path string) (*domain.Configuration, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %q: %w", path, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("config: cannot parse %q: %w", path, err)
	}

	b := domain.NewBuilder()
	for i, e := range entries {
		if err := applyEntry(b, e); err != nil {
			return nil, fmt.Errorf("config: %q entry %d: %w", path, i, err)
		}
	}

	cfg, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

func applyEntry(b *domain.Builder, e entry) error {
	switch {
	case e.Prof != nil:
		if e.Prof.ID == nil {
			return fmt.Errorf("prof entry missing id")
		}
		return b.AddProfessor(*e.Prof.ID, e.Prof.Name)

	case e.Course != nil:
		if e.Course.ID == nil {
			return fmt.Errorf("course entry missing id")
		}
		return b.AddCourse(*e.Course.ID, e.Course.Name)

	case e.Room != nil:
		b.AddRoom(e.Room.Name, e.Room.Lab, e.Room.Size)
		return nil

	case e.Group != nil:
		if e.Group.ID == nil {
			return fmt.Errorf("group entry missing id")
		}
		return b.AddGroup(*e.Group.ID, e.Group.Name, e.Group.Size)

	case e.Class != nil:
		c := e.Class
		if c.Professor == nil {
			return fmt.Errorf("class entry missing professor id")
		}
		if c.Course == nil {
			return fmt.Errorf("class entry missing course id")
		}
		duration := c.Duration
		if duration == 0 {
			duration = 1
		}
		groupIDs := c.Groups
		if len(groupIDs) == 0 {
			groupIDs = c.Group
		}
		_, err := b.AddClass(*c.Professor, *c.Course, c.Lab, duration, groupIDs)
		return err

	default:
		return fmt.Errorf("entry has no recognized key (prof|course|room|group|class)")
	}
}
