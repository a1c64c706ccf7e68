package config

import (
	"encoding/json"
	"fmt"
)

// entry is one element of the top-level JSON array: a single-key tagged
// union over prof|course|room|group|class (§6 External Interfaces).
type entry struct {
	Prof   *profInput   `json:"prof"`
	Course *courseInput `json:"course"`
	Room   *roomInput   `json:"room"`
	Group  *groupInput  `json:"group"`
	Class  *classInput  `json:"class"`
}

type profInput struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type courseInput struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type roomInput struct {
	Name string `json:"name"`
	Lab  bool   `json:"lab"`
	Size int    `json:"size"`
}

type groupInput struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

type classInput struct {
	Professor *int     `json:"professor"`
	Course    *int     `json:"course"`
	Duration  int      `json:"duration"`
	Lab       bool     `json:"lab"`
	Group     intOrIDs `json:"group"`
	Groups    intOrIDs `json:"groups"`
}

// intOrIDs accepts either a single int or an array of ints for
// class.group/class.groups (§6: "group|groups: int|[int]").
type intOrIDs []int

func (ids *intOrIDs) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*ids = []int{single}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("config: group/groups must be an int or an array of ints: %w", err)
	}
	*ids = many
	return nil
}
