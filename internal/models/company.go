// Package models defines the shapes stored in the company.json document.
package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Default values for records synthesized during recovery. Existing records
// are never rewritten, so these only apply at creation time.
const (
	DefaultProjectStatus  = "기획 중"
	DefaultEmployeeStatus = "휴식 중"
	DefaultMaxCapacity    = 4

	// DepartmentSuffix turns a department code into its display name
	// ("개발" -> "개발팀").
	DepartmentSuffix = "팀"

	// EmployeeNumberPrefix prefixes the zero-padded per-department sequence
	// number ("EMP-0003").
	EmployeeNumberPrefix = "EMP-"
)

// Appearance is the fixed-shape character appearance record. Recovery only
// ever infers the accessory flag; the rest stays zero.
type Appearance struct {
	SkinTone   int `json:"skinTone"`
	HairStyle  int `json:"hairStyle"`
	HairColor  int `json:"hairColor"`
	ShirtColor int `json:"shirtColor"`
	Accessory  int `json:"accessory"`
}

// GridPosition is a department's slot on the office grid. Never recomputed
// once a department exists.
type GridPosition struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Employee is a persisted employee record. Name is the merge key within a
// department. Conversation history entries are opaque to this tool.
type Employee struct {
	ID                  string            `json:"id"`
	EmployeeNumber      string            `json:"employeeNumber"`
	Name                string            `json:"name"`
	AIType              string            `json:"aiType"`
	Status              string            `json:"status"`
	CurrentTaskID       *string           `json:"currentTaskId"`
	ConversationHistory []json.RawMessage `json:"conversationHistory"`
	CreatedAt           string            `json:"createdAt"`
	TotalTasksCompleted int               `json:"totalTasksCompleted"`
	CharacterAppearance Appearance        `json:"characterAppearance"`
}

// Department groups employees within a project. Type is the merge key.
type Department struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Employees   []*Employee  `json:"employees"`
	MaxCapacity int          `json:"maxCapacity"`
	Position    GridPosition `json:"position"`
}

// Project is a persisted project. Name is the merge key; the ID is generated
// once and never used for lookup. Tasks belong to the game engine and pass
// through recovery untouched.
type Project struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
	Departments []*Department     `json:"departments"`
	Tasks       []json.RawMessage `json:"tasks"`
}

// Company is the full company.json document. Only the projects array is
// understood by this tool; every other top-level field the game engine wrote
// is kept verbatim and re-emitted on save.
type Company struct {
	Projects []*Project

	// extra holds top-level fields other than "projects", raw.
	extra map[string]json.RawMessage
}

// FindProject returns the project with the given display name, or nil.
func (c *Company) FindProject(name string) *Project {
	for _, p := range c.Projects {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindDepartment returns the department with the given type code, or nil.
func (p *Project) FindDepartment(code string) *Department {
	for _, d := range p.Departments {
		if d.Type == code {
			return d
		}
	}
	return nil
}

// UnmarshalJSON decodes the projects array and stashes all other top-level
// fields so they survive a load/save round trip.
func (c *Company) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// A document without a projects field is treated as having none.
	if projects, ok := raw["projects"]; ok {
		if err := json.Unmarshal(projects, &c.Projects); err != nil {
			return err
		}
		delete(raw, "projects")
	}
	if c.Projects == nil {
		c.Projects = []*Project{}
	}

	c.extra = raw
	return nil
}

// MarshalJSON emits all top-level fields in sorted key order so repeated
// saves of the same document are byte-identical.
func (c *Company) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(c.extra)+1)
	for k := range c.extra {
		keys = append(keys, k)
	}
	keys = append(keys, "projects")
	sort.Strings(keys)

	projects := c.Projects
	if projects == nil {
		projects = []*Project{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value []byte
		if k == "projects" {
			// Encode through an encoder so <, >, and & in descriptions
			// are written literally, matching how the store is saved.
			var pbuf bytes.Buffer
			enc := json.NewEncoder(&pbuf)
			enc.SetEscapeHTML(false)
			if err := enc.Encode(projects); err != nil {
				return nil, err
			}
			value = bytes.TrimRight(pbuf.Bytes(), "\n")
		} else {
			value = c.extra[k]
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
