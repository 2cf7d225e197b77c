package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/companysim/company-recover/internal/models"
	"github.com/companysim/company-recover/internal/parser"
	"github.com/companysim/company-recover/internal/scanner"
)

// Reporter receives progress events while a merge runs. The CLI uses it to
// print per-project and per-employee lines; the merge itself never prints.
type Reporter interface {
	ProjectFound(name string)
	ProjectCreated(name string)
	EmployeeAdded(name, department string)
}

type nopReporter struct{}

func (nopReporter) ProjectFound(string)          {}
func (nopReporter) ProjectCreated(string)        {}
func (nopReporter) EmployeeAdded(string, string) {}

// Stats summarizes what a merge changed.
type Stats struct {
	ProjectsFound   int
	ProjectsCreated int
	EmployeesAdded  int
}

// Merger reconciles scanned project records into a company document.
// Lookup is always by display name or type code, never by identifier, which
// is what makes re-running recovery safe.
type Merger struct {
	logger   *slog.Logger
	reporter Reporter
	now      func() time.Time
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) MergerOption {
	return func(m *Merger) { m.reporter = r }
}

// WithClock overrides the timestamp source (for tests).
func WithClock(now func() time.Time) MergerOption {
	return func(m *Merger) { m.now = now }
}

// NewMerger creates a merger. A nil logger defaults to slog.Default().
func NewMerger(logger *slog.Logger, opts ...MergerOption) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Merger{
		logger:   logger,
		reporter: nopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge folds the scanned projects into the company document in place.
// Existing projects, departments, and employees are matched by name or type
// code and never rewritten; only structurally missing children are added.
// Projects are processed in sorted folder-name order so output is
// deterministic.
func (m *Merger) Merge(company *models.Company, scanned map[string]*scanner.ProjectInfo) Stats {
	var stats Stats

	folders := make([]string, 0, len(scanned))
	for folder := range scanned {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		info := scanned[folder]

		project := company.FindProject(info.Name)
		if project != nil {
			stats.ProjectsFound++
			m.reporter.ProjectFound(info.Name)
			m.logger.Debug("found existing project", "name", info.Name)
		} else {
			project = m.newProject(info.Name)
			company.Projects = append(company.Projects, project)
			stats.ProjectsCreated++
			m.reporter.ProjectCreated(info.Name)
			m.logger.Debug("created new project", "name", info.Name, "id", project.ID)
		}

		stats.EmployeesAdded += m.mergeEmployees(project, info.Employees)
	}

	return stats
}

// mergeEmployees groups the scanned records by department code (first-seen
// order) and appends the ones whose names are not already present.
func (m *Merger) mergeEmployees(project *models.Project, records []*parser.SheetRecord) int {
	var codes []string
	byCode := make(map[string][]*parser.SheetRecord)
	for _, rec := range records {
		if _, ok := byCode[rec.Department]; !ok {
			codes = append(codes, rec.Department)
		}
		byCode[rec.Department] = append(byCode[rec.Department], rec)
	}

	added := 0
	for _, code := range codes {
		dept := project.FindDepartment(code)
		if dept == nil {
			dept = m.newDepartment(code)
			project.Departments = append(project.Departments, dept)
			m.logger.Debug("created new department", "project", project.Name, "type", code)
		}

		// Snapshot of names taken once per department; duplicates within
		// the same run fall through, matching the documented merge
		// semantics.
		existing := make(map[string]struct{}, len(dept.Employees))
		for _, emp := range dept.Employees {
			existing[emp.Name] = struct{}{}
		}

		for _, rec := range byCode[code] {
			if _, ok := existing[rec.Name]; ok {
				m.logger.Debug("employee already present", "project", project.Name, "department", code, "name", rec.Name)
				continue
			}
			emp := m.newEmployee(rec, len(dept.Employees))
			dept.Employees = append(dept.Employees, emp)
			added++
			m.reporter.EmployeeAdded(rec.Name, code)
			m.logger.Debug("added employee", "project", project.Name, "department", code, "name", rec.Name)
		}
	}

	return added
}

func (m *Merger) newProject(name string) *models.Project {
	now := models.Timestamp(m.now())
	return &models.Project{
		ID:          models.NewID(),
		Name:        name,
		Description: "",
		Status:      models.DefaultProjectStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
		Departments: []*models.Department{},
		Tasks:       []json.RawMessage{},
	}
}

func (m *Merger) newDepartment(code string) *models.Department {
	return &models.Department{
		ID:          models.NewID(),
		Type:        code,
		Name:        code + models.DepartmentSuffix,
		Employees:   []*models.Employee{},
		MaxCapacity: models.DefaultMaxCapacity,
		Position:    models.GridPosition{Row: 0, Column: 0},
	}
}

// newEmployee builds a persistent employee from a scanned record. count is
// the department's employee count at insertion time; numbers are never
// reassigned on later runs.
func (m *Merger) newEmployee(rec *parser.SheetRecord, count int) *models.Employee {
	history := rec.ConversationHistory
	if history == nil {
		history = []json.RawMessage{}
	}
	return &models.Employee{
		ID:                  models.NewID(),
		EmployeeNumber:      fmt.Sprintf("%s%04d", models.EmployeeNumberPrefix, count),
		Name:                rec.Name,
		AIType:              rec.AIType,
		Status:              models.DefaultEmployeeStatus,
		CurrentTaskID:       nil,
		ConversationHistory: history,
		CreatedAt:           models.Timestamp(m.now()),
		TotalTasksCompleted: 0,
		CharacterAppearance: rec.Appearance,
	}
}
