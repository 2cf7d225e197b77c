// Package scanner walks the projects tree and infers employee records from
// the markdown sheets it finds.
package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/companysim/company-recover/internal/parser"
)

// peopleDirName is the directory inside a department folder that holds the
// employee sheets.
const peopleDirName = "people"

// departmentCodes is the fixed set of department folders recognized under a
// project. Anything else is silently ignored.
var departmentCodes = map[string]struct{}{
	"기획":  {},
	"디자인": {},
	"개발":  {},
	"QA":  {},
	"마케팅": {},
}

// ProjectInfo is a scanned project: its display name (folder name with "-"
// replaced by " ") and the employee records found under it.
type ProjectInfo struct {
	Name      string
	Employees []*parser.SheetRecord
}

// Scanner discovers projects and their employee sheets under a root folder.
type Scanner struct {
	logger *slog.Logger
}

// New creates a scanner. A nil logger defaults to slog.Default().
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Scan enumerates the immediate project folders under root and returns the
// ones that yielded at least one employee, keyed by folder name. Unreadable
// files or directories abort the scan; missing or unrecognized folders do
// not.
func (s *Scanner) Scan(root string) (map[string]*ProjectInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read projects dir: %w", err)
	}

	projects := make(map[string]*ProjectInfo)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		folderName := entry.Name()
		info, err := s.scanProject(filepath.Join(root, folderName), folderName)
		if err != nil {
			return nil, err
		}

		// Projects without a single employee are dropped entirely.
		if len(info.Employees) == 0 {
			s.logger.Debug("skipping empty project", "folder", folderName)
			continue
		}
		projects[folderName] = info
	}

	return projects, nil
}

// scanProject collects employees from the recognized department folders of
// one project directory.
func (s *Scanner) scanProject(projectDir, folderName string) (*ProjectInfo, error) {
	info := &ProjectInfo{
		Name: strings.ReplaceAll(folderName, "-", " "),
	}

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return nil, fmt.Errorf("read project dir %s: %w", folderName, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		code := entry.Name()
		if _, ok := departmentCodes[code]; !ok {
			continue
		}

		records, err := s.scanPeople(filepath.Join(projectDir, code))
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			rec.Department = code
			rec.ProjectName = info.Name
			info.Employees = append(info.Employees, rec)
		}
	}

	s.logger.Debug("scanned project", "folder", folderName, "employees", len(info.Employees))
	return info, nil
}

// scanPeople parses every markdown sheet in the department's people folder.
// A department without one is skipped without error.
func (s *Scanner) scanPeople(deptDir string) ([]*parser.SheetRecord, error) {
	peopleDir := filepath.Join(deptDir, peopleDirName)
	stat, err := os.Stat(peopleDir)
	if err != nil || !stat.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(peopleDir)
	if err != nil {
		return nil, fmt.Errorf("read people dir %s: %w", peopleDir, err)
	}

	var records []*parser.SheetRecord
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		path := filepath.Join(peopleDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read employee sheet %s: %w", path, err)
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		records = append(records, parser.ParseSheet(string(content), stem))
	}

	return records, nil
}
