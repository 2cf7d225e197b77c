// Package service orchestrates the scan and merge stages of a recovery run.
package service

import (
	"log/slog"

	"github.com/companysim/company-recover/internal/models"
	"github.com/companysim/company-recover/internal/scanner"
	"github.com/companysim/company-recover/internal/store"
)

// RecoverService runs the full recovery pass: scan the projects tree, merge
// the inferred records into the store, write the store back. One pass, no
// retries; any error aborts before the store is touched.
type RecoverService struct {
	scanner *scanner.Scanner
	logger  *slog.Logger
	opts    []store.MergerOption
}

// Result summarizes a completed recovery run.
type Result struct {
	// Scanned maps project folder names to what the scanner found.
	Scanned map[string]*scanner.ProjectInfo

	// Company is the merged document as written to disk.
	Company *models.Company

	Stats store.Stats
}

// NewRecoverService creates the service. A nil logger defaults to
// slog.Default(); merger options (reporter, clock) pass through.
func NewRecoverService(logger *slog.Logger, opts ...store.MergerOption) *RecoverService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecoverService{
		scanner: scanner.New(logger),
		logger:  logger,
		opts:    opts,
	}
}

// Scan walks the projects tree without touching the store. Used both for
// the dry-run preview and as the first stage of Run.
func (s *RecoverService) Scan(projectsDir string) (map[string]*scanner.ProjectInfo, error) {
	s.logger.Info("scanning projects folder", "dir", projectsDir)
	scanned, err := s.scanner.Scan(projectsDir)
	if err != nil {
		return nil, err
	}
	s.logger.Info("scan complete", "projects", len(scanned))
	return scanned, nil
}

// MergeAndSave loads the store, merges the scanned records into it, and
// writes it back. The store must already exist and be valid JSON.
func (s *RecoverService) MergeAndSave(scanned map[string]*scanner.ProjectInfo, storePath string) (*Result, error) {
	company, err := store.Load(storePath)
	if err != nil {
		return nil, err
	}

	merger := store.NewMerger(s.logger, s.opts...)
	stats := merger.Merge(company, scanned)

	if err := store.Save(storePath, company); err != nil {
		return nil, err
	}
	s.logger.Info("store updated", "path", storePath,
		"projects_created", stats.ProjectsCreated,
		"employees_added", stats.EmployeesAdded)

	return &Result{Scanned: scanned, Company: company, Stats: stats}, nil
}

// Run performs the whole recovery against the given paths.
func (s *RecoverService) Run(projectsDir, storePath string) (*Result, error) {
	scanned, err := s.Scan(projectsDir)
	if err != nil {
		return nil, err
	}
	return s.MergeAndSave(scanned, storePath)
}
