package parser

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/companysim/company-recover/internal/models"
)

// Defaults applied when a sheet field is missing. Absent fields are never an
// error; every matcher degrades to its default.
const (
	DefaultAIType     = "Claude"
	defaultDepartment = "기획" + models.DepartmentSuffix

	// appearanceHeading marks the free-text appearance block ("외모").
	appearanceHeading = "외모"

	// glassesCue is the only appearance attribute recovery infers ("안경").
	glassesCue = "안경"
)

// Pipe-table row matchers for the labeled sheet fields. First match per
// label wins.
var (
	aiTypeRow    = regexp.MustCompile(`\*\*AI 유형\*\* \| (.+)`)
	deptRow      = regexp.MustCompile(`\*\*부서\*\* \| (.+)`)
	joinDateRow  = regexp.MustCompile(`\*\*입사일\*\* \| (.+)`)
	convCountRow = regexp.MustCompile(`\*\*총 대화 수\*\* \| (\d+)회`)
)

// SheetRecord holds the fields inferred from one employee sheet. It is
// consumed by the merge step and never persisted on its own.
type SheetRecord struct {
	Name              string
	AIType            string
	Department        string
	ProjectName       string
	JoinDate          string
	ConversationCount int
	Appearance        models.Appearance

	// ConversationHistory is always empty: transcript recovery is out of
	// scope, but the shape carries through to the store.
	ConversationHistory []json.RawMessage
}

// ParseSheet extracts a SheetRecord from the markdown content of one
// employee sheet. fallbackName (the file's base name without extension) is
// used when the sheet has no title. Department and ProjectName are stamped
// later by the scanner.
func ParseSheet(content, fallbackName string) *SheetRecord {
	doc := ParseMarkdown(content)

	name := doc.Title
	if name == "" {
		name = fallbackName
	}

	dept := matchRow(deptRow, content, defaultDepartment)
	dept = strings.TrimSuffix(dept, models.DepartmentSuffix)

	rec := &SheetRecord{
		Name:                name,
		AIType:              matchRow(aiTypeRow, content, DefaultAIType),
		Department:          dept,
		JoinDate:            matchRow(joinDateRow, content, ""),
		ConversationCount:   matchCount(convCountRow, content),
		ConversationHistory: []json.RawMessage{},
	}

	if section := doc.FirstSection(3, appearanceHeading); section != nil {
		if strings.Contains(section.FirstLine(), glassesCue) {
			rec.Appearance.Accessory = 1
		}
	}

	return rec
}

// matchRow returns the trimmed first capture of re, or fallback.
func matchRow(re *regexp.Regexp, content, fallback string) string {
	if m := re.FindStringSubmatch(content); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

// matchCount returns the first capture of re parsed as an integer, or 0.
func matchCount(re *regexp.Regexp, content string) int {
	m := re.FindStringSubmatch(content)
	if len(m) < 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
