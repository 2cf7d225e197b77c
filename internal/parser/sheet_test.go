package parser

import (
	"testing"

	"github.com/companysim/company-recover/internal/models"
)

func TestParseSheet_AllFieldsPresent(t *testing.T) {
	content := `# Aria

## 기본 정보

| 항목 | 값 |
|------|------|
**AI 유형** | GPT
**부서** | 개발팀
**입사일** | 2024-03-15
**총 대화 수** | 12회

### 외모

안경을 쓴 캐릭터
`

	rec := ParseSheet(content, "aria")

	if rec.Name != "Aria" {
		t.Errorf("Name = %q, want %q", rec.Name, "Aria")
	}
	if rec.AIType != "GPT" {
		t.Errorf("AIType = %q, want %q", rec.AIType, "GPT")
	}
	if rec.Department != "개발" {
		t.Errorf("Department = %q, want %q", rec.Department, "개발")
	}
	if rec.JoinDate != "2024-03-15" {
		t.Errorf("JoinDate = %q, want %q", rec.JoinDate, "2024-03-15")
	}
	if rec.ConversationCount != 12 {
		t.Errorf("ConversationCount = %d, want 12", rec.ConversationCount)
	}
	if rec.Appearance.Accessory != 1 {
		t.Errorf("Appearance.Accessory = %d, want 1", rec.Appearance.Accessory)
	}
	if rec.Appearance.SkinTone != 0 || rec.Appearance.HairStyle != 0 ||
		rec.Appearance.HairColor != 0 || rec.Appearance.ShirtColor != 0 {
		t.Errorf("non-accessory appearance fields should stay zero, got %+v", rec.Appearance)
	}
	if len(rec.ConversationHistory) != 0 {
		t.Errorf("ConversationHistory should be empty, got %d entries", len(rec.ConversationHistory))
	}
}

func TestParseSheet_AllFieldsMissing(t *testing.T) {
	rec := ParseSheet("just some text without any structure", "min-jun")

	if rec.Name != "min-jun" {
		t.Errorf("Name = %q, want fallback %q", rec.Name, "min-jun")
	}
	if rec.AIType != "Claude" {
		t.Errorf("AIType = %q, want default %q", rec.AIType, "Claude")
	}
	if rec.Department != "기획" {
		t.Errorf("Department = %q, want default %q", rec.Department, "기획")
	}
	if rec.JoinDate != "" {
		t.Errorf("JoinDate = %q, want empty", rec.JoinDate)
	}
	if rec.ConversationCount != 0 {
		t.Errorf("ConversationCount = %d, want 0", rec.ConversationCount)
	}
	if rec.Appearance != (models.Appearance{}) {
		t.Errorf("Appearance = %+v, want all zero", rec.Appearance)
	}
}

func TestParseSheet_Fields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, rec *SheetRecord)
	}{
		{
			name:    "department suffix stripped",
			content: "**부서** | 마케팅팀",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Department != "마케팅" {
					t.Errorf("Department = %q, want %q", rec.Department, "마케팅")
				}
			},
		},
		{
			name:    "department without suffix kept as is",
			content: "**부서** | QA",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Department != "QA" {
					t.Errorf("Department = %q, want %q", rec.Department, "QA")
				}
			},
		},
		{
			name:    "conversation count requires unit marker",
			content: "**총 대화 수** | 42",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.ConversationCount != 0 {
					t.Errorf("ConversationCount = %d, want 0 without 회 marker", rec.ConversationCount)
				}
			},
		},
		{
			name:    "appearance without glasses cue",
			content: "### 외모\n\n짧은 머리의 캐릭터\n",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Appearance.Accessory != 0 {
					t.Errorf("Accessory = %d, want 0", rec.Appearance.Accessory)
				}
			},
		},
		{
			name:    "glasses cue on a later line is ignored",
			content: "### 외모\n\n짧은 머리\n안경도 씀\n",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Appearance.Accessory != 0 {
					t.Errorf("Accessory = %d, want 0 (only the first line is scanned)", rec.Appearance.Accessory)
				}
			},
		},
		{
			name:    "first heading wins",
			content: "# 하나\n\n# 둘\n",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Name != "하나" {
					t.Errorf("Name = %q, want %q", rec.Name, "하나")
				}
			},
		},
		{
			name:    "frontmatter name overrides heading",
			content: "---\nname: 프론트매터\n---\n\n# 헤딩\n",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.Name != "프론트매터" {
					t.Errorf("Name = %q, want %q", rec.Name, "프론트매터")
				}
			},
		},
		{
			name:    "values are trimmed",
			content: "**AI 유형** |    Gemini   ",
			check: func(t *testing.T, rec *SheetRecord) {
				if rec.AIType != "Gemini" {
					t.Errorf("AIType = %q, want %q", rec.AIType, "Gemini")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseSheet(tt.content, "fallback"))
		})
	}
}
