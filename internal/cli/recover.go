package cli

import (
	"fmt"
	"sort"

	"github.com/companysim/company-recover/internal/scanner"
	"github.com/companysim/company-recover/internal/service"
	"github.com/companysim/company-recover/internal/store"
	"github.com/spf13/cobra"
)

// consoleReporter prints merge progress lines as they happen.
type consoleReporter struct {
	theme Theme
}

func (r consoleReporter) ProjectFound(name string) {
	fmt.Println(r.theme.success("✅ 기존 프로젝트 발견: " + name))
}

func (r consoleReporter) ProjectCreated(name string) {
	fmt.Println(r.theme.created("🆕 새 프로젝트 생성: " + name))
}

func (r consoleReporter) EmployeeAdded(name, department string) {
	fmt.Printf("  👤 %s (%s) 추가\n", name, department)
}

func runRecover(cmd *cobra.Command, args []string) error {
	fmt.Println(theme.hint("🔄 프로젝트 자동 복구 시작"))
	fmt.Println()

	svc := service.NewRecoverService(logger,
		store.WithReporter(consoleReporter{theme: theme}))

	fmt.Println("📂 " + cfg.ProjectsDir + " 폴더 스캔 중...")
	scanned, err := svc.Scan(cfg.ProjectsDir)
	if err != nil {
		return err
	}
	printScanSummary(scanned)

	fmt.Println("📝 " + cfg.StorePath + " 업데이트 중...")
	result, err := svc.MergeAndSave(scanned, cfg.StorePath)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(theme.success(fmt.Sprintf("✅ 복구 완료! (프로젝트 %d개 생성, 직원 %d명 추가)",
		result.Stats.ProjectsCreated, result.Stats.EmployeesAdded)))
	return nil
}

// printScanSummary lists the scanned projects with their employee counts.
func printScanSummary(scanned map[string]*scanner.ProjectInfo) {
	fmt.Printf("\n발견된 프로젝트: %d개\n", len(scanned))

	folders := make([]string, 0, len(scanned))
	for folder := range scanned {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		info := scanned[folder]
		fmt.Printf("  - %s: %d명\n", info.Name, len(info.Employees))
	}
	fmt.Println()
}
