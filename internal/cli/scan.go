package cli

import (
	"fmt"
	"sort"

	"github.com/companysim/company-recover/internal/service"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the projects folder without writing the store",
	Long: `Scan walks the projects folder and prints the projects and employees
that a full run would merge, without loading or modifying company.json.

Examples:
  company-recover scan
  company-recover scan --projects-dir ./datas/_projects -v`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	svc := service.NewRecoverService(logger)

	fmt.Println("📂 " + cfg.ProjectsDir + " 폴더 스캔 중...")
	scanned, err := svc.Scan(cfg.ProjectsDir)
	if err != nil {
		return err
	}
	printScanSummary(scanned)

	if verbose {
		folders := make([]string, 0, len(scanned))
		for folder := range scanned {
			folders = append(folders, folder)
		}
		sort.Strings(folders)
		for _, folder := range folders {
			for _, emp := range scanned[folder].Employees {
				fmt.Printf("    %s | %s | %s | 대화 %d회\n",
					emp.Name, emp.AIType, emp.Department, emp.ConversationCount)
			}
		}
	}

	fmt.Println(theme.hint("변경 사항 없음 (미리보기 전용)"))
	return nil
}
