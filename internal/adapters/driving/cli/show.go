package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/huangli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/huangli/internal/core/domain"
)

var (
	showTZ   string
	showLang string
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Print the almanac for a day",
	Long: `Print the Huangli almanac for a YYYY-MM-DD date, or for today when no
date is given. Output is a styled panel on a terminal and JSON otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTZ, "tz", "", "IANA timezone (default from config, then Asia/Shanghai)")
	showCmd.Flags().StringVar(&showLang, "lang", "", "zh or en (default from config, then zh)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	req := domain.AlmanacRequest{Timezone: showTZ, Lang: showLang}
	if len(args) == 1 {
		req.Date = args[0]
	}

	record, err := a.huangli.Almanac(cmd.Context(), req)
	if err != nil {
		return err
	}

	if showJSON || !isTerminal(cmd.OutOrStdout()) {
		text, err := mcp.MarshalRecord(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderRecord(record))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
	labelStyle = lipgloss.NewStyle().Width(6).Foreground(lipgloss.Color("#6C7086"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// renderRecord formats a record as a bordered panel.
func renderRecord(r *domain.AlmanacRecord) string {
	g, l := r.Date.Gregorian, r.Date.Lunar
	sb, al := r.StemsBranches, r.Almanac

	title := titleStyle.Render(fmt.Sprintf("%04d-%02d-%02d %s", g.Year, g.Month, g.Day, g.Weekday))
	lunarLine := fmt.Sprintf("农历%s月%s · %s年", orDash(l.MonthName), orDash(l.DayName), orDash(l.Zodiac))
	if r.Date.SolarTerm != "" {
		lunarLine += " · " + r.Date.SolarTerm
	}

	dayStyle := badStyle
	if al.HuangDaoOrHeiDao == domain.HuangDaoDay {
		dayStyle = goodStyle
	}

	rows := []string{
		title,
		lunarLine,
		"",
		row("干支", fmt.Sprintf("%s年 %s月 %s日", sb.YearGZ, sb.MonthGZ, sb.DayGZ)),
		row("纳音", joinOrDash(sb.Nayin.Year, sb.Nayin.Month, sb.Nayin.Day)),
		row("宜", goodStyle.Render(joinOrDash(al.Yi...))),
		row("忌", badStyle.Render(joinOrDash(al.Ji...))),
		row("值神", orDash(al.DayTianShen)+" "+dayStyle.Render(al.HuangDaoOrHeiDao)),
		row("冲煞", fmt.Sprintf("冲%s 煞%s", orDash(al.Chong.Desc), orDash(al.Sha))),
		row("彭祖", joinOrDash(al.PengZu.Gan, al.PengZu.Zhi)),
		row("方位", fmt.Sprintf("喜神%s 福神%s 财神%s",
			orDash(al.GodsDirection.Xi), orDash(al.GodsDirection.Fu), orDash(al.GodsDirection.Cai))),
		row("吉神", joinOrDash(al.Stars.JiShen...)),
		row("凶煞", joinOrDash(al.Stars.XiongSha...)),
		row("时区", g.Timezone),
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(xs ...string) string {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		if x != "" {
			parts = append(parts, x)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
