package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"whit-sponsors/internal/adapter/usecase"
	"whit-sponsors/internal/core/port"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print daily delivery statistics",
	RunE:  runStats,
}

var (
	statsCompany  int64
	statsCampaign int64
	statsFrom     string
	statsTo       string
)

func init() {
	statsCmd.Flags().Int64Var(&statsCompany, "company", 0, "Only report campaigns of this company")
	statsCmd.Flags().Int64Var(&statsCampaign, "campaign", 0, "Only report this campaign")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "First day of the period (default 30 days ago)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Last day of the period (default today)")
}

// statsRequest turns the command flags into a stats request. Dates accept
// any format dateparse understands and are read as UTC.
func statsRequest(now time.Time, from, to string, company, campaign int64) (port.StatsReq, error) {
	req := port.StatsReq{From: now.AddDate(0, 0, -30), To: now}
	var err error
	if from != "" {
		if req.From, err = dateparse.ParseIn(from, time.UTC); err != nil {
			return req, fmt.Errorf("invalid --from: %w", err)
		}
	}
	if to != "" {
		if req.To, err = dateparse.ParseIn(to, time.UTC); err != nil {
			return req, fmt.Errorf("invalid --to: %w", err)
		}
	}
	if company > 0 {
		req.CompanyID = &company
	}
	if campaign > 0 {
		req.CampaignID = &campaign
	}
	return req, nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	req, err := statsRequest(time.Now().UTC(), statsFrom, statsTo, statsCompany, statsCampaign)
	if err != nil {
		return err
	}

	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	resp, err := usecase.NewSponsorUseCase(store, logger, nil).GetStats(cmd.Context(), req)
	if err != nil {
		return err
	}
	writeStats(cmd.OutOrStdout(), resp)
	return nil
}

func writeStats(out io.Writer, resp *port.StatsResp) {
	fmt.Fprintf(out, "%s .. %s\n\n", resp.From, resp.To)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tCAMPAIGN\tIMPRESSIONS\tCLICKS\tCTR %\t")
	for _, r := range resp.Daily {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.2f\t\n",
			r.Date, r.CampaignID, humanize.Comma(r.Impressions), humanize.Comma(r.Clicks), r.CTR)
	}
	fmt.Fprintf(tw, "total\t\t%s\t%s\t%.2f\t\n",
		humanize.Comma(resp.Summary.TotalImpressions), humanize.Comma(resp.Summary.TotalClicks), resp.Summary.OverallCTR)
	_ = tw.Flush()
}
