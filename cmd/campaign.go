package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/db"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage sponsor campaigns",
}

var campaignImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Create campaigns from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignImport,
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE:  runCampaignList,
}

var (
	listStatus  string
	listCompany int64
)

func init() {
	campaignListCmd.Flags().StringVar(&listStatus, "status", "", "Only list campaigns with this status")
	campaignListCmd.Flags().Int64Var(&listCompany, "company", 0, "Only list campaigns of this company")
	campaignCmd.AddCommand(campaignImportCmd)
	campaignCmd.AddCommand(campaignListCmd)
}

func runCampaignImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	campaigns, err := db.LoadCampaigns(f)
	if err != nil {
		return err
	}

	cfg, _, err := loadApp()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	created, err := db.Seed(cmd.Context(), store, campaigns)
	for _, c := range created {
		fmt.Fprintf(cmd.OutOrStdout(), "created campaign %d %q\n", c.ID, c.Name)
	}
	return err
}

func runCampaignList(cmd *cobra.Command, _ []string) error {
	var q port.CampaignQuery
	if listStatus != "" {
		status := domain.CampaignStatus(listStatus)
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", listStatus)
		}
		q.Status = &status
	}
	if listCompany > 0 {
		q.CompanyID = &listCompany
	}

	cfg, _, err := loadApp()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	campaigns, err := store.ListCampaigns(cmd.Context(), q)
	if err != nil {
		return err
	}
	writeCampaigns(cmd.OutOrStdout(), campaigns, time.Now())
	return nil
}

func writeCampaigns(out io.Writer, campaigns []domain.Campaign, now time.Time) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tNAME\tSTATUS\tPRIORITY\tWEIGHT\tDAILY CAP\tENDS")
	for _, c := range campaigns {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			c.ID, c.CompanyID, c.Name, c.Status, c.Priority, c.Weight,
			humanize.Comma(c.DailyImpressionCap), humanize.RelTime(c.EndAt, now, "ago", "from now"))
	}
	_ = tw.Flush()
}
