package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openddlab/donorpipe/errs"
	"github.com/openddlab/donorpipe/pipeline"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a donation bundle from Azure Blob Storage",
	Long: `Download a donation bundle from Azure Blob Storage.

With --blob the named blob is fetched as-is. Without it, every .json blob
under --prefix is bundled into a single local archive (data.zip).`,
	Example: `  donorpipe download --account myaccount --container donations --destination data.zip
  donorpipe download --account myaccount --container donations --blob exports/data.zip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		account := viper.GetString("account")
		container := viper.GetString("container")
		if account == "" || container == "" {
			return fmt.Errorf("both --account and --container are required")
		}

		blob, _ := cmd.Flags().GetString("blob")
		prefix, _ := cmd.Flags().GetString("prefix")
		destination, _ := cmd.Flags().GetString("destination")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		blobPath := blob
		if blobPath == "" {
			// treat as a prefix bundle download
			blobPath = prefix
			if blobPath != "" && blobPath[len(blobPath)-1] != '/' {
				blobPath += "/"
			}
		}

		a, err := pipeline.DownloadFromAzure(cmd.Context(), container, blobPath, destination,
			pipeline.WithAccount(account),
			pipeline.WithTimeout(timeout),
			pipeline.WithBundleExtensions(".json", ".json.gz"),
		)
		if err != nil {
			if errs.IsAuthentication(err) {
				return fmt.Errorf("not logged in to Azure - run 'az login' and retry (%w)", err)
			}
			return err
		}
		defer a.Close()

		fmt.Printf("Downloaded %s (%d entries)\n", a.Path, len(a.Entries()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().String("blob", "", "blob path of an already bundled archive")
	downloadCmd.Flags().String("prefix", "", "blob prefix to bundle (default: whole container)")
	downloadCmd.Flags().String("destination", "data.zip", "local path for the downloaded archive")
	downloadCmd.Flags().Duration("timeout", 10*time.Minute, "overall fetch timeout")
}
