package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "donorpipe",
	Short: "Data donation pipeline CLI",
	Long: `donorpipe downloads data-donation bundles from Azure Blob Storage,
unpacks the per-record JSON files and converts them into tables.

Authentication uses the ambient Azure CLI login - run 'az login' first.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.donorpipe/config.yaml)")
	rootCmd.PersistentFlags().String("account", "", "Azure storage account name")
	rootCmd.PersistentFlags().String("container", "", "Azure blob container name")

	viper.BindPFlag("account", rootCmd.PersistentFlags().Lookup("account"))
	viper.BindPFlag("container", rootCmd.PersistentFlags().Lookup("container"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".donorpipe"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DONORPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		}
	}
}
