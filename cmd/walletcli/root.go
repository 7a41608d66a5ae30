// Command walletcli is a thin command-line front end over the wallet
// package: a cobra.Command tree plus a shared config struct threaded
// through PersistentFlags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type cliConfig struct {
	persistDir string
	nodeURL    string
	network    byte
}

var cfg cliConfig

var rootCmd = &cobra.Command{
	Use:   "walletcli",
	Short: "command-line client for the wallet core",
}

// Execute runs the command tree as driven by os.Args.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.persistDir, "persist-dir", "./wallet-data", "directory holding the keys file and snapshot")
	rootCmd.PersistentFlags().StringVar(&cfg.nodeURL, "node", "http://localhost:23110", "base URL of the node's JSON API")
	rootCmd.AddCommand(
		createCmd,
		recoverCmd,
		recoverPhraseCmd,
		balanceCmd,
		addressCmd,
		refreshCmd,
		sendCmd,
	)
}
