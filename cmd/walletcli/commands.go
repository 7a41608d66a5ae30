package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/mnemonic"
	"github.com/cnwallet/walletcore/rpc"
	"github.com/cnwallet/walletcore/wallet"
)

func readPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func openWallet() (*wallet.Wallet, error) {
	node := rpc.NewJSONClient(cfg.nodeURL)
	return wallet.New(node, cfg.persistDir, cfg.network, wallet.Callbacks{}, wallet.DustPolicy{Threshold: 1000000}, 0)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a new account and unlock the wallet with it",
	Run: func(cmd *cobra.Command, args []string) {
		w, err := openWallet()
		if err != nil {
			dieWithError("opening wallet", err)
		}
		defer w.Close()

		password, err := readPassword("new password: ")
		if err != nil {
			dieWithError("reading password", err)
		}

		seed, err := w.CreateAndUnlock(password, true)
		if err != nil {
			dieWithError("creating account", err)
		}
		fmt.Printf("account created, remember this recovery phrase:\n%s\n", strings.Join(mnemonic.ToPhrase(seed), " "))
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover <hex seed>",
	Short: "rebuild an account from a recovery seed and unlock the wallet with it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var seed [32]byte
		raw, err := hex.DecodeString(args[0])
		if err != nil || len(raw) != len(seed) {
			dieWithError("parsing seed", fmt.Errorf("expected 64 hex characters"))
		}
		copy(seed[:], raw)

		w, err := openWallet()
		if err != nil {
			dieWithError("opening wallet", err)
		}
		defer w.Close()

		password, err := readPassword("new password: ")
		if err != nil {
			dieWithError("reading password", err)
		}
		if err := w.RecoverAndUnlock(password, seed); err != nil {
			dieWithError("recovering account", err)
		}
		fmt.Println("account recovered")
	},
}

var recoverPhraseCmd = &cobra.Command{
	Use:   "recover-phrase <25-word phrase>",
	Short: "rebuild an account from its 25-word recovery phrase and unlock the wallet with it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		seed, err := mnemonic.FromPhrase(mnemonic.ParsePhrase(args[0]))
		if err != nil {
			dieWithError("parsing recovery phrase", err)
		}

		w, err := openWallet()
		if err != nil {
			dieWithError("opening wallet", err)
		}
		defer w.Close()

		password, err := readPassword("new password: ")
		if err != nil {
			dieWithError("reading password", err)
		}
		if err := w.RecoverAndUnlock(password, seed); err != nil {
			dieWithError("recovering account", err)
		}
		fmt.Println("account recovered")
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "print the wallet's current balance",
	Run: func(cmd *cobra.Command, args []string) {
		w := unlockFromStdin()
		defer w.Close()

		balance, err := w.Balance()
		if err != nil {
			dieWithError("reading balance", err)
		}
		fmt.Println(balance)
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "print the wallet's public address",
	Run: func(cmd *cobra.Command, args []string) {
		w := unlockFromStdin()
		defer w.Close()

		addr, err := w.Address()
		if err != nil {
			dieWithError("reading address", err)
		}
		fmt.Println(addr.String())
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "scan new blocks from the node into the wallet's state",
	Run: func(cmd *cobra.Command, args []string) {
		w := unlockFromStdin()
		defer w.Close()

		if err := w.Refresh(context.Background(), nil); err != nil {
			dieWithError("refreshing", err)
		}
		fmt.Println("refresh complete")
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <address> <amount>",
	Short: "build, sign, and relay a transaction paying address the given amount",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := account.ParseAddress(args[0])
		if err != nil {
			dieWithError("parsing destination address", err)
		}
		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			dieWithError("parsing amount", err)
		}

		w := unlockFromStdin()
		defer w.Close()

		dest := []wallet.Destination{{Address: addr, Amount: amount}}
		pending, err := w.CreateTransactions(context.Background(), dest, 5, 0, 0, nil)
		if err != nil {
			dieWithError("building transaction", err)
		}
		for _, p := range pending {
			if err := w.Commit(context.Background(), p); err != nil {
				dieWithError("relaying transaction", err)
			}
		}
		fmt.Printf("sent in %d transaction(s)\n", len(pending))
	},
}

func unlockFromStdin() *wallet.Wallet {
	w, err := openWallet()
	if err != nil {
		dieWithError("opening wallet", err)
	}
	password, err := readPassword("password: ")
	if err != nil {
		dieWithError("reading password", err)
	}
	if err := w.Unlock(password); err != nil {
		dieWithError("unlocking wallet", err)
	}
	return w
}

func dieWithError(action string, err error) {
	fmt.Fprintf(os.Stderr, "failed %s: %v\n", action, err)
	os.Exit(1)
}
