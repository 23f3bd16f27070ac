package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeekips/multihash"
	"github.com/spikeekips/multihash/codetable"
	"github.com/spikeekips/multihash/isvalid"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <multihash>",
	Short: "check that stdin hashes to the given base58 multihash",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expected, err := multihash.NewFromString(args[0])
		if err != nil {
			printError(cmd, err)
			os.Exit(1)
		}

		if err := isvalid.Check(nil, false, expected); err != nil {
			printError(cmd, err)
			os.Exit(1)
		}

		e, found := codetable.Default().Entry(expected.Code())
		if !found {
			printError(cmd, codetable.UnknownCodeError.Errorf("code=0x%x", expected.Code()))
			os.Exit(1)
		}

		log.Debug().Object("expected", expected).Str("hasher", e.Name).Msg("detected hasher")

		mh, err := hashStdin(e.Name)
		if err != nil {
			printError(cmd, err)
			os.Exit(1)
		}

		if !mh.Equal(expected) {
			printError(cmd, multihash.InvalidMultihashError.Errorf("hash mismatch"))
			os.Exit(1)
		}

		cmd.Println("verified")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
