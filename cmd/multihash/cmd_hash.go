package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeekips/multihash"
	"github.com/spikeekips/multihash/codetable"
)

var flagHash string

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "hash stdin and print the base58 multihash",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mh, err := hashStdin(flagHash)
		if err != nil {
			printError(cmd, err)
			os.Exit(1)
		}

		cmd.Println(mh.String())
	},
}

func hashStdin(name string) (multihash.Multihash, error) {
	e, found := codetable.Default().EntryByName(name)
	if !found {
		return multihash.Multihash{}, codetable.UnknownCodeError.Errorf("name=%q", name)
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return multihash.Multihash{}, err
	}

	log.Debug().Str("hasher", e.Name).Int("input_size", len(b)).Msg("hashing stdin")

	return e.Hash(b)
}

func init() {
	hashCmd.Flags().StringVar(&flagHash, "hash", "sha2-256", "hash to use")

	rootCmd.AddCommand(hashCmd)
}
