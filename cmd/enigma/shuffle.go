package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PeddleSpam/enigma/keystream"
)

var shuffleCount int

// shuffleCmd drives a Fisher-Yates shuffle from the machine keystream.
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a sequence using the machine as the random source",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		gen, err := newGenerator()
		if err != nil {
			return
		}

		items := make([]int, shuffleCount)
		for n := range items {
			items[n] = n + 1
		}
		fmt.Fprintln(cmd.OutOrStdout(), joinInts(items))

		rand.New(keystream.NewSource(gen)).Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
		fmt.Fprintln(cmd.OutOrStdout(), joinInts(items))
		return
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().IntVarP(&shuffleCount, "count", "n", 10, "number of items to shuffle")
}

func joinInts(items []int) string {
	text := make([]string, len(items))
	for n, item := range items {
		text[n] = fmt.Sprintf("%d", item)
	}
	return strings.Join(text, ", ")
}
