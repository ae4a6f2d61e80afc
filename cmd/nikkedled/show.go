// show.go holds the read-only commands over the stored dataset: the daily
// pick, the full listing and guess resolution.

package main

import (
	"os"
	"time"

	"nikkedle-backend/lib/dailypick"
	"nikkedle-backend/lib/nikke"
	"nikkedle-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(guessCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{
		"Name", "Rarity", "Burst", "Weapon", "Squad",
		"Code", "Weapon Type", "Position", "Manufacturer",
	})
	return t
}

func appendCharacter(t table.Writer, record nikke.Character) {
	weapon := ""
	if record.WeaponName != nil {
		weapon = *record.WeaponName
	}
	t.AppendRow(table.Row{
		record.Name,
		record.Rarity.String(),
		record.Burst.String(),
		weapon,
		record.Squad,
		record.Code.String(),
		record.WeaponType.String(),
		record.Position.String(),
		record.Manufacturer.String(),
	})
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print the character every player shares for the current UTC day.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		records, err := openStore(config).Load()
		if err != nil {
			serviceutil.Fatal("failed to load character store", err)
		}

		record, ok := dailypick.PickOne(dailypick.DateSeed(time.Now()), records)
		if !ok {
			serviceutil.Fatal("no characters stored", os.ErrNotExist)
		}

		t := newTable()
		appendCharacter(t, record)
		t.Render()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored character record.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		records, err := openStore(config).Load()
		if err != nil {
			serviceutil.Fatal("failed to load character store", err)
		}

		t := newTable()
		for _, record := range records {
			appendCharacter(t, record)
		}
		t.Render()
	},
}

var guessCmd = &cobra.Command{
	Use:   "guess <name>",
	Short: "Resolve a free-form guess to the closest stored character.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		record, found, err := openStore(config).FindClosest(args[0])
		if err != nil {
			serviceutil.Fatal("failed to search character store", err)
		}
		if !found {
			serviceutil.Fatal("no characters stored", os.ErrNotExist)
		}

		t := newTable()
		appendCharacter(t, record)
		t.Render()
	},
}
