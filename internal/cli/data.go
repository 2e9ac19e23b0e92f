package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nilavan/kanadeck/pkg/kana"
)

// dataCommand creates the data command for inspecting a readings CSV.
// It loads the file the same way build does and reports which characters
// from the kana tables have no reading.
func (c *CLI) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data [file]",
		Short: "Validate a readings CSV against the kana tables",
		Long: `Validate a readings CSV against the kana tables.

With no argument, the built-in readings table is checked instead. Each
record has four fields: hiragana, katakana, tamil, romaji. Characters
that appear in the deck tables but have no reading render with an empty
auxiliary line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runData(path)
		},
	}
	return cmd
}

func runData(path string) error {
	readings := kana.DefaultReadings
	source := "built-in"
	if path != "" {
		var err error
		if readings, err = kana.LoadCSV(path); err != nil {
			return err
		}
		source = path
	}

	missing := missingReadings(readings)

	printKeyValue("source", source)
	printKeyValue("readings", fmt.Sprintf("%d", len(readings)))
	printKeyValue("missing", fmt.Sprintf("%d", len(missing)))
	printNewline()

	if len(missing) > 0 {
		printWarning("characters without readings: %s", strings.Join(missing, " "))
		return nil
	}
	printSuccess("all table characters have readings")
	return nil
}

// missingReadings returns every character used by the deck tables that
// has no entry in readings, in table order.
func missingReadings(readings kana.Readings) []string {
	var missing []string
	seen := make(map[string]bool)

	check := func(char string) {
		if char == "" || seen[char] {
			return
		}
		seen[char] = true
		if _, ok := readings[char]; !ok {
			missing = append(missing, char)
		}
	}

	for _, table := range [][][]string{
		kana.HiraganaTable,
		kana.KatakanaTable,
		kana.HiraganaDakutenTable,
		kana.KatakanaDakutenTable,
	} {
		for _, row := range table {
			for _, char := range row {
				check(char)
			}
		}
	}
	check(kana.HiraganaN)
	check(kana.KatakanaN)

	return missing
}
