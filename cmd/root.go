package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bartail",
	Short: "Bar chord logging and decaying tail generation for MIDI streams",
	Long:  `Bar chord logging and decaying tail generation for MIDI streams`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// consoleLog is the CLI host's log sink.
type consoleLog struct{}

func (consoleLog) Println(line string) {
	fmt.Println(line)
}
