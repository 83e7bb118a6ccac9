package main

import (
	"fmt"
	"os"

	"github.com/Nikhil-Kadapala/Resume-Job-Description-Ranking/internal/extract"
	"github.com/spf13/cobra"
)

var parseOut string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Extract plain text from a resume file",
	Long:  "parse extracts the text content of a pdf, docx, txt, or md file and prints it, or writes it to a file with -o.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := extract.File(args[0])
		if err != nil {
			return err
		}
		if parseOut != "" {
			return os.WriteFile(parseOut, []byte(text), 0o644)
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "output", "o", "", "write extracted text to this file instead of stdout")
}
