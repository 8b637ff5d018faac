package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	printPDF bool
	printOut string
)

var printCmd = &cobra.Command{
	Use:   "print <order-id>",
	Short: "Render a stored quote as HTML or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.shutdown()

		uc, err := a.printUseCase()
		if err != nil {
			return err
		}

		var doc []byte
		if printPDF {
			doc, err = uc.RenderPDF(cmd.Context(), orderID)
		} else {
			doc, err = uc.RenderHTML(cmd.Context(), orderID)
		}
		if err != nil {
			return err
		}

		if printOut == "" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		if err := os.WriteFile(printOut, doc, 0o644); err != nil {
			return err
		}
		logger.Info("[print][cli] written", zap.Int("order_id", orderID), zap.String("path", printOut), zap.Int("bytes", len(doc)))
		return nil
	},
}

func init() {
	printCmd.Flags().BoolVar(&printPDF, "pdf", false, "print to PDF through headless Chromium")
	printCmd.Flags().StringVarP(&printOut, "out", "o", "", "output file (default: stdout)")
}
