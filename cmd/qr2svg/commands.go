package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qr2svg/internal/handlers"
	u "qr2svg/internal/utils"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qr2svg",
		Short:         "Render QR codes as SVG over HTTP or from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(newServeCmd(), newRenderCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single QR code to stdout or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]string{}
			// Unset flags stay absent so the validator applies its defaults.
			for _, name := range []string{"data", "color", "shape"} {
				if cmd.Flags().Changed(name) {
					params[name], _ = cmd.Flags().GetString(name)
				}
			}
			out, _ := cmd.Flags().GetString("out")

			cfg := u.LoadConfig()
			if bs, _ := cmd.Flags().GetFloat64("block-size"); bs > 0 {
				cfg.Render.BlockSize = bs
			}

			svc, err := handlers.NewQRService(cfg)
			if err != nil {
				return err
			}
			_, doc, err := svc.Generate(params)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(doc.SVG())
				return err
			}
			return os.WriteFile(out, doc.SVG(), 0o644)
		},
	}
	cmd.Flags().String("data", "", "text to encode (required)")
	cmd.Flags().String("color", "", "module color as a 6 digit hex code (default #000000)")
	cmd.Flags().String("shape", "", "module shape: square, circle or diamond (default square)")
	cmd.Flags().String("out", "", "output file (default stdout)")
	cmd.Flags().Float64("block-size", 0, "module size in output units (default from config)")
	return cmd
}
