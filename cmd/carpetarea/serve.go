package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/carpetarea-go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the annotation endpoint over HTTP",
	Long: `Serve accepts POST /process-excel with a multipart form whose "file" field
holds the register, or with a base64 body when --input-mode=base64, and
answers with the annotated workbook as output.xlsx.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().
			Str("input_mode", string(cfg.Processing.InputMode)).
			Str("rounding", cfg.Processing.Rounding).
			Msg("starting server")
		return server.New(cfg).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("input-mode", "multipart", "upload contract: multipart or base64")
	serveCmd.Flags().Int64("max-upload-bytes", 32<<20, "maximum request body size")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("processing.input_mode", serveCmd.Flags().Lookup("input-mode"))
	viper.BindPFlag("server.max_upload_bytes", serveCmd.Flags().Lookup("max-upload-bytes"))

	rootCmd.AddCommand(serveCmd)
}
