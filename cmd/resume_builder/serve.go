package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that renders previews and exports PDFs for resume records posted as JSON.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.New(serverConfig(cmd.Flags().Changed("port")))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// serverConfig builds the server configuration; an explicit --port wins over
// the configured one
func serverConfig(portFlagSet bool) server.Config {
	port := settings.Port
	if portFlagSet || port == 0 {
		port = servePort
	}
	return server.Config{
		Port:     port,
		Language: i18n.Language(settings.Language),
		MountID:  settings.MountID,
		Export:   exportOptions(settings),
	}
}
