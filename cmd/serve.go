package cmd

import (
	"fmt"

	"github.com/Biniyan/sociomap/internal/assistant"
	"github.com/Biniyan/sociomap/internal/dataset"
	"github.com/Biniyan/sociomap/internal/store"
	"github.com/Biniyan/sociomap/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive map web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ds, err := s.ReadDataset()
		if err != nil {
			return err
		}
		if len(ds.Provinces) == 0 {
			// Nothing loaded yet; serve the embedded seed directly.
			logVerbose("database empty, serving embedded dataset")
			ds, err = dataset.Seed()
			if err != nil {
				return err
			}
		}

		var responder assistant.Responder
		if client, err := assistant.NewClient(cfg.Assistant.Model, cfg.Assistant.MaxTokens, cfg.Assistant.RateLimit); err != nil {
			logVerbose("assistant disabled: %v", err)
			responder = assistant.Unavailable{}
		} else {
			responder = client
		}
		session := assistant.NewSession(responder)
		session.Logf = logVerbose

		srv := &web.Server{
			Dataset: ds,
			Session: session,
			Addr:    fmt.Sprintf("%s:%d", serveHost, servePort),
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
