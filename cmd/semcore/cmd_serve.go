package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/knowgraph/semcore/internal/server"
)

var (
	serveFile          string
	serveAddr          string
	serveTypePredicate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Ingest a file (optional) and serve ask/materialize/validate over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(serveFile, serveTypePredicate)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		metrics := server.NewMetrics(reg)
		srv := server.New(s, log, server.WithMetrics(metrics))

		mux := http.NewServeMux()
		mux.Handle("/", srv)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

		log.Info("serving", zap.String("addr", serveAddr))
		return http.ListenAndServe(serveAddr, mux)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFile, "file", "", "N-Triples-style file to ingest before serving")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	serveCmd.Flags().StringVar(&serveTypePredicate, "type-predicate", "", "IRI used as the rdf:type-equivalent predicate for the fast IsClass path")
	rootCmd.AddCommand(serveCmd)
}
