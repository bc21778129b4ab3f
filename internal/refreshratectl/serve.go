package refreshratectl

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/refreshrate/selector/internal/debugserver"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8090", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only debug HTTP server over the configured catalog/policy",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector()
	if err != nil {
		return err
	}

	srv := debugserver.NewServer(sel)
	fmt.Printf("listening on %s\n", serveAddr)
	return http.ListenAndServe(serveAddr, srv.Handler())
}
