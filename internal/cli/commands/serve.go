package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datagaze-labs/datagaze/internal/cli/config"
	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var (
		port  int
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		Long: `Load both datasets and serve the education and air-quality
dashboards. With --watch, changes to the CSV files are picked up and
pushed to connected browsers.`,
		Example: `  # Serve on the default port
  datagaze serve

  # Custom port, reloading when the CSVs change
  datagaze serve --port 3000 --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)

			if !cmd.Flags().Changed("port") {
				port = cc.Cfg.UI.Port
			}
			if !cmd.Flags().Changed("watch") {
				watch = cc.Cfg.UI.Watch
			}

			store, err := dataset.NewStore(datasetOptions(cc.Cfg), cc.Logger)
			if err != nil {
				return fmt.Errorf("failed to load datasets: %w", err)
			}

			server := ui.NewServer(ui.Config{
				Store:  store,
				Port:   port,
				Watch:  watch,
				Logger: cc.Logger,
			})
			return server.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "Port to serve the dashboards on")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload datasets when the CSV files change")

	return cmd
}
