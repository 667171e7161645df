package main

import (
	"github.com/Gthulhu/priosim/app"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var configName, configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation REST API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restApp, err := app.NewRestApp(configName, configDir)
			if err != nil {
				return err
			}
			// Run blocks until SIGINT or SIGTERM, then stops the lifecycle hooks
			restApp.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&configName, "config-name", "sim_config", "Config file name without extension")
	cmd.Flags().StringVar(&configDir, "config-dir", "", "Extra directory searched for the config file")
	return cmd
}
