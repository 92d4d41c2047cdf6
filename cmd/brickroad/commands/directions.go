package commands

import (
	"fmt"

	"github.com/brickroad/brickroad/services/directions"
	"github.com/spf13/cobra"
)

func directionsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "directions",
		Short: "Print directions between two places and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			// logs go to stderr so stdout carries only the directions text
			app, err := newApplication(configs, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.directionsUC.GetDirections(cmd.Context(), from, to)
			fmt.Fprint(cmd.OutOrStdout(), directions.ResponseText(result, err))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start location")
	cmd.Flags().StringVar(&to, "to", "", "destination")
	return cmd
}
