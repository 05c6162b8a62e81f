package cmd

import (
	"github.com/spf13/cobra"
)

var zonesTab int

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the drop zones mounted for a tab",
	Long: `Mount the zones of a tab the way the editor does when it renders it
and list them with what each accepts. The ids are the ZONE part of
'rclayout drop --from/--to'.`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.Flags().IntVarP(&zonesTab, "tab", "t", 0, "tab to mount")
}

type zoneJSON struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	Path   string   `json:"path"`
	Accept []string `json:"accept"`
}

func runZones(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.Open(zonesTab); err != nil {
		return err
	}

	zones := a.Zones.Zones()
	if !jsonOut {
		printLine(cmd, a.Renderer.RenderZones(zones))
		return nil
	}

	out := make([]zoneJSON, 0, len(zones))
	for _, z := range zones {
		out = append(out, zoneJSON{ID: z.ID, Kind: string(z.Kind), Path: z.Path.String(), Accept: z.Accept.Tags()})
	}
	return printJSON(cmd.OutOrStdout(), out)
}
