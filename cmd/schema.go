package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/twshades/twshades/export"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the json format",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			Anonymous:      true,
			DoNotReference: true,
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&export.Document{})))
	},
}
