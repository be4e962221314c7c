package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// GitCommit is the short git commit hash from the environment
	// Will be set during build process via the linker
	// See also: https://pkg.go.dev/cmd/link
	GitCommit string

	// Version is the tag version from the environment
	// Will be set during build process via the linker
	// See also: https://pkg.go.dev/cmd/link
	Version string
)

// versionResponse is necessary for the JSON version response. It uses the
// variables that get set during the build.
type versionResponse struct {
	Commit  string `json:"commit"`
	Version string `json:"version"`
}

// versionCmd is the subcommand "alertmanager-silences-slack-reporter version" for cobra.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version",
	Long:  "Display version of alertmanager-silences-slack-reporter",
	RunE:  version,
}

// version returns the reporter version marshalled in JSON
func version(cmd *cobra.Command, args []string) error {
	ver, err := json.MarshalIndent(&versionResponse{
		Commit:  GitCommit,
		Version: Version,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(ver))
	return nil
}
