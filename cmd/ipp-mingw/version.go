package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/terassyi/ippmingw/internal/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of ipp-mingw itself",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := VersionInfo{
			Version:   version,
			Commit:    commit,
			BuildDate: buildDate,
			GoVersion: runtime.Version(),
			Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}

		switch versionFormat {
		case outputJSON:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		case outputYAML:
			out, err := yaml.Marshal(info)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		case outputText:
			cmd.Printf("ipp-mingw version %s\n", info.Version)
			cmd.Printf("  commit:    %s\n", info.Commit)
			cmd.Printf("  built:     %s\n", info.BuildDate)
			cmd.Printf("  go:        %s\n", info.GoVersion)
			cmd.Printf("  platform:  %s\n", info.Platform)
			return nil
		default:
			return errors.NewFlagError("output", versionFormat, outputText, outputJSON, outputYAML)
		}
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", outputText, "Output format (text, json, yaml)")
}
