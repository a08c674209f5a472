package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and build details",
		Run: func(c *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			fmt.Fprintln(c.OutOrStdout(), versionString(info))
		},
	}
}

// versionString renders "kapaipai-tracker <version>" followed by the Go
// toolchain and the VCS revision when the binary carries them.
func versionString(info *debug.BuildInfo) string {
	s := "kapaipai-tracker " + Version
	if info == nil {
		return s
	}

	var rev, dirty string
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			rev = kv.Value
		case "vcs.modified":
			if kv.Value == "true" {
				dirty = "+dirty"
			}
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}

	s += " (" + info.GoVersion
	if rev != "" {
		s += ", " + rev + dirty
	}
	return s + ")"
}
