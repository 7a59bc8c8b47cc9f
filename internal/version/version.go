package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/learnquest/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/learnquest/internal/version.Commit=abc1234"
//
// Unset values are filled from VCS build info, then fall back to a dev stamp.
var (
	Version = ""
	Commit  = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func init() {
	if Version == "" || Commit == "" {
		fillFromBuildInfo()
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fillFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	rev, dirty, stamp := vcsSettings(info.Settings)

	if Commit == "" && rev != "" {
		Commit = shortRevision(rev, dirty)
	}
	if Version == "" && stamp != "" {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

func vcsSettings(settings []debug.BuildSetting) (rev string, dirty bool, stamp string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			stamp = s.Value
		}
	}
	return rev, dirty, stamp
}

// shortRevision trims a commit hash to seven characters and marks dirty trees.
func shortRevision(rev string, dirty bool) string {
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the version string including commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
