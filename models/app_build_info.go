package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata linked into the go-bank binary
// (-ldflags "-X main.buildVersion=..."). Empty values print as N/A.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string { return a.date }
func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the output of the version command, one field per line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.version), orNotAvailable(a.date), orNotAvailable(a.commit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
