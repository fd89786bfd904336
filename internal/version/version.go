package version

import (
	"fmt"
	"time"
)

// Build metadata, injected at link time via -ldflags. Everything stays
// empty on plain local builds and String() degrades gracefully.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// The build ID counts whole days since the project epoch.
var buildEpoch = time.Date(
	2026, time.March, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo is the structured form served on /version.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	CI         string
	Calculated bool
	Error      string
}

// CalculateBuildID derives the numeric build ID from BuildDate.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("no build date was injected")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("malformed build date %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s predates the project epoch", BuildDate)
	}

	// Hours instead of calendar math: both ends are UTC midnights,
	// so the division is exact and DST never enters the picture.
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info collects the build metadata. Never fails; a bad or missing
// build date is reported through the Error field instead.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String renders a one-line build description for startup logs.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}

	return fmt.Sprintf(
		"Build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		orElse(info.Commit, "unknown"),
		orElse(info.Branch, "unknown"),
		orElse(info.CI, "local"),
	)
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
