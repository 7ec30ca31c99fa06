package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"subfetch/internal/services"
)

// Requirement defines an external dependency subfetch relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external binaries needed for the given download
// tool configuration.
func Requirements(downloadTool string) []Requirement {
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     downloadTool,
			Description: "Downloads subtitle tracks from YouTube",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// EnsureTool verifies the download binary is installed, returning a
// MissingTool error suitable for direct CLI reporting when it is not.
func EnsureTool(downloadTool string) error {
	for _, status := range CheckBinaries(Requirements(downloadTool)) {
		if status.Optional || status.Available {
			continue
		}
		return services.Wrap(services.ErrMissingTool, "deps", "check", fmt.Sprintf("%s (install it and retry)", status.Detail), nil)
	}
	return nil
}
