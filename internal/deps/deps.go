// Package deps reports the availability of the DCP-o-matic executables
// reelkit drives, so misconfigured environments surface before any
// operation is attempted.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external executable reelkit relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Toolset describes the three DCP-o-matic tools with their effective
// (possibly overridden) commands.
func Toolset(kdmBinary, dcpBinary, createBinary string) []Requirement {
	return []Requirement{
		{Name: "KDM tool", Command: kdmBinary, Description: "generates KDMs and DKDMs"},
		{Name: "DCP tool", Command: dcpBinary, Description: "builds DCPs from projects"},
		{Name: "Create tool", Command: createBinary, Description: "creates projects from content files"},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
