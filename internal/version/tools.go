package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version output like "git version 2.43.0" or "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

const probeTimeout = 5 * time.Second

// Tool describes an external program a generated project relies on.
type Tool struct {
	// Name is the executable name looked up in PATH.
	Name string

	// Purpose is shown next to the version.
	Purpose string

	// Minimum is the oldest supported version; empty means any.
	Minimum string
}

// Toolchain returns the tools used by generated projects.
func Toolchain() []Tool {
	return []Tool{
		{Name: "git", Purpose: "repository initialization"},
		{Name: "cargo", Purpose: "building the extension", Minimum: "1.80"},
	}
}

// ToolInfo is the detected state of a Tool.
type ToolInfo struct {
	Tool Tool

	// Version is the detected version.
	Version string `json:"version"`

	// Path is the path to the binary.
	Path string `json:"path"`

	// Found indicates the binary is in PATH.
	Found bool `json:"found"`

	// Compatible indicates the version satisfies Tool.Minimum.
	Compatible bool `json:"compatible"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty"`
}

// DetectTool finds tool in PATH and asks it for its version.
func DetectTool(tool Tool) ToolInfo {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return ToolInfo{Tool: tool, Message: tool.Name + " not found in PATH"}
	}

	info := ToolInfo{Tool: tool, Path: path, Found: true}

	out, err := probe(path)
	if err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}

	info.Version, err = extractVersion(out)
	if err != nil {
		info.Message = err.Error()
		return info
	}

	info.Compatible, info.Message = checkMinimum(info.Version, tool.Minimum)
	return info
}

// DetectToolchain detects every tool of Toolchain.
func DetectToolchain() []ToolInfo {
	tools := Toolchain()
	infos := make([]ToolInfo, len(tools))
	for i, t := range tools {
		infos[i] = DetectTool(t)
	}
	return infos
}

func probe(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// extractVersion extracts the first version number from tool output.
func extractVersion(output string) (string, error) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("could not parse version from output: %q", output)
	}
	return match, nil
}

// checkMinimum compares a detected version against minimum.
func checkMinimum(detected, minimum string) (bool, string) {
	if minimum == "" {
		return true, "compatible"
	}

	v, err := semver.NewVersion(detected)
	if err != nil {
		return false, "incompatible - invalid version format"
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, "incompatible - invalid minimum " + minimum
	}
	if !constraint.Check(v) {
		return false, fmt.Sprintf("incompatible - need %s or newer", minimum)
	}
	return true, "compatible"
}

// String returns a human-readable tool info string.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-6s not found (%s)", t.Tool.Name, t.Tool.Purpose)
	}

	status := "compatible"
	if !t.Compatible {
		status = t.Message
	}

	return fmt.Sprintf("  %-6s %s (%s) %s", t.Tool.Name, t.Version, status, t.Path)
}
