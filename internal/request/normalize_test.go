package request_test

import (
	"path/filepath"
	"testing"

	"reelkit/internal/dcp"
	"reelkit/internal/request"
)

func TestProjectCreateNormalizeDerivesName(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"/media/in/Big Feature.mp4", "Big Feature"},
		{"/media/in/trailer.mov", "trailer"},
		{"/media/in/.hidden", ".hidden"},
	}
	for _, tc := range cases {
		req := request.ProjectCreate{Content: []string{tc.content}, Output: "/out"}
		req.Normalize()
		if req.Name != tc.want {
			t.Errorf("name for %q = %q, want %q", tc.content, req.Name, tc.want)
		}
	}
}

func TestProjectCreateNormalizeKeepsExplicitName(t *testing.T) {
	req := request.ProjectCreate{Content: []string{"/media/in/reel.mp4"}, Output: "/out", Name: "Feature Night"}
	req.Normalize()
	if req.Name != "Feature Night" {
		t.Fatalf("explicit name overwritten: %q", req.Name)
	}
}

func TestProjectCreateNormalizeDerivesDCPOutput(t *testing.T) {
	req := request.ProjectCreate{
		Content: []string{"/media/in/reel.mp4"},
		Output:  "/out/project",
		Build:   true,
	}
	req.Normalize()
	want := filepath.Join("/out/project", "dcp")
	if req.DCPOutput != want {
		t.Fatalf("dcp output = %q, want %q", req.DCPOutput, want)
	}

	// No default without the build flag.
	req = request.ProjectCreate{Content: []string{"/media/in/reel.mp4"}, Output: "/out/project"}
	req.Normalize()
	if req.DCPOutput != "" {
		t.Fatalf("unexpected dcp output %q without build", req.DCPOutput)
	}
}

func TestProjectCreateNormalizeDropsBlankContent(t *testing.T) {
	req := request.ProjectCreate{Content: []string{" /a.mp4 ", "", "  "}, Output: "/out"}
	req.Normalize()
	if len(req.Content) != 1 || req.Content[0] != "/a.mp4" {
		t.Fatalf("unexpected content after normalize: %v", req.Content)
	}
}

func TestKDMNormalizeAppliesDefaultType(t *testing.T) {
	req := request.KDM{Source: request.DCPSource("/dcp")}
	req.Normalize()
	if req.Type != dcp.ModifiedTransitional1 {
		t.Fatalf("default type = %q", req.Type)
	}

	req = request.KDM{Source: request.DCPSource("/dcp"), Type: dcp.DCIAny}
	req.Normalize()
	if req.Type != dcp.DCIAny {
		t.Fatalf("explicit type overwritten: %q", req.Type)
	}
}
