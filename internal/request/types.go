package request

import (
	"time"

	"reelkit/internal/dcp"
)

// defaultKDMType is the format the tool itself defaults to and the one
// most projection servers accept.
const defaultKDMType = dcp.ModifiedTransitional1

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceDCP
	sourceDKDM
)

// KDMSource identifies what a KDM is issued from: an encrypted DCP
// directory or a DKDM file. The two are mutually exclusive, so the source
// is an opaque tagged value rather than a pair of optional paths; the zero
// value carries no source and fails validation.
type KDMSource struct {
	kind sourceKind
	path string
}

// DCPSource builds a source referring to an encrypted DCP directory.
func DCPSource(path string) KDMSource {
	return KDMSource{kind: sourceDCP, path: path}
}

// DKDMSource builds a source referring to a DKDM file.
func DKDMSource(path string) KDMSource {
	return KDMSource{kind: sourceDKDM, path: path}
}

// IsDCP reports whether the source is an encrypted DCP directory.
func (s KDMSource) IsDCP() bool { return s.kind == sourceDCP }

// IsDKDM reports whether the source is a DKDM file.
func (s KDMSource) IsDKDM() bool { return s.kind == sourceDKDM }

// Path returns the source path, empty for the zero value.
func (s KDMSource) Path() string { return s.path }

// KDM describes a KDM generation run against dcpomatic2_kdm_cli.
// CinemaName and ScreenName only apply to the DCP-source variant.
type KDM struct {
	Source      KDMSource
	Certificate string
	Output      string
	ValidFrom   time.Time
	ValidTo     time.Time
	Type        dcp.KDMType
	CinemaName  string
	ScreenName  string
}

// DKDMCreate describes creating a DKDM from a project, targeting the
// holder's own certificate so KDMs can later be re-issued without the
// original project keys.
type DKDMCreate struct {
	Project     string
	Certificate string
	Output      string
	ValidFrom   time.Time
	ValidTo     time.Time
	Type        dcp.KDMType
}

// DCPBuild describes building a DCP from an existing project with
// dcpomatic2_cli.
type DCPBuild struct {
	Project string
	Output  string
	Encrypt bool
}

// ProjectCreate describes creating a project from content files with
// dcpomatic2_create. Content order determines track assembly order.
// DCPOutput is only meaningful when Build is set.
type ProjectCreate struct {
	Content        []string
	Output         string
	Name           string
	ContentType    dcp.ContentType
	ContainerRatio dcp.ContainerRatio
	Standard       dcp.Standard
	Resolution     dcp.Resolution
	Encrypt        bool
	Build          bool
	DCPOutput      string
}
