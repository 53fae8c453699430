package dcp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue marks enum lookups that fall outside the declared set.
var ErrUnknownValue = errors.New("unknown enum value")

// KDMType selects the KDM output format understood by projection servers.
type KDMType string

const (
	ModifiedTransitional1 KDMType = "modified-transitional-1"
	DCIAny                KDMType = "dci-any"
	DCISpecific           KDMType = "dci-specific"
)

var kdmTypes = map[KDMType]string{
	ModifiedTransitional1: "modified-transitional-1",
	DCIAny:                "dci-any",
	DCISpecific:           "dci-specific",
}

// ParseKDMType converts a textual identifier into a KDMType.
func ParseKDMType(value string) (KDMType, error) {
	candidate := KDMType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := kdmTypes[candidate]; !ok {
		return "", fmt.Errorf("%w: kdm type %q", ErrUnknownValue, value)
	}
	return candidate, nil
}

// Token returns the literal the KDM tool expects for this format.
func (t KDMType) Token() string { return kdmTypes[t] }

// Valid reports whether the value is a member of the declared set.
func (t KDMType) Valid() bool {
	_, ok := kdmTypes[t]
	return ok
}

// ContentType categorizes DCP content for composition naming.
type ContentType string

const (
	Feature       ContentType = "feature"
	Short         ContentType = "short"
	Trailer       ContentType = "trailer"
	Test          ContentType = "test"
	Transitional  ContentType = "transitional"
	Rating        ContentType = "rating"
	Teaser        ContentType = "teaser"
	Policy        ContentType = "policy"
	PSA           ContentType = "psa"
	Advertisement ContentType = "advertisement"
)

var contentTypes = map[ContentType]string{
	Feature:       "FTR",
	Short:         "SHR",
	Trailer:       "TLR",
	Test:          "TST",
	Transitional:  "XSN",
	Rating:        "RTG",
	Teaser:        "TSR",
	Policy:        "POL",
	PSA:           "PSA",
	Advertisement: "ADV",
}

// ParseContentType converts a textual identifier into a ContentType.
func ParseContentType(value string) (ContentType, error) {
	candidate := ContentType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := contentTypes[candidate]; !ok {
		return "", fmt.Errorf("%w: content type %q", ErrUnknownValue, value)
	}
	return candidate, nil
}

// Token returns the content-type literal used by the project creation tool.
func (t ContentType) Token() string { return contentTypes[t] }

func (t ContentType) Valid() bool {
	_, ok := contentTypes[t]
	return ok
}

// ContainerRatio is the aspect ratio of the projected image frame.
type ContainerRatio string

const (
	Ratio119 ContainerRatio = "119"
	Ratio133 ContainerRatio = "133"
	Ratio137 ContainerRatio = "137"
	Ratio138 ContainerRatio = "138"
	Ratio166 ContainerRatio = "166"
	Ratio178 ContainerRatio = "178"
	Flat     ContainerRatio = "185"
	Scope    ContainerRatio = "239"
)

var containerRatios = map[ContainerRatio]string{
	Ratio119: "119",
	Ratio133: "133",
	Ratio137: "137",
	Ratio138: "138",
	Ratio166: "166",
	Ratio178: "178",
	Flat:     "185",
	Scope:    "239",
}

var containerRatioAliases = map[string]ContainerRatio{
	"flat":  Flat,
	"scope": Scope,
}

// ParseContainerRatio converts a textual identifier into a ContainerRatio.
// Both numeric forms ("185") and the common names ("flat", "scope") parse.
func ParseContainerRatio(value string) (ContainerRatio, error) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if ratio, ok := containerRatioAliases[cleaned]; ok {
		return ratio, nil
	}
	candidate := ContainerRatio(cleaned)
	if _, ok := containerRatios[candidate]; !ok {
		return "", fmt.Errorf("%w: container ratio %q", ErrUnknownValue, value)
	}
	return candidate, nil
}

// Token returns the ratio literal used by the project creation tool.
func (r ContainerRatio) Token() string { return containerRatios[r] }

func (r ContainerRatio) Valid() bool {
	_, ok := containerRatios[r]
	return ok
}

// Standard selects the DCP packaging standard.
type Standard string

const (
	SMPTE   Standard = "smpte"
	Interop Standard = "interop"
)

var standards = map[Standard]string{
	SMPTE:   "smpte",
	Interop: "interop",
}

// ParseStandard converts a textual identifier into a Standard.
func ParseStandard(value string) (Standard, error) {
	candidate := Standard(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := standards[candidate]; !ok {
		return "", fmt.Errorf("%w: standard %q", ErrUnknownValue, value)
	}
	return candidate, nil
}

// Token returns the standard literal used by the project creation tool.
func (s Standard) Token() string { return standards[s] }

func (s Standard) Valid() bool {
	_, ok := standards[s]
	return ok
}

// Resolution is the target DCP resolution. The project creation tool
// defaults to 2K and takes a bare --fourk flag for 4K, so only FourK
// contributes an argument.
type Resolution string

const (
	TwoK  Resolution = "2k"
	FourK Resolution = "4k"
)

var resolutions = map[Resolution]struct{}{
	TwoK:  {},
	FourK: {},
}

// ParseResolution converts a textual identifier into a Resolution.
func ParseResolution(value string) (Resolution, error) {
	candidate := Resolution(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := resolutions[candidate]; !ok {
		return "", fmt.Errorf("%w: resolution %q", ErrUnknownValue, value)
	}
	return candidate, nil
}

func (r Resolution) Valid() bool {
	_, ok := resolutions[r]
	return ok
}
