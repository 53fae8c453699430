// Package dcp defines the closed value sets the DCP-o-matic tools accept:
// KDM formats, DCP content types, container ratios, packaging standards,
// and resolutions.
//
// Each enumeration carries a stable identifier used throughout reelkit and
// the literal token the external tool expects on its command line. Values
// only enter the system through the Parse functions, so argument builders
// never see a token that is not in the declared set.
package dcp
