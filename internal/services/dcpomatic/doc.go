// Package dcpomatic wraps the three DCP-o-matic command-line tools:
// dcpomatic2_kdm_cli for KDM and DKDM generation, dcpomatic2_cli for
// building DCPs from projects, and dcpomatic2_create for creating
// projects from content files.
//
// Each client runs the same pipeline: normalize and validate the request,
// build the argument vector, execute it through the injected runner, and
// interpret the exit status into a typed Result or a tagged error. A
// validation failure never reaches a subprocess. CreateAndBuild chains
// project creation and the DCP build, never invoking the build tool when
// creation fails.
package dcpomatic
