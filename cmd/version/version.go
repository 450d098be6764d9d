package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/beatoz/fxmath-go/tables"
)

const (
	FMT_VERSTR      = "v%v.%v.%v-%x@%s"
	MASK_MAJOR_VER  = uint64(0xFF00000000000000)
	MASK_MINOR_VER  = uint64(0x00FF000000000000)
	MASK_PATCH_VER  = uint64(0x0000FFFF00000000)
	MASK_COMMIT_VER = uint64(0x00000000FFFFFFFF)
)

var (
	// it is changed using ldflags.
	//  ex) -ldflags "... -X 'github.com/beatoz/fxmath-go/cmd/version.GitCommit=$(XXX)'"
	Version   string
	GitCommit string

	majorVer  uint64 = 0
	minorVer  uint64 = 1
	patchVer  uint64 = 0
	commitVer uint64 = 0
)

var semverRE = regexp.MustCompile(`v(\d+)\.(\d+)\.(\d+)`)

func init() {
	if err := parseVersions(Version, GitCommit); err != nil {
		panic(err)
	}
}

// parseVersions reads the ldflags values. An empty version keeps the
// built-in one.
func parseVersions(versionStr, gitCommit string) error {
	if versionStr == "" {
		return nil
	}

	m := semverRE.FindStringSubmatch(versionStr)
	if m == nil {
		return fmt.Errorf("invalid version string: %v", versionStr)
	}
	var commit uint64
	if gitCommit != "" {
		var err error
		if commit, err = strconv.ParseUint(gitCommit, 16, 64); err != nil {
			return fmt.Errorf("invalid git commit %v: %w", gitCommit, err)
		}
	}

	majorVer, _ = strconv.ParseUint(m[1], 10, 64)
	minorVer, _ = strconv.ParseUint(m[2], 10, 64)
	patchVer, _ = strconv.ParseUint(m[3], 10, 64)
	commitVer = commit
	return nil
}

// String is the version followed by the first bytes of the I32F32 table
// fingerprint, so a version string also pins the tables a binary uses.
func String() string {
	return fmt.Sprintf(FMT_VERSTR, majorVer, minorVer, patchVer, commitVer, TablesID())
}

// TablesID returns the first 8 hex digits of the I32F32 table fingerprint.
func TablesID() string {
	return tables.Q32().Fingerprint()[:8]
}

// Packed returns the version as one uint64 laid out by the MASK_* constants.
func Packed() uint64 {
	return (majorVer<<56)&MASK_MAJOR_VER |
		(minorVer<<48)&MASK_MINOR_VER |
		(patchVer<<32)&MASK_PATCH_VER |
		commitVer&MASK_COMMIT_VER
}

func Major() uint64 {
	return majorVer
}

func Minor() uint64 {
	return minorVer
}

func Patch() uint64 {
	return patchVer
}

func CommitHash() uint64 {
	return commitVer
}
