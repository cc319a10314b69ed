package resolver

import (
	"sort"
	"strconv"
	"strings"
)

// NormalizeVersion maps a release tag to a major.minor.0 documentation
// directory name. The patch component is always zeroed because hosted doc
// archives are published per minor release. Returns false when the tag has
// no leading numeric component.
func NormalizeVersion(tag string) (string, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	parts := strings.SplitN(s, ".", 3)

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return "", false
	}

	minor := 0
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n >= 0 {
			minor = n
		}
	}

	return strconv.Itoa(major) + "." + strconv.Itoa(minor) + ".0", true
}

// SortVersionsDesc orders normalized versions newest first, comparing
// components numerically so 10.0.0 sorts above 9.0.0.
func SortVersionsDesc(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		a := versionComponents(versions[i])
		b := versionComponents(versions[j])
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
}

func versionComponents(v string) [3]int {
	var out [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		n, _ := strconv.Atoi(part)
		out[i] = n
	}
	return out
}
