package core

import (
	"path"
	"path/filepath"
	"strings"

	"precommit-hooks/internal/types"
)

// ClassifyPath decides whether p lives inside a unit (an Ansible role).
//
// The path is cleaned to slash form and split into segments. The first
// segment that equals one of unitDirs and is followed by at least one more
// segment starts a unit; the root is everything up to and including that
// following segment (the role name). "roles/foo/tasks/main.yml" is a member
// of "roles/foo". Substring matches such as "myroles" or "role.yml" are not
// units, and neither is a file directly inside the unit directory.
func ClassifyPath(p string, unitDirs []string) types.UnitPath {
	cleaned := path.Clean(filepath.ToSlash(p))
	segments := strings.Split(cleaned, "/")
	for i := 0; i+1 < len(segments); i++ {
		if !isUnitDir(segments[i], unitDirs) {
			continue
		}
		if i+2 == len(segments) && hasExtension(segments[i+1]) {
			break
		}
		return types.UnitMember(strings.Join(segments[:i+2], "/"), p)
	}
	return types.StandaloneFile(p)
}

func isUnitDir(segment string, unitDirs []string) bool {
	for _, dir := range unitDirs {
		if segment == dir {
			return true
		}
	}
	return false
}

func hasExtension(segment string) bool {
	return path.Ext(segment) != ""
}
