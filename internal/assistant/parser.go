// Package assistant implements the interactive command loop: parsing user
// input, dispatching commands against the book, and rendering replies. The
// core never prints; everything user-facing is produced here.
package assistant

import "strings"

// ParseInput splits a raw line into a lowercased command name and its
// arguments. Blank input yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) == 1 {
		return strings.ToLower(fields[0]), nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
