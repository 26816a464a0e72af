// Package argv extracts the cold-start file list from launch arguments.
package argv

import (
	"strings"

	"github.com/superexif/sendto/internal/paths"
)

// ParseInitialFileList collects leading path arguments from args (which must
// not include the program name). Collection stops at the first argument
// beginning with "-"; that argument and everything after it belong to the
// host's option parser and are never inspected here.
func ParseInitialFileList(args []string) []string {
	var collected []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			break
		}
		collected = append(collected, a)
	}
	return paths.Normalize(collected)
}

// Rest returns the arguments remaining after the leading file-path prefix,
// starting at the first option argument.
func Rest(args []string) []string {
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			return args[i:]
		}
	}
	return nil
}
