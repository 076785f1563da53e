package controls

import "strings"

const (
	toggledOnClassName  = "toggled-on"
	toggledOffClassName = "toggled-off"
)

// prefixed applies prefix to every space separated class name.
func prefixed(prefix string, classNames ...string) string {
	out := make([]string, 0, len(classNames))
	for _, name := range classNames {
		for _, field := range strings.Fields(name) {
			out = append(out, prefix+field)
		}
	}
	return strings.Join(out, " ")
}
