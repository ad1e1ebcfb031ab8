package access

import (
	"strings"

	"github.com/0xalexb/hjarta-conf/document"
)

// PathSeparator separates keys in a section path.
const PathSeparator = ":"

// Path walks root along a colon-separated list of keys and returns the object
// found at the end. An empty path returns root itself.
//
// Every step is a required object lookup, so a failure reports the key that
// broke the walk and the object it was looked up in:
//
//	Path(root, "database:connection") // root["database"]["connection"]
func Path(root *document.Object, path string) (*document.Object, error) {
	if path == "" {
		return root, nil
	}

	current := root

	for _, key := range strings.Split(path, PathSeparator) {
		next, err := GetObject(current, key)
		if err != nil {
			return nil, err
		}

		current = next
	}

	return current, nil
}
