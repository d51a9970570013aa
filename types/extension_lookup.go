package types

import (
	"strings"
)

// ExtensionLookup is a set of file extensions used to decide which archive
// entries are treated as records. Extensions may be multi-part (".json.gz").
type ExtensionLookup map[string]struct{}

func NewExtensionLookup(extensions []string) ExtensionLookup {
	res := make(ExtensionLookup, len(extensions))
	for _, e := range extensions {
		res[strings.ToLower(e)] = struct{}{}
	}
	return res
}

// IsValid returns true if the name ends with one of the configured
// extensions, or if no extensions are configured
func (l ExtensionLookup) IsValid(name string) bool {
	if len(l) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for e := range l {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

func (l ExtensionLookup) String() string {
	var res []string
	for e := range l {
		res = append(res, e)
	}
	return strings.Join(res, ",")
}
