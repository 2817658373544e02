package deps

// Reader extracts declared dependencies from one ecosystem's manifest.
//
// Readers guard themselves on file existence and never return an error to
// the caller: a missing manifest yields an empty Result and a malformed one
// yields an empty Result with Err set.
type Reader interface {
	// Type returns the manifest filename this reader consumes (e.g., "go.mod").
	Type() string
	// Read looks for the manifest in root and parses it.
	Read(root string) Result
}

// Collect runs every reader against root in order and concatenates their
// records. Failed readers contribute nothing; onFailure (optional) is called
// with each failed Result so callers can log it. Records are not
// de-duplicated across ecosystems.
func Collect(root string, readers []Reader, onFailure func(Result)) []Dependency {
	out := []Dependency{}
	for _, r := range readers {
		res := r.Read(root)
		if res.Failed() {
			if onFailure != nil {
				onFailure(res)
			}
			continue
		}
		out = append(out, res.Dependencies...)
	}
	return out
}

// Names returns the dependency names in record order.
func Names(ds []Dependency) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}
