package content

import (
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"github.com/echolabx/docsite/internal/util/sets"
)

// Volatile frontmatter keys excluded from the fingerprint.
var fingerprintExcluded = sets.New(mdfp.FingerprintField, "lastmod", "lastUpdated")

// Fingerprint computes the content fingerprint of a document from its parsed
// frontmatter and body. Keys are serialized in sorted order.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if !fingerprintExcluded.Has(k) {
			forHash[k] = v
		}
	}
	fm := ""
	if len(forHash) > 0 {
		data, err := yaml.Marshal(forHash)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(data), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}
