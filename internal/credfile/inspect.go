// Where: internal/credfile/inspect.go
// What: Detailed credential file report for diagnostics.
// Why: Help a human see why a downloaded file is not usable yet.
package credfile

import (
	"encoding/json"
	"os"
	"sort"

	"golang.org/x/oauth2/google"
)

// Report is the inspect-level view of a credential file. It embeds the
// check outcome and adds diagnostic detail. Field tags are JSON because the
// presentation layer renders the report through sigs.k8s.io/yaml.
type Report struct {
	Path            string   `json:"path"`
	Status          string   `json:"status"`
	Reason          string   `json:"reason,omitempty"`
	Keys            []string `json:"keys,omitempty"`
	ClientIDPreview string   `json:"clientIdPreview,omitempty"`
	HasEnvelope     bool     `json:"hasEnvelope,omitempty"`
	GoogleParsable  bool     `json:"googleParsable,omitempty"`
}

// Envelope keys used by console downloads that wrap the client config.
var envelopeKeys = []string{"installed", "web"}

// Inspect runs Check and augments the result with the sorted top-level key
// list, a redacted client-id preview, and two hints about console-style
// wrapped downloads: whether an envelope key is present and whether the
// canonical Google parser accepts the file. Both hints are computed from
// the bytes already read; no network is involved.
func Inspect(path string) Report {
	res := Check(path)
	report := Report{
		Path:   path,
		Status: res.Status.String(),
		Reason: res.Reason,
	}
	if res.Status == StatusUnreadable && res.Err != nil {
		report.Reason = res.Err.Error()
	}
	if res.Status == StatusAbsent || res.Status == StatusUnreadable {
		return report
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		// The file vanished or broke between the two reads; report the
		// check outcome as-is.
		return report
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err == nil {
		for key := range obj {
			report.Keys = append(report.Keys, key)
		}
		sort.Strings(report.Keys)

		var clientID string
		if raw, ok := obj[KeyClientID]; ok {
			if err := json.Unmarshal(raw, &clientID); err == nil {
				report.ClientIDPreview = redact(clientID)
			}
		}
		for _, key := range envelopeKeys {
			if _, ok := obj[key]; ok {
				report.HasEnvelope = true
				break
			}
		}
	}

	if _, err := google.ConfigFromJSON(payload); err == nil {
		report.GoogleParsable = true
	}
	return report
}

// redact keeps enough of an identifier to recognize it without leaking it.
func redact(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return "********"
	}
	return value[:4] + "…" + value[len(value)-4:]
}
