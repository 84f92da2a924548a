package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// Dtmf is the document form of the DTMF settings block.
type Dtmf struct {
	CurrentID  string   `json:"currentId,omitempty"`
	PttID      string   `json:"pttId,omitempty"`
	DurationMs int      `json:"durationMs,omitempty"`
	IntervalMs int      `json:"intervalMs,omitempty"`
	CodeGroups []string `json:"codeGroups,omitempty"`
}

// defaultDtmf is substituted for a missing dtmf section on write; 100ms
// is the only duration/interval value that is both a plausible factory
// default and a member of the five documented duration values.
var defaultDtmf = codeplug.Dtmf{DurationMs: 100, IntervalMs: 100}

func dtmfFromPayload(buf []byte) (*Dtmf, error) {
	d, err := codeplug.DecodeDtmf(buf)
	if err != nil {
		return nil, err
	}
	return &Dtmf{
		CurrentID:  d.CurrentID,
		PttID:      pttIDToString(d.PttID),
		DurationMs: d.DurationMs,
		IntervalMs: d.IntervalMs,
		CodeGroups: d.CodeGroups,
	}, nil
}

func dtmfToPayload(doc *Dtmf) ([]byte, error) {
	if doc == nil {
		return codeplug.EncodeDtmf(defaultDtmf)
	}
	return codeplug.EncodeDtmf(codeplug.Dtmf{
		CurrentID:  doc.CurrentID,
		PttID:      pttIDFromString(doc.PttID),
		DurationMs: valueOrDefault(doc.DurationMs, defaultDtmf.DurationMs),
		IntervalMs: valueOrDefault(doc.IntervalMs, defaultDtmf.IntervalMs),
		CodeGroups: doc.CodeGroups,
	})
}

// valueOrDefault substitutes def for a zero-valued omitted int field,
// the counterpart to the omitempty tag dropping it on save.
func valueOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
