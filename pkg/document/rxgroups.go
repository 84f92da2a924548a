package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// RxGroupSlot is one populated rx group, 1-based.
type RxGroupSlot struct {
	Slot    int      `json:"slot"`
	Name    string   `json:"name,omitempty"`
	Members []uint32 `json:"members,omitempty"`
}

func rxGroupsFromSlots(slots []*codeplug.RxGroup) []RxGroupSlot {
	var out []RxGroupSlot
	for i, g := range slots {
		if g == nil {
			continue
		}
		out = append(out, RxGroupSlot{Slot: i + 1, Name: g.Name, Members: g.Members})
	}
	return out
}

func rxGroupsToSlots(doc []RxGroupSlot) ([]*codeplug.RxGroup, error) {
	slots := make([]*codeplug.RxGroup, codeplug.RxGroupCount)
	for _, e := range doc {
		idx := clampSlot(e.Slot, codeplug.RxGroupCount) - 1
		slots[idx] = &codeplug.RxGroup{Name: e.Name, Members: e.Members}
	}
	return slots, nil
}
