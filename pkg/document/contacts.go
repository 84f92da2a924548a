package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// ContactSlot is one populated contact, 1-based.
type ContactSlot struct {
	Slot     int    `json:"slot"`
	CallType string `json:"callType"`
	CallID   uint32 `json:"callId"`
	Name     string `json:"name,omitempty"`
}

func contactsFromSlots(slots []*codeplug.Contact) []ContactSlot {
	var out []ContactSlot
	for i, c := range slots {
		if c == nil {
			continue
		}
		out = append(out, ContactSlot{
			Slot:     i + 1,
			CallType: callTypeToString(c.CallType),
			CallID:   c.CallID,
			Name:     c.Name,
		})
	}
	return out
}

func contactsToSlots(doc []ContactSlot) ([]*codeplug.Contact, error) {
	slots := make([]*codeplug.Contact, codeplug.ContactCount)
	for _, e := range doc {
		idx := clampSlot(e.Slot, codeplug.ContactCount) - 1
		slots[idx] = &codeplug.Contact{
			CallType: callTypeFromString(e.CallType),
			CallID:   e.CallID,
			Name:     e.Name,
		}
	}
	return slots, nil
}
