package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// KeySlot is one populated encryption key slot, 1-based.
type KeySlot struct {
	Slot      int    `json:"slot"`
	Algorithm string `json:"algorithm"`
	HexKey    string `json:"hexKey"`
}

func keysFromPayload(buf []byte) ([]KeySlot, error) {
	var out []KeySlot
	for i := 0; i < codeplug.KeySlotCount; i++ {
		rec := buf[i*codeplug.KeySize : (i+1)*codeplug.KeySize]
		k, err := codeplug.DecodeKey(rec)
		if err != nil {
			return nil, err
		}
		if k == nil {
			continue
		}
		out = append(out, KeySlot{Slot: i + 1, Algorithm: algorithmToString(k.Algorithm), HexKey: k.HexKey})
	}
	return out, nil
}

func keysToPayload(slots []KeySlot) ([]byte, error) {
	records := make([]*codeplug.Key, codeplug.KeySlotCount)
	for _, s := range slots {
		idx := clampSlot(s.Slot, codeplug.KeySlotCount) - 1
		records[idx] = &codeplug.Key{Algorithm: algorithmFromString(s.Algorithm), HexKey: s.HexKey}
	}

	buf := make([]byte, 0, codeplug.KeySlotCount*codeplug.KeySize)
	for _, k := range records {
		rec, err := codeplug.EncodeKey(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, rec...)
	}
	return buf, nil
}
