package codeplug

import "fmt"

// Packers fan large logical arrays (channels, contacts, rx groups) out
// across the fixed-size packets the session driver exchanges with the
// radio one at a time. Each packet is pre-filled with 0xFF before any
// populated record is written, so an all-empty array packs to an
// all-0xFF packet stream.

const (
	channelsPerPacket = 16
	channelPackets    = ChannelCount / channelsPerPacket // 64
	channelPacketSize = channelsPerPacket * ChannelSize   // 1024

	contactsPerPacket = 50
	contactPackets    = ContactCount / contactsPerPacket // 80
	contactPacketSize = contactsPerPacket * ContactSize  // 800

	rxGroupsPerPacket = 8
	rxGroupPackets    = RxGroupCount / rxGroupsPerPacket // 4
	rxGroupPacketSize = rxGroupsPerPacket * RxGroupSize  // 1024
)

// PackChannels lays out exactly ChannelCount slots (nil entries are
// empty) across channelPackets packets of channelPacketSize bytes each.
// Slot k lives in packet k/16 at byte offset (k%16)*64.
func PackChannels(slots []*Channel) ([][]byte, error) {
	if len(slots) != ChannelCount {
		return nil, fmt.Errorf("codeplug: expected %d channel slots, got %d", ChannelCount, len(slots))
	}
	packets := make([][]byte, channelPackets)
	for p := range packets {
		packets[p] = make([]byte, channelPacketSize)
		fillBytes(packets[p], 0xFF)
	}
	for k, ch := range slots {
		rec, err := EncodeChannel(ch)
		if err != nil {
			return nil, fmt.Errorf("codeplug: channel slot %d: %w", k+1, err)
		}
		p, off := k/channelsPerPacket, (k%channelsPerPacket)*ChannelSize
		copy(packets[p][off:off+ChannelSize], rec)
	}
	return packets, nil
}

// UnpackChannels reverses PackChannels, returning ChannelCount slots (nil
// for empty ones).
func UnpackChannels(packets [][]byte) ([]*Channel, error) {
	if len(packets) != channelPackets {
		return nil, fmt.Errorf("codeplug: expected %d channel packets, got %d", channelPackets, len(packets))
	}
	slots := make([]*Channel, ChannelCount)
	for k := range slots {
		p, off := k/channelsPerPacket, (k%channelsPerPacket)*ChannelSize
		if len(packets[p]) != channelPacketSize {
			return nil, fmt.Errorf("codeplug: channel packet %d has %d bytes, want %d", p, len(packets[p]), channelPacketSize)
		}
		ch, err := DecodeChannel(packets[p][off : off+ChannelSize])
		if err != nil {
			return nil, fmt.Errorf("codeplug: channel slot %d: %w", k+1, err)
		}
		slots[k] = ch
	}
	return slots, nil
}

// PackContacts lays out exactly ContactCount slots across contactPackets
// packets of contactPacketSize bytes each.
func PackContacts(slots []*Contact) ([][]byte, error) {
	if len(slots) != ContactCount {
		return nil, fmt.Errorf("codeplug: expected %d contact slots, got %d", ContactCount, len(slots))
	}
	packets := make([][]byte, contactPackets)
	for p := range packets {
		packets[p] = make([]byte, contactPacketSize)
		fillBytes(packets[p], 0xFF)
	}
	for k, c := range slots {
		rec, err := EncodeContact(c)
		if err != nil {
			return nil, fmt.Errorf("codeplug: contact slot %d: %w", k+1, err)
		}
		p, off := k/contactsPerPacket, (k%contactsPerPacket)*ContactSize
		copy(packets[p][off:off+ContactSize], rec)
	}
	return packets, nil
}

// UnpackContacts reverses PackContacts.
func UnpackContacts(packets [][]byte) ([]*Contact, error) {
	if len(packets) != contactPackets {
		return nil, fmt.Errorf("codeplug: expected %d contact packets, got %d", contactPackets, len(packets))
	}
	slots := make([]*Contact, ContactCount)
	for k := range slots {
		p, off := k/contactsPerPacket, (k%contactsPerPacket)*ContactSize
		if len(packets[p]) != contactPacketSize {
			return nil, fmt.Errorf("codeplug: contact packet %d has %d bytes, want %d", p, len(packets[p]), contactPacketSize)
		}
		c, err := DecodeContact(packets[p][off : off+ContactSize])
		if err != nil {
			return nil, fmt.Errorf("codeplug: contact slot %d: %w", k+1, err)
		}
		slots[k] = c
	}
	return slots, nil
}

// PackRxGroups lays out exactly RxGroupCount slots across rxGroupPackets
// packets of rxGroupPacketSize bytes each.
func PackRxGroups(slots []*RxGroup) ([][]byte, error) {
	if len(slots) != RxGroupCount {
		return nil, fmt.Errorf("codeplug: expected %d rx group slots, got %d", RxGroupCount, len(slots))
	}
	packets := make([][]byte, rxGroupPackets)
	for p := range packets {
		packets[p] = make([]byte, rxGroupPacketSize)
		fillBytes(packets[p], 0xFF)
	}
	for k, g := range slots {
		rec, err := EncodeRxGroup(g)
		if err != nil {
			return nil, fmt.Errorf("codeplug: rx group slot %d: %w", k+1, err)
		}
		p, off := k/rxGroupsPerPacket, (k%rxGroupsPerPacket)*RxGroupSize
		copy(packets[p][off:off+RxGroupSize], rec)
	}
	return packets, nil
}

// UnpackRxGroups reverses PackRxGroups.
func UnpackRxGroups(packets [][]byte) ([]*RxGroup, error) {
	if len(packets) != rxGroupPackets {
		return nil, fmt.Errorf("codeplug: expected %d rx group packets, got %d", rxGroupPackets, len(packets))
	}
	slots := make([]*RxGroup, RxGroupCount)
	for k := range slots {
		p, off := k/rxGroupsPerPacket, (k%rxGroupsPerPacket)*RxGroupSize
		if len(packets[p]) != rxGroupPacketSize {
			return nil, fmt.Errorf("codeplug: rx group packet %d has %d bytes, want %d", p, len(packets[p]), rxGroupPacketSize)
		}
		g, err := DecodeRxGroup(packets[p][off : off+RxGroupSize])
		if err != nil {
			return nil, fmt.Errorf("codeplug: rx group slot %d: %w", k+1, err)
		}
		slots[k] = g
	}
	return slots, nil
}
