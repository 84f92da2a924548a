// Package document implements the lossless binding (L7) between the raw
// session payloads the wire layer exchanges with the radio and Codeplug,
// the symbolic model a human edits as JSON.
package document

import (
	"github.com/jc8810/rt5dctl/pkg/codeplug"
	"github.com/jc8810/rt5dctl/pkg/session"
)

// Codeplug is the full symbolic configuration document. Every section is
// optional: a nil section means "not present in this document", which on
// load falls back to a default (empty) block, and on save is simply
// omitted.
type Codeplug struct {
	Radio          *RadioInfo    `json:"radio,omitempty"`
	Dtmf           *Dtmf         `json:"dtmf,omitempty"`
	EncryptionKeys []KeySlot     `json:"encryptionKeys,omitempty"`
	Contacts       []ContactSlot `json:"contacts,omitempty"`
	RxGroups       []RxGroupSlot `json:"rxGroups,omitempty"`
	Channels       []ChannelSlot `json:"channels,omitempty"`
	Vfo            *Vfo          `json:"vfo,omitempty"`
	Settings       *Settings     `json:"settings,omitempty"`
}

// clampSlot pulls a 1-based document slot number into [1, count], the
// same defensive clamping the radio's own factory tool applies to a
// document edited by hand.
func clampSlot(slot, count int) int {
	if slot < 1 {
		return 1
	}
	if slot > count {
		return count
	}
	return slot
}

// FromPayloads decodes every codeplug block out of raw session payloads
// and projects them into the symbolic document.
func FromPayloads(p *session.Payloads) (*Codeplug, error) {
	doc := &Codeplug{}

	radio, err := radioFromBasicInfo(p.BasicInfo)
	if err != nil {
		return nil, err
	}
	doc.Radio = radio

	dtmf, err := dtmfFromPayload(p.Dtmf)
	if err != nil {
		return nil, err
	}
	doc.Dtmf = dtmf

	keys, err := keysFromPayload(p.Keys)
	if err != nil {
		return nil, err
	}
	doc.EncryptionKeys = keys

	contactSlots, err := codeplug.UnpackContacts(p.ContactPackets())
	if err != nil {
		return nil, err
	}
	doc.Contacts = contactsFromSlots(contactSlots)

	rxGroupSlots, err := codeplug.UnpackRxGroups(p.RxGroupPackets())
	if err != nil {
		return nil, err
	}
	doc.RxGroups = rxGroupsFromSlots(rxGroupSlots)

	channelSlots, err := codeplug.UnpackChannels(p.ChannelPackets())
	if err != nil {
		return nil, err
	}
	doc.Channels = channelsFromSlots(channelSlots)

	vfo, err := vfoFromPayload(p.Vfo)
	if err != nil {
		return nil, err
	}
	doc.Vfo = vfo

	settings, err := settingsFromPayload(p.OptionalFunctions)
	if err != nil {
		return nil, err
	}
	doc.Settings = settings

	return doc, nil
}

// ToPayloads encodes the symbolic document back into raw session
// payloads, ready for a write session. Missing sections fall back to
// their default (empty) block.
func ToPayloads(doc *Codeplug) (*session.Payloads, error) {
	p := &session.Payloads{}

	basicInfo, err := basicInfoFromRadio(doc.Radio)
	if err != nil {
		return nil, err
	}
	p.BasicInfo = basicInfo

	dtmfBytes, err := dtmfToPayload(doc.Dtmf)
	if err != nil {
		return nil, err
	}
	p.Dtmf = dtmfBytes

	keysBytes, err := keysToPayload(doc.EncryptionKeys)
	if err != nil {
		return nil, err
	}
	p.Keys = keysBytes

	contactSlots, err := contactsToSlots(doc.Contacts)
	if err != nil {
		return nil, err
	}
	contactPackets, err := codeplug.PackContacts(contactSlots)
	if err != nil {
		return nil, err
	}
	p.Contacts = session.JoinPackets(contactPackets)

	rxGroupSlots, err := rxGroupsToSlots(doc.RxGroups)
	if err != nil {
		return nil, err
	}
	rxGroupPackets, err := codeplug.PackRxGroups(rxGroupSlots)
	if err != nil {
		return nil, err
	}
	p.RxGroups = session.JoinPackets(rxGroupPackets)

	channelSlots, err := channelsToSlots(doc.Channels)
	if err != nil {
		return nil, err
	}
	channelPackets, err := codeplug.PackChannels(channelSlots)
	if err != nil {
		return nil, err
	}
	p.Channels = session.JoinPackets(channelPackets)

	vfoBytes, err := vfoToPayload(doc.Vfo)
	if err != nil {
		return nil, err
	}
	p.Vfo = vfoBytes

	settingsBytes, err := settingsToPayload(doc.Settings)
	if err != nil {
		return nil, err
	}
	p.OptionalFunctions = settingsBytes

	return p, nil
}
