package codeplug

import "github.com/jc8810/rt5dctl/pkg/codec"

// ContactSize is the fixed byte length of one contact record.
const ContactSize = 16

// ContactCount is the number of contact slots the radio holds.
const ContactCount = 4000

// CallType discriminates the three DMR call addressing modes.
type CallType int

const (
	CallGroup CallType = iota
	CallPrivate
	CallAllCall
)

// Contact is the decoded form of one 16-byte contact record.
type Contact struct {
	CallType CallType
	CallID   uint32
	Name     string
}

const (
	ctOffType = 0
	ctOffZero = 1
	ctOffID   = 2
	ctOffName = 5
	ctNameLen = 10
)

// IsEmptyContact reports whether buf is the empty-slot sentinel: byte 0,
// 1, or 5 is 0xFF.
func IsEmptyContact(buf []byte) bool {
	return buf[ctOffType] == 0xFF || buf[ctOffZero] == 0xFF || buf[ctOffName] == 0xFF
}

// EncodeContact renders c as a ContactSize-byte record. A nil c produces
// the empty-slot sentinel.
func EncodeContact(c *Contact) ([]byte, error) {
	buf := make([]byte, ContactSize)
	fillBytes(buf, 0xFF)
	if c == nil {
		return buf, nil
	}

	buf[ctOffType] = byte(c.CallType)
	buf[ctOffZero] = 0x00
	copy(buf[ctOffID:ctOffID+3], codec.EncodeDMRID(c.CallID))

	name, err := codec.EncodeGB2312(c.Name, ctNameLen)
	if err != nil {
		return nil, codecErr("contact", "name", err)
	}
	copy(buf[ctOffName:ctOffName+ctNameLen], name)

	return buf, nil
}

// DecodeContact parses a ContactSize-byte record. It returns (nil, nil)
// for the empty-slot sentinel.
func DecodeContact(buf []byte) (*Contact, error) {
	if len(buf) != ContactSize {
		return nil, codecErr("contact", "", errWrongSize(ContactSize, len(buf)))
	}
	if IsEmptyContact(buf) {
		return nil, nil
	}

	id, err := codec.DecodeDMRID(buf[ctOffID : ctOffID+3])
	if err != nil {
		return nil, codecErr("contact", "callId", err)
	}
	name, err := codec.DecodeGB2312(buf[ctOffName : ctOffName+ctNameLen])
	if err != nil {
		return nil, codecErr("contact", "name", err)
	}

	return &Contact{
		CallType: CallType(buf[ctOffType] & 0x0F),
		CallID:   id,
		Name:     name,
	}, nil
}
