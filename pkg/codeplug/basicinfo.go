package codeplug

import (
	"fmt"
	"strings"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

// BasicInfoSize is the fixed byte length of the basic info block.
const BasicInfoSize = 64

// BasicInfo is the decoded form of the 64-byte basic info block: a model
// name and model ID, surrounded entirely by reserved 0xFF bytes.
type BasicInfo struct {
	ModelName string // <= 12 bytes GB2312
	ModelID   string // exactly 8 ASCII digits
}

const (
	biOffName   = 8
	biNameLen   = 12
	biOffID     = 20
	biIDLen     = 8
)

// EncodeBasicInfo renders b as a BasicInfoSize-byte block.
func EncodeBasicInfo(b BasicInfo) ([]byte, error) {
	buf := make([]byte, BasicInfoSize)
	fillBytes(buf, 0xFF)

	name, err := codec.EncodeGB2312(b.ModelName, biNameLen)
	if err != nil {
		return nil, codecErr("basicInfo", "modelName", err)
	}
	copy(buf[biOffName:biOffName+biNameLen], name)

	if len(b.ModelID) > biIDLen {
		return nil, codecErr("basicInfo", "modelId", fmt.Errorf("%q is longer than %d digits", b.ModelID, biIDLen))
	}
	for _, r := range b.ModelID {
		if r < '0' || r > '9' {
			return nil, codecErr("basicInfo", "modelId", fmt.Errorf("%q is not all digits", b.ModelID))
		}
	}
	padded := strings.Repeat("0", biIDLen-len(b.ModelID)) + b.ModelID
	copy(buf[biOffID:biOffID+biIDLen], []byte(padded))

	return buf, nil
}

// DecodeBasicInfo parses a BasicInfoSize-byte block.
func DecodeBasicInfo(buf []byte) (BasicInfo, error) {
	if len(buf) != BasicInfoSize {
		return BasicInfo{}, codecErr("basicInfo", "", errWrongSize(BasicInfoSize, len(buf)))
	}

	name, err := codec.DecodeGB2312(buf[biOffName : biOffName+biNameLen])
	if err != nil {
		return BasicInfo{}, codecErr("basicInfo", "modelName", err)
	}

	return BasicInfo{
		ModelName: name,
		ModelID:   string(buf[biOffID : biOffID+biIDLen]),
	}, nil
}
