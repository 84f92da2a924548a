package document

import (
	"fmt"
	"strconv"

	"github.com/jc8810/rt5dctl/pkg/codeplug"
)

// RadioInfo is the document form of the basic info block.
type RadioInfo struct {
	ModelName string `json:"modelName,omitempty"`
	ModelID   int    `json:"modelId,omitempty"`
}

func radioFromBasicInfo(buf []byte) (*RadioInfo, error) {
	b, err := codeplug.DecodeBasicInfo(buf)
	if err != nil {
		return nil, err
	}
	id, err := strconv.Atoi(b.ModelID)
	if err != nil {
		return nil, fmt.Errorf("document: basic info model id %q: %w", b.ModelID, err)
	}
	return &RadioInfo{ModelName: b.ModelName, ModelID: id}, nil
}

func basicInfoFromRadio(r *RadioInfo) ([]byte, error) {
	if r == nil {
		return codeplug.EncodeBasicInfo(codeplug.BasicInfo{})
	}
	return codeplug.EncodeBasicInfo(codeplug.BasicInfo{
		ModelName: r.ModelName,
		ModelID:   fmt.Sprintf("%08d", r.ModelID),
	})
}
