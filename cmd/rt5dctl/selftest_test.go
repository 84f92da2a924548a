package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfTestsAllPass(t *testing.T) {
	for _, c := range selfTests() {
		t.Run(c.name, func(t *testing.T) {
			assert.NoError(t, c.run())
		})
	}
}
