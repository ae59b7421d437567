package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("ORD-AB12CD34|pay_789|A1+A2", 256)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGenerateQRCode_EmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 128)
	assert.Error(t, err)
}
