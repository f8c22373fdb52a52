package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"leadforge/config"
	domainerrors "leadforge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePNG("https://maps.google.com/?cid=123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePNG_GeoURI(t *testing.T) {
	service := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	qrBytes, err := service.GeneratePNG("geo:42.7284,-73.6918")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(qrBytes, []byte{0x89, 'P', 'N', 'G'}))
}

func TestQRCodeService_GeneratePNG_Empty(t *testing.T) {
	service := New(nil)

	_, err := service.GeneratePNG("  ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestQRCodeService_GeneratePNG_TooLong(t *testing.T) {
	service := NewQRCodeService(256, "H")

	_, err := service.GeneratePNG(strings.Repeat("x", 5000))
	assert.Error(t, err)
}
