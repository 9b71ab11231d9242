package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"foodprint/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFromBytes(t *testing.T) {
	p := NewProcessor(0)
	assert.Equal(t, DefaultMaxSizeBytes, p.MaxSizeBytes())

	payload, err := p.FromBytes(samplePNG(t), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)
	// JPEG SOI
	assert.Equal(t, []byte{0xff, 0xd8}, payload.Data[:2])
	assert.Len(t, payload.Hash(), 64)
	assert.Contains(t, payload.DataURI(), "data:image/jpeg;base64,")
}

func TestFromBytesErrors(t *testing.T) {
	p := NewProcessor(64)

	_, err := p.FromBytes(nil, "image/png")
	assert.True(t, errors.Is(err, common.ErrImageRequired))

	_, err = p.FromBytes(bytes.Repeat([]byte{1}, 65), "image/png")
	assert.True(t, errors.Is(err, common.ErrInvalidImageSize))
}

func TestFromBytesUndecodable(t *testing.T) {
	p := NewProcessor(0)
	raw := []byte("definitely not an image")

	payload, err := p.FromBytes(raw, "image/heic")
	require.NoError(t, err)
	assert.Equal(t, raw, payload.Data)
	assert.Equal(t, "image/heic", payload.MIMEType)

	payload, err = p.FromBytes(raw, "")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", payload.MIMEType)

	payload, err = p.FromBytes(raw, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", payload.MIMEType)
}

func TestFromDataURI(t *testing.T) {
	p := NewProcessor(0)
	data := samplePNG(t)

	payload, err := p.FromDataURI("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)

	for _, bad := range []string{
		"",
		"http://example.com/a.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,raw",
		"data:image/png;base64,@@@",
	} {
		_, err := p.FromDataURI(bad)
		var ce *common.CustomError
		require.True(t, errors.As(err, &ce), bad)
		assert.Equal(t, common.ErrInvalidImageFormat.Code, ce.Code, bad)
	}

	payload, err = p.FromDataURI("data:image/heic;base64," + base64.StdEncoding.EncodeToString([]byte("heic bytes")))
	require.NoError(t, err)
	assert.Equal(t, "image/heic", payload.MIMEType)
	assert.Equal(t, []byte("heic bytes"), payload.Data)

	small := NewProcessor(16)
	_, err = small.FromDataURI("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
	assert.True(t, errors.Is(err, common.ErrInvalidImageSize))
}

func TestPayloadHashNil(t *testing.T) {
	var p *Payload
	assert.Equal(t, "", p.Hash())
}
