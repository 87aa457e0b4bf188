package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"golang.org/x/image/webp"
)

// ImageCodec converts photo bytes from the canonical stored format (WebP)
// into a requested output format. Decode handles the canonical format only;
// adding an output format means adding an encode branch.
type ImageCodec struct {
	jpegQuality int
}

func NewImageCodec() *ImageCodec {
	return &ImageCodec{jpegQuality: 100}
}

func (c *ImageCodec) Decode(data []byte) (image.Image, error) {
	return webp.Decode(bytes.NewReader(data))
}

func (c *ImageCodec) Encode(img image.Image, format string, byteCountHint int) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, byteCountHint))
	switch format {
	case model.FormatPng:
		if err := png.Encode(buf, img); err != nil {
			return nil, err
		}
	case model.FormatJpeg:
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: c.jpegQuality}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported target format: %s", format)
	}
	return buf.Bytes(), nil
}

// Convert returns the bytes re-encoded into the requested format. The native
// and canonical formats pass through without a decode.
func (c *ImageCodec) Convert(data []byte, format string) ([]byte, *erro.CustomError) {
	switch format {
	case model.FormatNative, model.FormatWebp:
		return data, nil
	case model.FormatPng, model.FormatJpeg:
		img, err := c.Decode(data)
		if err != nil {
			return nil, erro.EncodingError(erro.ConversionFailed)
		}
		encoded, err := c.Encode(img, format, len(data))
		if err != nil {
			return nil, erro.EncodingError(erro.ConversionFailed)
		}
		return encoded, nil
	default:
		return nil, erro.EncodingError(erro.ConversionFailed)
	}
}
