package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// PNGPixelSize reads the IHDR chunk of a PNG and returns its pixel
// width and height without decoding the image data.
func PNGPixelSize(data []byte) (int, int, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return 0, 0, fmt.Errorf("not a PNG file")
	}
	buf := bytes.NewReader(data[len(pngSignature):])

	for {
		var length uint32
		if err := binary.Read(buf, binary.BigEndian, &length); err != nil {
			break
		}

		chunkType := make([]byte, 4)
		if _, err := io.ReadFull(buf, chunkType); err != nil {
			break
		}

		if string(chunkType) == "IHDR" {
			var width, height uint32
			if err := binary.Read(buf, binary.BigEndian, &width); err != nil {
				return 0, 0, err
			}
			if err := binary.Read(buf, binary.BigEndian, &height); err != nil {
				return 0, 0, err
			}
			return int(width), int(height), nil
		}

		// skip chunk data + CRC
		if _, err := buf.Seek(int64(length)+4, io.SeekCurrent); err != nil {
			break
		}
	}

	return 0, 0, fmt.Errorf("IHDR chunk not found")
}

// PNGDPI extracts the DPI from a pHYs chunk, falling back to the PNG
// default of 72 when the chunk is absent or uses an unknown unit.
func PNGDPI(data []byte) (float64, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return 0, fmt.Errorf("not a PNG file")
	}
	buf := bytes.NewReader(data[len(pngSignature):])

	for {
		var length uint32
		if err := binary.Read(buf, binary.BigEndian, &length); err != nil {
			break
		}

		chunkType := make([]byte, 4)
		if _, err := io.ReadFull(buf, chunkType); err != nil {
			break
		}

		if string(chunkType) == "pHYs" {
			var pxPerUnitX, pxPerUnitY uint32
			var unit byte

			if err := binary.Read(buf, binary.BigEndian, &pxPerUnitX); err != nil {
				return 0, err
			}
			if err := binary.Read(buf, binary.BigEndian, &pxPerUnitY); err != nil {
				return 0, err
			}
			if err := binary.Read(buf, binary.BigEndian, &unit); err != nil {
				return 0, err
			}

			if unit == 1 {
				// pixels per metre
				return float64(pxPerUnitX) * 0.0254, nil
			}
			break // unit = 0 (unknown)
		}

		// skip chunk data + CRC
		if _, err := buf.Seek(int64(length)+4, io.SeekCurrent); err != nil {
			break
		}
	}

	return 72, nil
}
