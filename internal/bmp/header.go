package bmp

import (
	"bytes"
	"fmt"

	"github.com/anas-shakeel/bmpcodec/internal/utils"
)

// Wraps a utils read error as ErrTruncated, naming the structure being read
func truncated(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTruncated, what, err)
}

// DecodeFileHeader reads the 14-byte file header at the start of data.
// The magic is not checked here; see Magic.
func DecodeFileHeader(data []byte) (BitmapFileHeader, error) {
	var h BitmapFileHeader
	var err error
	i := 0

	magic, err := utils.ReadBytes(data, &i, 2)
	if err != nil {
		return h, truncated("file header", err)
	}
	copy(h.Type[:], magic)

	if h.Size, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("file header", err)
	}
	if h.Reserved1, err = utils.ReadUint16(data, &i); err != nil {
		return h, truncated("file header", err)
	}
	if h.Reserved2, err = utils.ReadUint16(data, &i); err != nil {
		return h, truncated("file header", err)
	}
	if h.OffBits, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("file header", err)
	}

	return h, nil
}

// Returns the two-character file type tag ("BM" for bitmaps)
func (h BitmapFileHeader) Magic() string {
	return string(h.Type[:])
}

// Returns the header as its 14 on-disk bytes
func (h BitmapFileHeader) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(FileHeaderSize)
	buf.Write(h.Type[:])
	buf.Write(utils.Uint32Bytes(h.Size))
	buf.Write(utils.Uint16Bytes(h.Reserved1))
	buf.Write(utils.Uint16Bytes(h.Reserved2))
	buf.Write(utils.Uint32Bytes(h.OffBits))
	return buf.Bytes()
}

func (h BitmapFileHeader) String() string {
	return fmt.Sprintf("Type: %s, Size: %d, res1: %d, res2: %d, offset: %d",
		h.Magic(), h.Size, h.Reserved1, h.Reserved2, h.OffBits)
}

// DecodeInfoHeader reads the DIB header starting at offset. The classic
// 40-byte layout is decoded; trailing bytes of larger variants land in Extra.
func DecodeInfoHeader(data []byte, offset int) (BitmapInfoHeader, error) {
	var h BitmapInfoHeader
	var err error
	i := offset

	if h.Size, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.Size < InfoHeaderSize {
		return h, fmt.Errorf("%w: header size %d", ErrUnsupportedHeader, h.Size)
	}

	if h.Width, err = utils.ReadInt32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.Height, err = utils.ReadInt32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.Planes, err = utils.ReadUint16(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	bitCount, err := utils.ReadUint16(data, &i)
	if err != nil {
		return h, truncated("info header", err)
	}
	h.BitCount = BitDepth(bitCount)
	if h.Compression, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.SizeImage, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.XPixelsPerM, err = utils.ReadInt32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.YPixelsPerM, err = utils.ReadInt32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.ColorsUsed, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("info header", err)
	}
	if h.ColorsImportant, err = utils.ReadUint32(data, &i); err != nil {
		return h, truncated("info header", err)
	}

	if h.Size > InfoHeaderSize {
		extra, err := utils.ReadBytes(data, &i, int(h.Size-InfoHeaderSize))
		if err != nil {
			return h, truncated("info header", err)
		}
		h.Extra = bytes.Clone(extra)
	}

	return h, nil
}

// Returns the number of palette entries. A zero ColorsUsed on an indexed
// depth means the full 2^BitCount table.
func (h BitmapInfoHeader) Colors() uint32 {
	if h.ColorsUsed == 0 && h.BitCount.Indexed() {
		return uint32(h.BitCount.MaxColors())
	}
	return h.ColorsUsed
}

// Reports whether rows are stored top row first
func (h BitmapInfoHeader) TopDown() bool {
	return h.Height < 0
}

// Returns the height without the orientation sign
func (h BitmapInfoHeader) AbsHeight() int {
	if h.Height < 0 {
		return -int(h.Height)
	}
	return int(h.Height)
}

// Returns the header as its on-disk bytes (40 + len(Extra))
func (h BitmapInfoHeader) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(InfoHeaderSize + len(h.Extra))
	buf.Write(utils.Uint32Bytes(h.Size))
	buf.Write(utils.Int32Bytes(h.Width))
	buf.Write(utils.Int32Bytes(h.Height))
	buf.Write(utils.Uint16Bytes(h.Planes))
	buf.Write(utils.Uint16Bytes(uint16(h.BitCount)))
	buf.Write(utils.Uint32Bytes(h.Compression))
	buf.Write(utils.Uint32Bytes(h.SizeImage))
	buf.Write(utils.Int32Bytes(h.XPixelsPerM))
	buf.Write(utils.Int32Bytes(h.YPixelsPerM))
	buf.Write(utils.Uint32Bytes(h.ColorsUsed))
	buf.Write(utils.Uint32Bytes(h.ColorsImportant))
	buf.Write(h.Extra)
	return buf.Bytes()
}
