package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would run past the end of the buffer.
var ErrOutOfBounds = errors.New("read out of bounds")

// Checks that n bytes can be read from b at cursor
func check(b []byte, cursor, n int) error {
	if cursor < 0 || n < 0 || cursor+n > len(b) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfBounds, n, cursor, len(b))
	}
	return nil
}

// Reads a little-endian uint16 at *cursor and advances it by 2
func ReadUint16(b []byte, cursor *int) (uint16, error) {
	if err := check(b, *cursor, 2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(b[*cursor:])
	*cursor += 2
	return v, nil
}

// Reads a little-endian uint32 at *cursor and advances it by 4
func ReadUint32(b []byte, cursor *int) (uint32, error) {
	if err := check(b, *cursor, 4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b[*cursor:])
	*cursor += 4
	return v, nil
}

// Reads a little-endian int32 at *cursor and advances it by 4
func ReadInt32(b []byte, cursor *int) (int32, error) {
	v, err := ReadUint32(b, cursor)
	return int32(v), err
}

// Returns the next n bytes at *cursor (without copying) and advances it by n
func ReadBytes(b []byte, cursor *int, n int) ([]byte, error) {
	if err := check(b, *cursor, n); err != nil {
		return nil, err
	}
	s := b[*cursor : *cursor+n]
	*cursor += n
	return s, nil
}

// Returns v as 2 little-endian bytes
func Uint16Bytes(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// Returns v as 4 little-endian bytes
func Uint32Bytes(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// Returns v as 4 little-endian bytes (two's complement)
func Int32Bytes(v int32) []byte {
	return Uint32Bytes(uint32(v))
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
