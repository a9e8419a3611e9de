package stream

import (
	"errors"
	"fmt"

	"github.com/blockberries/sfstream/internal/wire"
)

// WriteUvarint writes v as an unsigned LEB128 varint.
func (s *Stream) WriteUvarint(v uint64) error {
	p, err := s.fixed("WriteUvarint", wire.UvarintSize(v))
	if err != nil {
		return err
	}
	wire.PutUvarint(p, v)
	return nil
}

// WriteVarint writes v as a zigzag-encoded varint.
func (s *Stream) WriteVarint(v int64) error {
	p, err := s.fixed("WriteVarint", wire.SvarintSize(v))
	if err != nil {
		return err
	}
	wire.PutSvarint(p, v)
	return nil
}

// peekUvarint decodes a varint at the read position without consuming it.
func (s *Stream) peekUvarint(op string) (uint64, int, error) {
	v, n, err := wire.DecodeUvarint(s.data[s.rpos:s.length])
	switch {
	case err == nil:
		return v, n, nil
	case errors.Is(err, wire.ErrVarintTruncated):
		return 0, 0, NewDecodeErrorAt(op, s.rpos, "varint truncated", ErrInsufficientData)
	default:
		return 0, 0, NewDecodeErrorAt(op, s.rpos, "malformed varint", err)
	}
}

// ReadUvarint reads an unsigned varint. On failure the read position does
// not move.
func (s *Stream) ReadUvarint() (uint64, error) {
	v, n, err := s.peekUvarint("ReadUvarint")
	if err != nil {
		return 0, err
	}
	s.rpos += n
	return v, nil
}

// ReadVarint reads a zigzag-encoded signed varint.
func (s *Stream) ReadVarint() (int64, error) {
	v, n, err := wire.DecodeSvarint(s.data[s.rpos:s.length])
	if err != nil {
		if errors.Is(err, wire.ErrVarintTruncated) {
			return 0, NewDecodeErrorAt("ReadVarint", s.rpos, "varint truncated", ErrInsufficientData)
		}
		return 0, NewDecodeErrorAt("ReadVarint", s.rpos, "malformed varint", err)
	}
	s.rpos += n
	return v, nil
}

// WriteFrame writes p prefixed by its length as a varint.
// The frame is written entirely or not at all.
func (s *Stream) WriteFrame(p []byte) error {
	if limit := s.opts.Limits.MaxFrameSize; limit > 0 && len(p) > limit {
		return NewEncodeErrorAt("WriteFrame", s.wpos, 0,
			fmt.Sprintf("frame of %d bytes, limit %d", len(p), limit), ErrFrameTooLarge)
	}
	prefix := wire.UvarintSize(uint64(len(p)))
	out, err := s.fixed("WriteFrame", prefix+len(p))
	if err != nil {
		return err
	}
	wire.PutUvarint(out, uint64(len(p)))
	copy(out[prefix:], p)
	return nil
}

// ReadFrame reads a frame written by WriteFrame and returns a copy of its
// payload.
//
// If the frame has not been received completely the read position is kept
// and the error satisfies IsInsufficientData, so a streaming caller can
// append more bytes and retry.
func (s *Stream) ReadFrame() ([]byte, error) {
	size, n, err := s.peekUvarint("ReadFrame")
	if err != nil {
		return nil, err
	}
	if limit := s.opts.Limits.MaxFrameSize; limit > 0 && size > uint64(limit) {
		return nil, NewDecodeErrorAt("ReadFrame", s.rpos,
			fmt.Sprintf("frame of %d bytes, limit %d", size, limit), ErrFrameTooLarge)
	}
	if size > uint64(s.Available()-n) {
		return nil, NewDecodeErrorAt("ReadFrame", s.rpos,
			fmt.Sprintf("frame of %d bytes, %d available", size, s.Available()-n), ErrInsufficientData)
	}

	start := s.rpos + n
	payload := make([]byte, int(size))
	copy(payload, s.data[start:start+int(size)])
	s.rpos = start + int(size)
	return payload, nil
}
