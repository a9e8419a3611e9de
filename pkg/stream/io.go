package stream

import (
	"errors"
	"io"
)

// MinRead is the smallest chunk ReadFrom asks the source reader to fill.
const MinRead = 512

var errInvalidRead = errors.New("sfstream: reader returned invalid count")

// ReadFrom appends data read from r at the write position until r returns
// io.EOF. It implements io.ReaderFrom. Bytes received before an error are
// kept.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		free := len(s.data) - s.wpos
		if free < MinRead {
			free = s.reserve(MinRead)
		}
		if free == 0 {
			return total, NewEncodeErrorAt("ReadFrom", s.wpos, 0, "stream cannot grow", ErrCapacityExceeded)
		}

		n, err := r.Read(s.data[s.wpos : s.wpos+free])
		if n < 0 {
			return total, errInvalidRead
		}
		s.commit(n)
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Fill performs a single Read of at most limit bytes from r into the write
// position, the way a connection hands over whatever has arrived.
//
// On success the returned count may be zero. When r fails with anything
// other than io.EOF nothing is committed and the write position is kept.
func (s *Stream) Fill(r io.Reader, limit int) (int, error) {
	if r == nil || limit <= 0 {
		return 0, ErrInvalidArgument
	}
	free := s.reserve(limit)
	if free == 0 {
		return 0, NewEncodeErrorAt("Fill", s.wpos, 0, "stream cannot grow", ErrCapacityExceeded)
	}

	dst := s.data[s.wpos : s.wpos+free]
	if s.wpos < s.length {
		// Stage reads that would overwrite committed bytes.
		scratch := Get(free)
		defer Put(scratch)
		if buf := scratch.BufferWithLength(free); buf != nil {
			dst = buf
		} else {
			dst = make([]byte, free)
		}
	}

	n, err := r.Read(dst)
	if n < 0 || n > len(dst) {
		return 0, errInvalidRead
	}
	if err != nil && err != io.EOF {
		return 0, err
	}
	copy(s.data[s.wpos:], dst[:n])
	s.commit(n)
	return n, err
}

// WriteTo writes every unread byte to w and advances the read position by
// the number of bytes written. It implements io.WriterTo.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	avail := s.Available()
	if avail == 0 {
		return 0, nil
	}
	n, err := w.Write(s.data[s.rpos:s.length])
	if n > avail {
		n = avail
	}
	s.rpos += n
	if err != nil {
		return int64(n), err
	}
	if n != avail {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// Send writes up to amount unread bytes to w; a negative amount (All)
// sends everything available. The read position advances only when w
// accepts the data without error.
//
// A nil writer or a zero amount is rejected with ErrInvalidArgument. An
// empty stream sends nothing and succeeds.
func (s *Stream) Send(w io.Writer, amount int) (int, error) {
	if w == nil || amount == 0 {
		return 0, ErrInvalidArgument
	}
	avail := s.Available()
	if amount < 0 || amount > avail {
		amount = avail
	}
	if amount == 0 {
		return 0, nil
	}

	n, err := w.Write(s.data[s.rpos : s.rpos+amount])
	if err != nil {
		return n, err
	}
	if n > amount {
		n = amount
	}
	s.rpos += n
	if n < amount {
		return n, io.ErrShortWrite
	}
	return n, nil
}
