// This file is part of Regsim.
//
// Regsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regsim.  If not, see <https://www.gnu.org/licenses/>.

package test

import "fmt"

// RingWriter is an implementation of io.Writer that keeps only the most
// recent size bytes written to it.
type RingWriter struct {
	size int

	// backing array is twice the size of the ring. data is a window onto
	// buf and is moved back to the start of buf when it reaches the end
	buf  []byte
	data []byte
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: RingWriter size must be positive (%d)", size)
	}
	r := &RingWriter{
		size: size,
		buf:  make([]byte, size*2),
	}
	r.data = r.buf[:0]
	return r, nil
}

func (r *RingWriter) String() string {
	return string(r.data)
}

// Reset empties the buffer.
func (r *RingWriter) Reset() {
	r.data = r.buf[:0]
}

// Write implements the io.Writer interface. Writing never fails and always
// reports that all of p was written.
func (r *RingWriter) Write(p []byte) (int, error) {
	if len(p) >= r.size {
		r.data = r.buf[:copy(r.buf, p[len(p)-r.size:])]
		return len(p), nil
	}

	if excess := len(r.data) + len(p) - r.size; excess > 0 {
		r.data = r.data[excess:]
	}
	if cap(r.data)-len(r.data) < len(p) {
		r.data = r.buf[:copy(r.buf, r.data)]
	}
	r.data = append(r.data, p...)

	return len(p), nil
}
