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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/regsim/test"
)

func TestSuccessAndFailure(t *testing.T) {
	var err error

	test.ExpectEquality(t, test.ExpectSuccess(t, true), true)
	test.ExpectEquality(t, test.ExpectSuccess(t, err), true)
	test.ExpectEquality(t, test.ExpectSuccess(t, nil), true)

	test.ExpectEquality(t, test.ExpectFailure(t, false), true)
	test.ExpectEquality(t, test.ExpectFailure(t, errors.New("stalled")), true)

	test.DemandSuccess(t, err, "demand")
	test.DemandFailure(t, errors.New("stalled"), "demand")
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, uint32(0xdeadbeef), 0xdeadbeef)
	v := uint32(0xffffffff)
	v++
	test.ExpectEquality(t, v, 0)
	test.ExpectInequality(t, uint32(0x10000001), 0x10000000)
	test.DemandEquality(t, len("status"), 6)
}

func TestApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 249.9, 250.0, 0.001)
	test.ExpectApproximate(t, -99.0, -100.0, 0.02)
}

func TestImplements(t *testing.T) {
	var w io.Writer
	test.ExpectImplements(t, &test.CompareWriter{}, w)

	r, err := test.NewRingWriter(1)
	test.DemandSuccess(t, err)
	test.ExpectImplements(t, r, w)
}
