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

package axi

import (
	"fmt"
	"strings"
)

// Response is the response code sent with BRESP and RRESP.
type Response uint8

// List of response codes. The peripheral only ever responds with OKAY.
const (
	OKAY   Response = 0b00
	EXOKAY Response = 0b01
	SLVERR Response = 0b10
	DECERR Response = 0b11
)

func (r Response) String() string {
	switch r {
	case OKAY:
		return "OKAY"
	case EXOKAY:
		return "EXOKAY"
	case SLVERR:
		return "SLVERR"
	case DECERR:
		return "DECERR"
	}
	return "unknown"
}

// Pins are the signals between the requester and the peripheral.
type Pins struct {
	// driven by the requester
	AWVALID bool
	AWADDR  uint32
	WVALID  bool
	WDATA   uint32
	BREADY  bool
	ARVALID bool
	ARADDR  uint32
	RREADY  bool

	// driven by the peripheral
	AWREADY bool
	WREADY  bool
	BVALID  bool
	BRESP   Response
	ARREADY bool
	RVALID  bool
	RDATA   uint32
	RRESP   Response
}

func (p Pins) String() string {
	s := strings.Builder{}

	b := func(label string, v bool) {
		if v {
			s.WriteString(label)
		} else {
			s.WriteString(strings.ToLower(label))
		}
		s.WriteString(" ")
	}

	b("AWVALID", p.AWVALID)
	b("AWREADY", p.AWREADY)
	b("WVALID", p.WVALID)
	b("WREADY", p.WREADY)
	b("BVALID", p.BVALID)
	b("BREADY", p.BREADY)
	s.WriteString("| ")
	b("ARVALID", p.ARVALID)
	b("ARREADY", p.ARREADY)
	b("RVALID", p.RVALID)
	b("RREADY", p.RREADY)
	if p.RVALID {
		s.WriteString(fmt.Sprintf("RDATA=%08x ", p.RDATA))
	}

	return strings.TrimSpace(s.String())
}
