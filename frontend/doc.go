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

// Package frontend drives the bus of a peripheral one transaction at a time.
// It turns register reads and writes into the sequence of pin changes and
// ticks needed to complete each phase of the handshake.
//
// A write is an address phase, a data phase and a response phase. A read is
// an address phase and a data phase. Each phase waits for the peripheral to
// be ready. The AckDelay field adds ticks between the peripheral presenting a
// response and the front-end acknowledging it. This models a slow requester.
//
// The peripheral never reports an error. If a phase does not complete within
// the number of ticks given by the hardware.timeout preference then the
// TransactionTimeout error is returned. The peripheral will be left
// mid-transaction in that case and should be reset.
package frontend
