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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/regsim/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// sampling interval of the charts in milliseconds.
const interval = 1000

// the server can only be started once for the lifetime of the program
var once sync.Once

// Launch the statistics server in a new goroutine. Subsequent calls do
// nothing except repeat the address of the server.
func Launch(output io.Writer) {
	once.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(interval))
		go func() {
			if err := statsview.New().Start(); err != nil {
				logger.Logf(logger.Allow, "statsview", "server stopped: %v", err)
			}
		}()
	})

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
