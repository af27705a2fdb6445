// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.


// Package statsview provides a local HTTP server showing runtime statistics
// of the simulator process. Useful when measuring the performance of long
// running simulations.
//
// The server is only available when the program is built with the statsview
// build tag. Without the tag, Available() returns false and Launch() does
// nothing.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// The underlying functionality is provided by "github.com/go-echarts/statsview".
package statsview
