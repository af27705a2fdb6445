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

// Package hardware is the base package for the simulated machine. It and
// its sub-packages contain everything required for a headless simulation.
//
// The Simulator type is the root of the simulation and contains external
// references to all the machine's sub-systems. From here, the simulation can
// either be started to run continuously (with optional cancellation through
// a context) or stepped for a fixed number of cycles.
//
// A cycle is the fetch, decode and execute of a single instruction. The
// simulator counts the number of cycles since the last Reset(). The count is
// available as the InstructionCount field.
//
// The simulator is not safe for concurrent use. The machine it simulates has
// a single thread of execution and so does the simulator.
package hardware
