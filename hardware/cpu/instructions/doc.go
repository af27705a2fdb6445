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

// Package instructions defines the instruction set of the CPU and decodes
// 32bit instruction words into the Instruction type.
//
// Every instruction is described by a Definition. The Definition says which
// Operator the instruction performs, its mnemonic, the encoding Format of the
// instruction word and the Effect category of the instruction.
//
// Decode() is total. Any word can be decoded and a word that does not match
// any known opcode or function code decodes to an Instruction with the
// Unknown operator.
//
// The Encode*() functions are the inverse of Decode() and are useful when
// building programs in test code.
package instructions
