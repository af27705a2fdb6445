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


package debugger

// helpMenu is the traditional MU-MIPS help menu. It is shown by the ? command.
const helpMenu = `------------------------------------------------------------------

	**********MU-MIPS Help MENU**********

sim	-- simulate program to completion
run <n>	-- simulate program for <n> instructions
rdump	-- dump register values
reset	-- clears all registers/memory and re-loads the program
input <reg> <val>	-- set GPR <reg> to <val>
mdump <start> <stop>	-- dump memory from <start> to <stop> address
high <val>	-- set the HI register to <val>
low <val>	-- set the LO register to <val>
print	-- print the program loaded into memory
?	-- display help menu
quit	-- exit the simulator

------------------------------------------------------------------`

var helps = map[string]string{
	cmdSim: `Simulate the program to completion. The simulation can be interrupted
with Ctrl-C.`,

	cmdRun: `Simulate the program for a number of instructions. The simulation will
stop early if the program halts.`,

	cmdStep: `Execute a single instruction, or the specified number of
instructions, and show what each instruction did.`,

	cmdRDump: `Dump the value of the PC, the general purpose registers and the HI/LO
registers. The number of instructions executed since the last reset is also
shown.`,

	cmdMDump: `Dump the words of memory from the start address to the stop address
inclusive. Addresses are in hexadecimal, with or without the 0x prefix. The
BYTES option shows a hex dump of the bytes instead. A hex dump stops at the
end of the memory area containing the start address.`,

	cmdReset: `Clear all registers and memory and load the program again. The
instruction count is also reset.`,

	cmdInput: `Set a general purpose register to the value. The register can be
specified by number or by name (eg. 2, $2 or $v0).`,

	cmdHigh: `Set the HI register to the value.`,

	cmdLow: `Set the LO register to the value.`,

	cmdPrint: `Print the loaded program as MIPS assembly. The BYTECODE option will
also show the machine code of each instruction.`,

	cmdQuit: `Exit the simulator.`,

	cmdLast: `Show the result of the most recent instruction.`,

	cmdState: `Pretty print the entire CPU state.`,

	cmdMemMap: `List the areas of memory with their address ranges.`,

	cmdMemviz: `Write a graphviz representation of the CPU state to the file.`,

	cmdGrep: `Search the loaded program for the string. The search can be limited to
the mnemonic or to the operands.`,

	cmdLog: `Show the most recent entries in the log. The LAST option shows only the
last entry. The CLEAR option empties the log.`,

	cmdQuestion: `Display the help menu.`,

	cmdHelp: `Lists commands or gives detailed help for a single command.`,
}
