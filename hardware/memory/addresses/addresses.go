// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

package addresses

// System variables. The two byte variables are little-endian.
const (
	ERR_NR   = uint16(0x4000)
	FLAGS    = uint16(0x4001)
	ERR_SP   = uint16(0x4002)
	RAMTOP   = uint16(0x4004)
	MODE     = uint16(0x4006)
	PPC      = uint16(0x4007)
	VERSN    = uint16(0x4009)
	E_PPC    = uint16(0x400a)
	D_FILE   = uint16(0x400c)
	DF_CC    = uint16(0x400e)
	VARS     = uint16(0x4010)
	DEST     = uint16(0x4012)
	E_LINE   = uint16(0x4014)
	CH_ADD   = uint16(0x4016)
	X_PTR    = uint16(0x4018)
	STKBOT   = uint16(0x401a)
	STKEND   = uint16(0x401c)
	BERG     = uint16(0x401e)
	MEM      = uint16(0x401f)
	DF_SZ    = uint16(0x4022)
	S_TOP    = uint16(0x4023)
	LAST_K   = uint16(0x4025)
	DEBOUNCE = uint16(0x4027)
	MARGIN   = uint16(0x4028)
	NXTLIN   = uint16(0x4029)
	OLDPPC   = uint16(0x402b)
	FLAGX    = uint16(0x402d)
	STRLEN   = uint16(0x402e)
	T_ADDR   = uint16(0x4030)
	SEED     = uint16(0x4032)
	FRAMES   = uint16(0x4034)
	COORDS   = uint16(0x4036)
	PR_CC    = uint16(0x4038)
	S_POSN   = uint16(0x4039)
	CDFLAG   = uint16(0x403b)
	PRBUFF   = uint16(0x403c)
	MEMBOT   = uint16(0x405d)
)

// ProgramImage is the address at which a saved program begins. Programs are
// saved from VERSN up to, but not including, the address held in E_LINE.
const ProgramImage = VERSN

// ROM addresses used by the tape deck. LoadBytes is reached by the LOAD
// command once the name has been evaluated, with the carry flag set if no
// name was given. ReportNoName is the error report for an empty name.
const (
	LoadBytes    = uint16(0x0343)
	ReportNoName = uint16(0x02f4)
)

// Routines names the entry points of the ROM that are referred to by address,
// the restarts and interrupt routines in particular.
var Routines = map[uint16]string{
	0x0000:       "START",
	0x0008:       "ERROR_1",
	0x0010:       "PRINT_A",
	0x0018:       "GET_CHAR",
	0x0020:       "NEXT_CHAR",
	0x0028:       "FP_CALC",
	0x0030:       "BC_SPACES",
	0x0038:       "INTERRUPT",
	0x0066:       "NMI",
	ReportNoName: "REPORT_NO_NAME",
	LoadBytes:    "LOAD_BYTES",
}

// Program is the address of the first line of BASIC.
const Program = uint16(0x407d)

// DisplayRows and DisplayColumns are the dimensions of a fully expanded
// display file. Each row is terminated by a HALT instruction.
const (
	DisplayRows    = 24
	DisplayColumns = 32
)

// Canonical names of system variables, indexed by address.
var Canonical = map[uint16]string{
	ERR_NR:   "ERR_NR",
	FLAGS:    "FLAGS",
	ERR_SP:   "ERR_SP",
	RAMTOP:   "RAMTOP",
	MODE:     "MODE",
	PPC:      "PPC",
	VERSN:    "VERSN",
	E_PPC:    "E_PPC",
	D_FILE:   "D_FILE",
	DF_CC:    "DF_CC",
	VARS:     "VARS",
	DEST:     "DEST",
	E_LINE:   "E_LINE",
	CH_ADD:   "CH_ADD",
	X_PTR:    "X_PTR",
	STKBOT:   "STKBOT",
	STKEND:   "STKEND",
	BERG:     "BERG",
	MEM:      "MEM",
	DF_SZ:    "DF_SZ",
	S_TOP:    "S_TOP",
	LAST_K:   "LAST_K",
	DEBOUNCE: "DEBOUNCE",
	MARGIN:   "MARGIN",
	NXTLIN:   "NXTLIN",
	OLDPPC:   "OLDPPC",
	FLAGX:    "FLAGX",
	STRLEN:   "STRLEN",
	T_ADDR:   "T_ADDR",
	SEED:     "SEED",
	FRAMES:   "FRAMES",
	COORDS:   "COORDS",
	PR_CC:    "PR_CC",
	S_POSN:   "S_POSN",
	CDFLAG:   "CDFLAG",
	PRBUFF:   "PRBUFF",
	MEMBOT:   "MEMBOT",
}
