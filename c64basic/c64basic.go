// Package c64basic lists Commodore 64 BASIC programs held in memory. Test
// programs distributed as PRG files usually start with a one line BASIC stub
// at 0x0801 which SYS's into the machine code so both the disassembler and
// convertprg use this to find their way in.
package c64basic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jmchacon/nes6502/memory"
)

// Start is where BASIC programs load.
const Start = uint16(0x0801)

// ErrSyntax is returned for a token BASIC V2 doesn't define.
var ErrSyntax = errors.New("?SYNTAX  ERROR")

// tokens are the keywords for 0x80-0xCB. Below 0x80 is plain ASCII.
var tokens = [...]string{
	"END", "FOR", "NEXT", "DATA", "INPUT#", "INPUT", "DIM", "READ",
	"LET", "GOTO", "RUN", "IF", "RESTORE", "GOSUB", "RETURN", "REM",
	"STOP", "ON", "WAIT", "LOAD", "SAVE", "VERIFY", "DEF", "POKE",
	"PRINT#", "PRINT", "CONT", "LIST", "CLR", "CMD", "SYS", "OPEN",
	"CLOSE", "GET", "NEW", "TAB(", "TO", "FN", "SPC(", "THEN",
	"NOT", "STEP", "+", "-", "*", "/", "^", "AND",
	"OR", ">", "=", "<", "SGN", "INT", "ABS", "USR",
	"FRE", "POS", "SQR", "RND", "LOG", "EXP", "COS", "SIN",
	"TAN", "ATN", "PEEK", "LEN", "STR$", "VAL", "ASC", "CHR$",
	"LEFT$", "RIGHT$", "MID$", "GO",
}

const tokSYS = 0x9E

// List returns the BASIC line at pc and the PC of the next line. This does no sanity
// checking so a program which links to itself will loop forever unless the caller
// compares PC values.
// On a normal program end (next addr == 0x0000) it returns an empty string and PC of 0x0000.
// If a token can't be parsed ErrSyntax is returned with as much of the line as would
// tokenize and a next PC of 0.
// NOTE: Characters are returned as ASCII, displaying in PETSCII is up to the caller.
func List(pc uint16, r memory.Bank) (string, uint16, error) {
	next, line, body := readLine(pc, r)
	if next == 0x0000 {
		return "", 0x0000, nil
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(line)))
	b.WriteString(" ")
	for _, tok := range body {
		if tok < 0x80 {
			b.WriteByte(tok)
			continue
		}
		if int(tok-0x80) >= len(tokens) {
			return b.String(), 0, ErrSyntax
		}
		b.WriteString(tokens[tok-0x80])
	}
	return b.String(), next, nil
}

// SysTarget walks the program starting at pc and returns the address of the first
// SYS statement with a plain decimal argument.
func SysTarget(pc uint16, r memory.Bank) (uint16, bool) {
	seen := map[uint16]bool{}
	for !seen[pc] {
		seen[pc] = true
		next, _, body := readLine(pc, r)
		if next == 0x0000 {
			return 0, false
		}
		for i, tok := range body {
			if tok != tokSYS {
				continue
			}
			arg := strings.TrimSpace(string(body[i+1:]))
			end := strings.IndexFunc(arg, func(c rune) bool { return c < '0' || c > '9' })
			if end >= 0 {
				arg = arg[:end]
			}
			v, err := strconv.ParseUint(arg, 10, 16)
			if err != nil {
				return 0, false
			}
			return uint16(v), true
		}
		pc = next
	}
	return 0, false
}

// readLine returns the link to the next line, the line number and the tokens up
// to the terminating NUL.
func readLine(pc uint16, r memory.Bank) (uint16, uint16, []byte) {
	next := memory.ReadAddr(r, pc)
	if next == 0x0000 {
		return 0, 0, nil
	}
	line := memory.ReadAddr(r, pc+2)
	var body []byte
	for p := pc + 4; ; p++ {
		tok := r.Read(p)
		// A line with no NUL ends once it's wrapped all of memory.
		if tok == 0x00 || p == pc+3 {
			break
		}
		body = append(body, tok)
	}
	return next, line, body
}
