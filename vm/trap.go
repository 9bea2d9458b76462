package vm

import (
	"fmt"

	"mmixgo/opcode"
)

func unhandledTrapError(service byte) error {
	return fmt.Errorf("mmix: unhandled TRAP service %d", service)
}

// opTrap dispatches TRAP 0,Y,Z by the Y field, per the small service table
// in the design: Halt terminates the machine with the Z byte as exit code;
// Fputs writes the NUL-terminated string at $255 to m.Out. The Z file
// handle is not consulted: StdErr output also goes to m.Out. Any other Y
// is an unhandled TRAP, which faults the machine.
func opTrap(m *Machine, i Instruction) {
	if m.TraceTraps != nil {
		m.TraceTraps(i.Y, i.Z)
	}
	switch i.Y {
	case opcode.Halt:
		m.Halt(i.Z)
	case opcode.Fputs:
		str := m.Mem.ReadCString(m.Reg.Get(255))
		if m.Out != nil {
			m.Out.Write(str) //nolint:errcheck
		}
		m.advance()
	default:
		m.SetFault(unhandledTrapError(i.Y))
	}
}
