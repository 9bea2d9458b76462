package vm

import (
	"fmt"
	"io"

	"mmixgo/opcode"
)

// State is the executor's run state, per the state machine in the design.
type State int

const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Machine is the single owning aggregate for one MMIX run: register file,
// memory, program counter, and output sink. Machine instances are never
// shared or aliased; a fresh Machine is created per assemble-and-run or
// load-and-run invocation.
type Machine struct {
	Mem *Memory
	Reg *Registers
	PC  uint64

	state    State
	ExitCode byte
	fault    error

	Out io.Writer

	// TraceInstructions and TraceTraps gate optional decoded-instruction
	// and TRAP dispatch logging; cmd/mmix wires these from the MMIX_LOG
	// facility filter. Trace is a no-op when nil.
	TraceInstructions func(pc uint64, inst Instruction)
	TraceTraps        func(y, z byte)

	table [256]func(*Machine, Instruction)
}

// NewMachine returns a Machine ready to run, with PC at the conventional
// text segment entry point.
func NewMachine(out io.Writer) *Machine {
	m := &Machine{
		Mem:   NewMemory(),
		Reg:   NewRegisters(),
		PC:    TextSegmentBase,
		state: Running,
		Out:   out,
	}
	m.buildTable()
	return m
}

// State reports the current executor state.
func (m *Machine) State() State { return m.state }

// Fault returns the error that caused a transition to Faulted, if any.
func (m *Machine) Fault() error { return m.fault }

// Step fetches, decodes, and executes one instruction.
func (m *Machine) Step() error {
	if m.state != Running {
		return fmt.Errorf("mmix: step called while %s", m.state)
	}
	tetra := m.Mem.ReadTetra(m.PC)
	inst := Decode(tetra)
	if m.TraceInstructions != nil {
		m.TraceInstructions(m.PC, inst)
	}
	handler := m.table[inst.Op]
	if handler == nil {
		m.SetEvent(opcode.AEventI)
		m.state = Faulted
		m.fault = fmt.Errorf("mmix: unimplemented opcode %#02x at %#x", inst.Op, m.PC)
		return m.fault
	}
	handler(m, inst)
	return nil
}

// Run steps until the machine halts, faults, or Step returns an error.
func (m *Machine) Run() error {
	for m.state == Running {
		if err := m.Step(); err != nil {
			return err
		}
	}
	if m.state == Faulted && m.fault != nil {
		return m.fault
	}
	return nil
}

// Halt transitions the machine to Halted with the given exit code.
func (m *Machine) Halt(code byte) {
	m.ExitCode = code
	m.state = Halted
}

// SetFault transitions the machine to Faulted, recording err.
func (m *Machine) SetFault(err error) {
	m.state = Faulted
	m.fault = err
}

// TextSegmentBase is the default entry address, #100.
const TextSegmentBase = 0x100

// SetEvent sets the given rA event bit (one of opcode.AEvent*).
func (m *Machine) SetEvent(bit uint64) {
	m.Reg.Special[opcode.RA] |= bit
}

// EventSet reports whether the given rA event bit is set.
func (m *Machine) EventSet(bit uint64) bool {
	return m.Reg.Special[opcode.RA]&bit != 0
}

// advance moves PC to the next sequential instruction; non-branching
// executors call this as their last action.
func (m *Machine) advance() {
	m.PC += 4
}

// buildTable populates the 256-entry opcode dispatch table. Each family is
// registered by its own file so no single function lists all ~180
// opcodes.
func (m *Machine) buildTable() {
	registerIntTable(&m.table)
	registerMemTable(&m.table)
	registerBranchTable(&m.table)
	registerFPTable(&m.table)
	registerSpecialTable(&m.table)
}
