package vm

import "mmixgo/asm"

// LoadImage copies an assembled Image's segments into memory, presets the
// GREG-allocated global registers, and positions PC at the image's entry
// point. It does not reset any other machine state, so a Machine can load
// several images in sequence if a future linker ever needs to.
func (m *Machine) LoadImage(img *asm.Image) {
	for _, seg := range img.Segments {
		m.Mem.WriteBytes(seg.Addr, seg.Bytes)
	}
	for idx, v := range img.Globals {
		m.Reg.Set(idx, v)
	}
	m.PC = img.Entry
}
