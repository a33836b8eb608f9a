package vm

// VM ties one CPU to its memory and console. Instances are independent;
// nothing is shared between two machines.
type VM struct {
	CPU *CPU
	Mem *Memory
}

// New builds a machine that does its I/O through the given console.
func New(console Console) *VM {
	mem := &Memory{console: console}
	return &VM{
		Mem: mem,
		CPU: newCPU(mem, console),
	}
}

// LoadImage loads a program image from memory.
func (v *VM) LoadImage(image []byte) error {
	return LoadImage(v.Mem, image)
}

// LoadImageFile loads a program image from a file.
func (v *VM) LoadImageFile(path string) error {
	return LoadImageFile(v.Mem, path)
}

// Run executes the loaded program until it halts or faults.
func (v *VM) Run() error {
	return v.CPU.Run()
}
