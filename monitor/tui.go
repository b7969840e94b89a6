package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mcs4/cpu"
)

// Interactive is a cpu.Monitor that pauses at every instruction boundary
// and hands control to a bubbletea TUI, so a user can inspect registers,
// the stack, and RAM banks one step at a time.
type Interactive struct {
	program []tea.ProgramOption
}

// NewInteractive returns an Interactive monitor ready to pass to
// cpu.Execute.
func NewInteractive(opts ...tea.ProgramOption) *Interactive {
	return &Interactive{program: opts}
}

// BeforeStep blocks on a bubbletea session showing the processor's
// current state and waits for the user to single-step, continue, or
// quit.
func (i *Interactive) BeforeStep(p *cpu.Processor, pc int, opcode cpu.OpcodeInfo) (bool, error) {
	m := tuiModel{cpu: p, pc: pc, opcode: opcode}
	final, err := tea.NewProgram(m, i.program...).Run()
	if err != nil {
		return false, err
	}
	fm := final.(tuiModel)
	return fm.cont, fm.err
}

type tuiModel struct {
	cpu    *cpu.Processor
	pc     int
	opcode cpu.OpcodeInfo

	cont bool
	err  error
}

// Init performs no initial command; the model already holds the state
// it needs to render.
func (m tuiModel) Init() tea.Cmd { return nil }

// Update advances past this instruction on space, "s" or "c", and quits
// on "q". The three step keys behave alike: each resumes for exactly one
// instruction, and the next BeforeStep opens the TUI again.
func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q":
		m.cont = false
		return m, tea.Quit
	case " ", "s", "c":
		m.cont = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the register/stack page and the instruction about to
// execute.
func (m tuiModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.registerTable(),
		m.stackTable(),
		"",
		spew.Sdump(m.opcode),
		"space/s: step   c: continue   q: quit",
	)
}

func (m tuiModel) registerTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pc %04x   acc %x   cy %d   bank %d\n", m.pc, m.cpu.Accumulator, m.cpu.Carry, m.cpu.CurrentBank)
	b.WriteString("reg | ")
	for i, r := range m.cpu.Registers {
		fmt.Fprintf(&b, "%x", r)
		if i%4 == 3 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m tuiModel) stackTable() string {
	return fmt.Sprintf("sp %d   stack %v", m.cpu.StackPointer, m.cpu.Stack)
}
