package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// signalSpec declares one (fixed) signal of the formal interface.  The group
// and width are Go expressions within the rvfi package.
type signalSpec struct {
	Const string
	Name  string
	Group string
	Width string
	Doc   string
}

// extensionSpec declares one of the signals generated for each extension
// register.
type extensionSpec struct {
	Const  string
	Suffix string
	Width  string
	Doc    string
}

type catalogConfig struct {
	Prefix     string
	Signals    []signalSpec
	Extensions []extensionSpec
}

// The catalog of signals follows the naming of the RISC-V Formal Interface,
// and must not be changed.
var catalog = catalogConfig{
	Prefix: "rvfi_csr",
	Signals: []signalSpec{
		{"CLK", "clk", "ClockGroup", "fixedWidth(1)", "is the clock"},
		{"RST", "rst", "ResetGroup", "fixedWidth(1)", "is the (active high) reset"},
		// Instruction metadata
		{"RVFI_VALID", "rvfi_valid", "InstructionMetadata", "fixedWidth(1)", "signals a retirement"},
		{"RVFI_ORDER", "rvfi_order", "InstructionMetadata", "fixedWidth(64)", "is the instruction index"},
		{"RVFI_INSN", "rvfi_insn", "InstructionMetadata", "ilenWidth", "is the instruction word"},
		{"RVFI_TRAP", "rvfi_trap", "InstructionMetadata", "fixedWidth(1)", "signals a trap"},
		{"RVFI_HALT", "rvfi_halt", "InstructionMetadata", "fixedWidth(1)", "signals the final instruction"},
		{"RVFI_INTR", "rvfi_intr", "InstructionMetadata", "fixedWidth(1)", "signals the first instruction of a handler"},
		{"RVFI_MODE", "rvfi_mode", "InstructionMetadata", "fixedWidth(2)", "is the privilege mode"},
		{"RVFI_IXL", "rvfi_ixl", "InstructionMetadata", "fixedWidth(2)", "is the register width class"},
		// Integer registers
		{"RVFI_RS1_ADDR", "rvfi_rs1_addr", "IntegerRegisters", "fixedWidth(5)", "is the first source register"},
		{"RVFI_RS2_ADDR", "rvfi_rs2_addr", "IntegerRegisters", "fixedWidth(5)", "is the second source register"},
		{"RVFI_RS1_RDATA", "rvfi_rs1_rdata", "IntegerRegisters", "xlenWidth", "is the first source value"},
		{"RVFI_RS2_RDATA", "rvfi_rs2_rdata", "IntegerRegisters", "xlenWidth", "is the second source value"},
		{"RVFI_RD_ADDR", "rvfi_rd_addr", "IntegerRegisters", "fixedWidth(5)", "is the destination register"},
		{"RVFI_RD_WDATA", "rvfi_rd_wdata", "IntegerRegisters", "xlenWidth", "is the destination value"},
		// Program counter
		{"RVFI_PC_RDATA", "rvfi_pc_rdata", "ProgramCounter", "xlenWidth", "is the pc before the instruction"},
		{"RVFI_PC_WDATA", "rvfi_pc_wdata", "ProgramCounter", "xlenWidth", "is the pc after the instruction"},
		// Memory access
		{"RVFI_MEM_ADDR", "rvfi_mem_addr", "MemoryAccess", "xlenWidth", "is the accessed address"},
		{"RVFI_MEM_RMASK", "rvfi_mem_rmask", "MemoryAccess", "xlenBytesWidth", "marks the bytes read"},
		{"RVFI_MEM_WMASK", "rvfi_mem_wmask", "MemoryAccess", "xlenBytesWidth", "marks the bytes written"},
		{"RVFI_MEM_RDATA", "rvfi_mem_rdata", "MemoryAccess", "xlenWidth", "is the data read"},
		{"RVFI_MEM_WDATA", "rvfi_mem_wdata", "MemoryAccess", "xlenWidth", "is the data written"},
	},
	Extensions: []extensionSpec{
		{"CSR_RMASK", "rmask", "xlenWidth", "marks the register bits read"},
		{"CSR_WMASK", "wmask", "xlenWidth", "marks the register bits written"},
		{"CSR_RDATA", "rdata", "xlenWidth", "is the register value read"},
		{"CSR_WDATA", "wdata", "xlenWidth", "is the register value written"},
	},
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-rvfi")
	//
	assertNoError(bgen.Generate(catalog, "rvfi", "templates",
		bavard.Entry{
			File:      "../../pkg/rvfi/catalog_gen.go",
			Templates: []string{"catalog.go.tmpl"},
		},
	), "for catalog")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../pkg/rvfi/catalog_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
