package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gbcore/sm83/cpu"
	"github.com/gbcore/sm83/emulator"
)

// assemble parses a script file with the emulator defines predefined.
func assemble(emu *emulator.Emulator, path string, verbose bool) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)
	return
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sm83",
		Short: "SM83 arithmetic core — assemble and run driver scripts",
	}

	var verbose bool

	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Assemble a driver script and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := emulator.NewEmulator()
			emu.Verbose = verbose

			prog, err := assemble(emu, args[0], verbose)
			if err != nil {
				return err
			}
			emu.Program = prog

			if err := emu.Reset(); err != nil {
				return err
			}
			if err := emu.Run(); err != nil {
				return err
			}

			fmt.Print(emu.Cpu.String())
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose trace")

	listCmd := &cobra.Command{
		Use:   "list <script>",
		Short: "Assemble a driver script and print the listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := emulator.NewEmulator()

			prog, err := assemble(emu, args[0], false)
			if err != nil {
				return err
			}

			for n, op := range prog.Steps() {
				fmt.Printf("%4d %4d  %v\n", n, op.LineNo, op)
			}
			return nil
		},
	}

	definesCmd := &cobra.Command{
		Use:   "defines",
		Short: "Print the symbols predefined for $() expressions",
		Run: func(cmd *cobra.Command, args []string) {
			emu := emulator.NewEmulator()

			defines := maps.Collect(emu.Defines())
			for _, key := range slices.Sorted(maps.Keys(defines)) {
				fmt.Printf("%s = %s\n", key, defines[key])
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, definesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
