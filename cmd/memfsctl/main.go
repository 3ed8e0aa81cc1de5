// Command memfsctl is a thin demonstration front-end for the memfs
// engine. It holds one in-memory filesystem for the lifetime of the
// process and runs a script of operations against it, one per line.
// There is no persistence between invocations (memfs has none), so this
// is a smoke-test harness for the engine, not a production shell.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockfs/memfs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memfsctl",
		Short: "Drive an in-memory block-device filesystem from a script",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script of filesystem operations, one per line; '-' or no argument reads stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			fs := memfs.New()
			return runScript(cmd.OutOrStdout(), fs, in)
		},
	}
}

// runScript executes one operation per non-empty, non-comment line and
// prints "<op> <path...> -> <status>" for every mutating call.
func runScript(out io.Writer, fs *memfs.FileSystem, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op := fields[0]
		args := fields[1:]

		switch op {
		case "mkdir":
			fmt.Fprintf(out, "mkdir %s -> %d\n", args[0], fs.Mkdir(args[0]))
		case "mkfile":
			fmt.Fprintf(out, "mkfile %s -> %d\n", args[0], fs.Mkfile(args[0]))
		case "write":
			data := strings.Join(args[1:], " ")
			fmt.Fprintf(out, "write %s -> %d\n", args[0], fs.Writef(args[0], []byte(data)))
		case "rm":
			fmt.Fprintf(out, "rm %s -> %d\n", args[0], fs.Rm(args[0]))
		case "cp":
			fmt.Fprintf(out, "cp %s %s -> %d\n", args[0], args[1], fs.Cp(args[0], args[1]))
		case "import":
			fmt.Fprintf(out, "import %s %s -> %d\n", args[0], args[1], fs.Import(args[0], args[1]))
		case "export":
			fmt.Fprintf(out, "export %s %s -> %d\n", args[0], args[1], fs.Export(args[0], args[1]))
		case "ls":
			entries, ok := fs.Ls(args[0])
			if !ok {
				fmt.Fprintf(out, "ls %s -> -1\n", args[0])
				continue
			}
			for _, e := range entries {
				fmt.Fprintf(out, "  %s\t%d\n", e.Name, e.Size)
			}
		case "stat":
			info, ok := fs.Stat(args[0])
			if !ok {
				fmt.Fprintf(out, "stat %s -> -1\n", args[0])
				continue
			}
			fmt.Fprintf(out, "  %s\tsize=%s\n", info.Name, strconv.Itoa(info.Size))
		default:
			return fmt.Errorf("memfsctl: unknown operation %q", op)
		}
	}
	return scanner.Err()
}
