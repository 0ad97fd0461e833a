package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/holloway-labs/uxalloc"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Replay a trace of allocator operations from a file",
	Long: `Each non-blank, non-comment line of the trace file is one operation:

  a <id> <size>        allocate
  c <id> <n> <size>    zero-allocate
  r <id> <size>        reallocate
  f <id>               free

<id> is any token the trace file uses to name a live block; reallocate and
free look it up from a previous allocate/zero-allocate/reallocate line.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	arena := uxalloc.NewArena()
	ptrs := make(map[string]unsafe.Pointer)

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := replayLine(arena, ptrs, fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		printVerbose("line %d: %s -> ok\n", lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	printInfo("replayed %d line(s), %d block(s) still live\n", lineNo, len(ptrs))
	return nil
}

func replayLine(arena *uxalloc.Arena, ptrs map[string]unsafe.Pointer, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("expected at least an op and an id, got %q", strings.Join(fields, " "))
	}
	op, id := fields[0], fields[1]

	switch op {
	case "a":
		size, err := parseInt(fields, 2)
		if err != nil {
			return err
		}
		ptrs[id] = arena.Allocate(size)
	case "c":
		n, err := parseInt(fields, 2)
		if err != nil {
			return err
		}
		size, err := parseInt(fields, 3)
		if err != nil {
			return err
		}
		ptrs[id] = arena.ZeroAllocate(n, size)
	case "r":
		size, err := parseInt(fields, 2)
		if err != nil {
			return err
		}
		ptrs[id] = arena.Reallocate(ptrs[id], size)
	case "f":
		arena.Free(ptrs[id])
		delete(ptrs, id)
	default:
		return fmt.Errorf("unknown op %q", op)
	}
	return nil
}

func parseInt(fields []string, idx int) (int, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("missing argument at position %d", idx)
	}
	return strconv.Atoi(fields[idx])
}
