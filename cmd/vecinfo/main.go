// Command vecinfo prints growth and relocation statistics of the vector
// container for typical workloads.
//
// Usage:
//
//	vecinfo [flags] [workload-name ...]
//
// Without arguments it runs all known workloads.
//
// Examples:
//
//	vecinfo append
//	vecinfo -n 1000,100000 append append-reserved
//	vecinfo -list
//	vecinfo -env
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vec/mem"
	"github.com/cwbudde/algo-vec/vec"
)

type workloadEntry struct {
	name string
	desc string
	run  func(n int, cfg vec.Config[int64]) (result, error)
}

type result struct {
	finalLen int
	finalCap int
}

var registry = []workloadEntry{
	{"append", "n appends starting from an empty vector", runAppend},
	{"append-reserved", "Reserve(n) up front, then n appends", runAppendReserved},
	{"insert-front", "n inserts at position 0 (quadratic shifting)", runInsertFront},
	{"push-pop", "n appends followed by n pops", runPushPop},
	{"resize-cycle", "Resize(n), Resize(n/2), Resize(n)", runResizeCycle},
}

func main() {
	sizes := flag.String("n", "512,4096,32768", "comma-separated workload sizes")
	all := flag.Bool("all", false, "run all workloads")
	list := flag.Bool("list", false, "list available workload names")
	env := flag.Bool("env", false, "print the CPU features the floats kernels dispatch on")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] [workload-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints growth and relocation statistics of the vector container.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, runs all workloads.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo append append-reserved\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -n 1000,100000 append\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}
	if *env {
		printEnv()
		return
	}

	ns, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching workloads\n")
		os.Exit(1)
	}

	printStats(entries, ns)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, n := range names {
		for _, e := range registry {
			if e.name == n {
				fmt.Fprintf(tw, "%s\t%s\n", e.name, e.desc)
			}
		}
	}
	_ = tw.Flush()
}

func printEnv() {
	f := cpu.DetectFeatures()
	fmt.Printf("arch: %s\n", f.Architecture)
	fmt.Printf("sse2: %v\n", f.HasSSE2)
	fmt.Printf("avx2: %v\n", f.HasAVX2)
	fmt.Printf("neon: %v\n", f.HasNEON)
}

func parseSizes(s string) ([]int, error) {
	var ns []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return ns, nil
}

func resolveEntries(names []string) []workloadEntry {
	byName := make(map[string]workloadEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}
	var result []workloadEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown workload %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printStats(entries []workloadEntry, sizes []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Workload\tN\tAllocs\tMoved\tMoved/N\tFinal Len\tFinal Cap\tUtil %%\tPeak KiB\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------\t-\t------\t-----\t-------\t---------\t---------\t------\t--------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		for _, n := range sizes {
			ca := mem.NewCountingAllocator(nil)
			moved := 0
			cfg := vec.Config[int64]{
				Allocator: ca,
				Traits: vec.Traits[int64]{
					Move: func(dst, src *int64) { *dst = *src; moved++ },
				},
			}
			res, err := e.run(n, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %s (n=%d): %v\n", e.name, n, err)
				continue
			}
			util := 0.0
			if res.finalCap > 0 {
				util = 100 * float64(res.finalLen) / float64(res.finalCap)
			}
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t%d\t%d\t%.1f\t%d\n",
				e.name,
				n,
				ca.Allocs(),
				moved,
				float64(moved)/float64(n),
				res.finalLen,
				res.finalCap,
				util,
				ca.Peak()/1024,
			); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func runAppend(n int, cfg vec.Config[int64]) (result, error) {
	v, err := vec.New[int64](0, cfg)
	if err != nil {
		return result{}, err
	}
	defer v.Free()
	for i := 0; i < n; i++ {
		if _, err := v.PushBack(int64(i)); err != nil {
			return result{}, err
		}
	}
	return result{finalLen: v.Len(), finalCap: v.Cap()}, nil
}

func runAppendReserved(n int, cfg vec.Config[int64]) (result, error) {
	v, err := vec.New[int64](0, cfg)
	if err != nil {
		return result{}, err
	}
	defer v.Free()
	if err := v.Reserve(n); err != nil {
		return result{}, err
	}
	for i := 0; i < n; i++ {
		if _, err := v.PushBack(int64(i)); err != nil {
			return result{}, err
		}
	}
	return result{finalLen: v.Len(), finalCap: v.Cap()}, nil
}

func runInsertFront(n int, cfg vec.Config[int64]) (result, error) {
	v, err := vec.New[int64](0, cfg)
	if err != nil {
		return result{}, err
	}
	defer v.Free()
	for i := 0; i < n; i++ {
		if _, err := v.Insert(0, int64(i)); err != nil {
			return result{}, err
		}
	}
	return result{finalLen: v.Len(), finalCap: v.Cap()}, nil
}

func runPushPop(n int, cfg vec.Config[int64]) (result, error) {
	v, err := vec.New[int64](0, cfg)
	if err != nil {
		return result{}, err
	}
	defer v.Free()
	for i := 0; i < n; i++ {
		if _, err := v.PushBack(int64(i)); err != nil {
			return result{}, err
		}
	}
	for i := 0; i < n; i++ {
		v.PopBack()
	}
	return result{finalLen: v.Len(), finalCap: v.Cap()}, nil
}

func runResizeCycle(n int, cfg vec.Config[int64]) (result, error) {
	v, err := vec.New[int64](0, cfg)
	if err != nil {
		return result{}, err
	}
	defer v.Free()
	if err := v.Resize(n); err != nil {
		return result{}, err
	}
	if err := v.Resize(n / 2); err != nil {
		return result{}, err
	}
	if err := v.Resize(n); err != nil {
		return result{}, err
	}
	return result{finalLen: v.Len(), finalCap: v.Cap()}, nil
}
