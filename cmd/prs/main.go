// Command prs packs and unpacks PRS streams.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/woozymasta/prs"
)

type cliCommand struct {
	fn       func(args []string) error
	flags    *flag.FlagSet
	argsDesc string
	desc     string
}

func printCmdUsage(name string, cmd cliCommand) {
	fmt.Printf("prs %s %s - %s\n", name, cmd.argsDesc, cmd.desc)
	count := 0
	cmd.flags.VisitAll(func(_ *flag.Flag) { count++ })
	if count != 0 {
		cmd.flags.Usage()
	}
}

func printUsage(commands map[string]cliCommand) {
	fmt.Println()
	fmt.Println("Usage: prs <command> [arguments]")
	fmt.Println("Commands available:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("    %-8s %s\n", name, commands[name].desc)
	}
}

func parseDialect(s string) (prs.Dialect, error) {
	switch s {
	case "legacy":
		return prs.Legacy, nil
	case "modern":
		return prs.Modern, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want legacy or modern)", s)
	}
}

func parseLevels(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, part := range parts {
		level, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || level < 1 || level > 9 {
			return nil, fmt.Errorf("bad level %q (want 1-9)", part)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func commandPack(inputPath, outputPath string, d prs.Dialect, level int) error {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	fh, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	cw := countingWriter{w: fh}
	zw, err := prs.NewWriter(&cw, &prs.CompressOptions{Dialect: d, Level: level})
	if err != nil {
		fh.Close()
		return err
	}

	_, werr := zw.Write(src)
	if werr == nil {
		werr = zw.Close()
	}
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}

	fmt.Printf("packed %s (%v, level %d): %d -> %d bytes (%.1f%%)\n",
		inputPath, d, level, len(src), cw.n, percent(cw.n, len(src)))
	return nil
}

func commandUnpack(inputPath, outputPath string, d prs.Dialect, maxOutput int) error {
	fh, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer fh.Close()

	opts := prs.DefaultDecompressOptions(d)
	opts.MaxOutputSize = maxOutput
	out, err := prs.DecompressFromReader(fh, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return err
	}

	fi, err := fh.Stat()
	if err != nil {
		return err
	}

	fmt.Printf("unpacked %s (%v): %d -> %d bytes\n", inputPath, d, fi.Size(), len(out))
	return nil
}

type benchRow struct {
	codec string
	size  int
	took  time.Duration
}

func commandBench(inputPath string, d prs.Dialect, levels []int, graphPath string) error {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		return fmt.Errorf("%s is empty", inputPath)
	}

	var rows []benchRow
	sizeByLevel := make(map[int]int)

	for _, level := range levels {
		start := time.Now()
		packed, err := prs.Compress(src, &prs.CompressOptions{Dialect: d, Level: level})
		if err != nil {
			return err
		}
		rows = append(rows, benchRow{fmt.Sprintf("prs-%v-%d", d, level), len(packed), time.Since(start)})
		sizeByLevel[level] = len(packed)
	}

	row, err := benchFlate(src)
	if err != nil {
		return err
	}
	rows = append(rows, row)

	row, err = benchZstd(src)
	if err != nil {
		return err
	}
	rows = append(rows, row)

	start := time.Now()
	packed := s2.Encode(nil, src)
	rows = append(rows, benchRow{"s2", len(packed), time.Since(start)})

	fmt.Printf("input %s: %d bytes\n", inputPath, len(src))
	fmt.Printf("%-16s %10s %8s %12s\n", "codec", "size", "ratio", "time")
	for _, r := range rows {
		fmt.Printf("%-16s %10d %7.1f%% %12v\n", r.codec, r.size, percent(r.size, len(src)), r.took)
	}

	if graphPath != "" {
		if err := renderSizeChart(graphPath, sizeByLevel); err != nil {
			return err
		}
		fmt.Println("graph written to", graphPath)
	}
	return nil
}

func benchFlate(src []byte) (benchRow, error) {
	var buf bytes.Buffer
	start := time.Now()
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return benchRow{}, err
	}
	if _, err := fw.Write(src); err != nil {
		return benchRow{}, err
	}
	if err := fw.Close(); err != nil {
		return benchRow{}, err
	}
	return benchRow{"flate", buf.Len(), time.Since(start)}, nil
}

func benchZstd(src []byte) (benchRow, error) {
	start := time.Now()
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return benchRow{}, err
	}
	packed := enc.EncodeAll(src, nil)
	if err := enc.Close(); err != nil {
		return benchRow{}, err
	}
	return benchRow{"zstd", len(packed), time.Since(start)}, nil
}

// renderSizeChart plots packed size against compression level.
func renderSizeChart(path string, results map[int]int) error {
	keys := make([]int, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, k := range keys {
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(results[k]))
	}

	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.SVG, fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func percent(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return 100 * float64(num) / float64(denom)
}

func main() {
	packFlags := flag.NewFlagSet("pack", flag.ExitOnError)
	packDialect := packFlags.String("dialect", "legacy", "wire dialect (legacy|modern)")
	packLevel := packFlags.Int("level", 9, "compression level (1-9)")

	unpackFlags := flag.NewFlagSet("unpack", flag.ExitOnError)
	unpackDialect := unpackFlags.String("dialect", "legacy", "wire dialect (legacy|modern)")
	unpackMaxOutput := unpackFlags.Int("max-output", 0, "output size limit in bytes (0 = none)")

	benchFlags := flag.NewFlagSet("bench", flag.ExitOnError)
	benchDialect := benchFlags.String("dialect", "legacy", "wire dialect (legacy|modern)")
	benchLevels := benchFlags.String("levels", "1,5,9", "comma-separated levels to try")
	benchGraph := benchFlags.String("graph", "", "write an SVG size-by-level chart to this path")

	helpFlags := flag.NewFlagSet("help", flag.ExitOnError)

	var commands map[string]cliCommand

	cmdPack := func(args []string) error {
		packFlags.Parse(args)
		files := packFlags.Args()
		if len(files) != 2 {
			return fmt.Errorf("'pack' command: expected <input> <output> arguments")
		}
		d, err := parseDialect(*packDialect)
		if err != nil {
			return err
		}
		return commandPack(files[0], files[1], d, *packLevel)
	}

	cmdUnpack := func(args []string) error {
		unpackFlags.Parse(args)
		files := unpackFlags.Args()
		if len(files) != 2 {
			return fmt.Errorf("'unpack' command: expected <input> <output> arguments")
		}
		d, err := parseDialect(*unpackDialect)
		if err != nil {
			return err
		}
		return commandUnpack(files[0], files[1], d, *unpackMaxOutput)
	}

	cmdBench := func(args []string) error {
		benchFlags.Parse(args)
		files := benchFlags.Args()
		if len(files) != 1 {
			return fmt.Errorf("'bench' command: expected <input> argument")
		}
		d, err := parseDialect(*benchDialect)
		if err != nil {
			return err
		}
		levels, err := parseLevels(*benchLevels)
		if err != nil {
			return err
		}
		return commandBench(files[0], d, levels, *benchGraph)
	}

	cmdHelp := func(args []string) error {
		helpFlags.Parse(args)
		names := helpFlags.Args()
		if len(names) > 0 {
			cmd, ok := commands[names[0]]
			if !ok {
				fmt.Println("error: unknown command for help")
				printUsage(commands)
				os.Exit(1)
			}
			printCmdUsage(names[0], cmd)
		} else {
			printUsage(commands)
		}
		return nil
	}

	commands = map[string]cliCommand{
		"pack":   {cmdPack, packFlags, "<input> <output>", "compress a file to a PRS stream"},
		"unpack": {cmdUnpack, unpackFlags, "<input> <output>", "decompress a PRS stream"},
		"bench":  {cmdBench, benchFlags, "<input>", "compare PRS levels against flate/zstd/s2"},
		"help":   {cmdHelp, helpFlags, "", "list commands or describe a single command"},
	}

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		printUsage(commands)
		os.Exit(1)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Println("error: unknown command")
		printUsage(commands)
		os.Exit(1)
	}

	if err := cmd.fn(os.Args[2:]); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
