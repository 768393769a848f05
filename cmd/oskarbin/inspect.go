package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/oskarbin/pkg/oskar"
)

func inspectCmd() *cli.Command {
	var (
		limit   int64
		group   int64
		tagID   int64
		noValue bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the header and record listing of an OSKAR binary file",
		Flags: append(fileFlag(),
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "limit record listing (0 = no limit)",
				Value:       50,
				Destination: &limit,
			},
			&cli.Int64Flag{
				Name:        "group",
				Usage:       "only show records with this group ID (-1 = all)",
				Value:       -1,
				Destination: &group,
			},
			&cli.Int64Flag{
				Name:        "tag",
				Usage:       "only show records with this tag ID (-1 = all)",
				Value:       -1,
				Destination: &tagID,
			},
			&cli.BoolFlag{
				Name:        "no-value",
				Usage:       "skip decoded value summaries",
				Destination: &noValue,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			applyInspectConfig(c, LoadConfig(), &limit)

			stat, err := os.Stat(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: stat %q: %v", filePath, err), 1)
			}
			if stat.IsDir() {
				return cli.Exit("error: oskarbin inspect expects a file, not a directory", 1)
			}

			sc, err := oskar.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open: %v", err), 1)
			}
			defer func() { _ = sc.Close() }()

			fmt.Printf("OSKAR Inspect: %s\n", filePath)
			fmt.Printf("File: %s (%s)\n", filepath.Base(filePath), formatBytes(uint64(stat.Size())))
			printFileHeader(sc.Header())

			section("Records")
			total := 0
			printed := 0
			for sc.Next() {
				rec := sc.Record()
				total++
				if group >= 0 && int64(rec.Tag.GroupID) != group {
					continue
				}
				if tagID >= 0 && int64(rec.Tag.TagID) != tagID {
					continue
				}
				if limit > 0 && int64(printed) >= limit {
					continue
				}
				line := fmt.Sprintf("grp=%-3d tag=%-3d idx=%-4d %-28s payload=%-10s off=%d",
					rec.Tag.GroupID, rec.Tag.TagID, rec.Tag.UserIndex,
					rec.Tag.TypeString(), formatBytes(rec.Tag.PayloadSize), rec.Offset)
				if rec.Tag.UsesCRC32C() {
					line += " crc"
				}
				if !noValue {
					line += "  " + valueSummary(rec.Value)
				}
				fmt.Println(line)
				printed++
			}
			if err := sc.Err(); err != nil {
				return cli.Exit(fmt.Sprintf("error: scan: %v", err), 1)
			}
			if printed < total {
				fmt.Printf("... (%d shown of %d)\n", printed, total)
			}

			return nil
		},
	}
}

func printFileHeader(h oskar.FileHeader) {
	section("Header")
	row("version", fmt.Sprintf("%d", h.Version))
	row("checksums", fmt.Sprintf("%v", h.HasChecksums()))
	order := "big-endian"
	if h.PayloadsLittleEndian() {
		order = "little-endian"
	}
	row("byte_order", order)
	row("app_version", fmt.Sprintf("0x%08x", h.AppVersion))
	row("widths", fmt.Sprintf("ptr=%d int=%d long=%d float=%d double=%d",
		h.VoidPtrSize, h.IntSize, h.LongSize, h.FloatSize, h.DoubleSize))
}

// valueSummary renders a decoded payload compactly, eliding long slices.
func valueSummary(v oskar.Value) string {
	const maxElems = 4
	switch data := v.Data.(type) {
	case string:
		if len(data) > 32 {
			return fmt.Sprintf("%q...", data[:32])
		}
		return fmt.Sprintf("%q", data)
	case []int32:
		return sliceSummary(len(data), maxElems, func(i int) string { return fmt.Sprintf("%d", data[i]) })
	case []float32:
		return sliceSummary(len(data), maxElems, func(i int) string { return fmt.Sprintf("%g", data[i]) })
	case []float64:
		return sliceSummary(len(data), maxElems, func(i int) string { return fmt.Sprintf("%g", data[i]) })
	default:
		return "?"
	}
}

func sliceSummary(n, max int, elem func(int) string) string {
	shown := n
	if shown > max {
		shown = max
	}
	parts := make([]string, 0, shown)
	for i := 0; i < shown; i++ {
		parts = append(parts, elem(i))
	}
	out := "[" + strings.Join(parts, " ")
	if shown < n {
		out += fmt.Sprintf(" ...+%d", n-shown)
	}
	return out + "]"
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-24s %s\n", label+":", value)
}

func formatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
