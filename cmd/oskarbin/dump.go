package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/oskarbin/pkg/oskar"
)

func dumpCmd() *cli.Command {
	var (
		asJSON bool
		group  int64
		tagID  int64
		limit  int64
	)

	return &cli.Command{
		Name:  "dump",
		Usage: "Dump fully decoded record payloads",
		Flags: append(fileFlag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit one JSON object per record",
				Destination: &asJSON,
			},
			&cli.Int64Flag{
				Name:        "group",
				Usage:       "only dump records with this group ID (-1 = all)",
				Value:       -1,
				Destination: &group,
			},
			&cli.Int64Flag{
				Name:        "tag",
				Usage:       "only dump records with this tag ID (-1 = all)",
				Value:       -1,
				Destination: &tagID,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "limit dumped records (0 = no limit)",
				Destination: &limit,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			applyInspectConfig(c, LoadConfig(), &limit)

			sc, err := oskar.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open: %v", err), 1)
			}
			defer func() { _ = sc.Close() }()

			enc := json.NewEncoder(os.Stdout)
			dumped := int64(0)
			for sc.Next() {
				if limit > 0 && dumped >= limit {
					break
				}
				rec := sc.Record()
				if group >= 0 && int64(rec.Tag.GroupID) != group {
					continue
				}
				if tagID >= 0 && int64(rec.Tag.TagID) != tagID {
					continue
				}
				dumped++
				if asJSON {
					out := dumpRecord{
						Offset:    rec.Offset,
						Group:     rec.Tag.GroupID,
						Tag:       rec.Tag.TagID,
						UserIndex: rec.Tag.UserIndex,
						Type:      rec.Tag.TypeString(),
						Value:     rec.Value.Data,
					}
					if err := enc.Encode(out); err != nil {
						return cli.Exit(fmt.Sprintf("error: encode record: %v", err), 1)
					}
					continue
				}
				fmt.Printf("grp=%d tag=%d idx=%d %s: %v\n",
					rec.Tag.GroupID, rec.Tag.TagID, rec.Tag.UserIndex,
					rec.Tag.TypeString(), rec.Value.Data)
			}
			if err := sc.Err(); err != nil {
				return cli.Exit(fmt.Sprintf("error: scan: %v", err), 1)
			}
			return nil
		},
	}
}

type dumpRecord struct {
	Offset    int64  `json:"offset"`
	Group     uint8  `json:"group"`
	Tag       uint8  `json:"tag"`
	UserIndex uint32 `json:"user_index"`
	Type      string `json:"type"`
	Value     any    `json:"value"`
}
