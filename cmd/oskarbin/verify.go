package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/oskarbin/pkg/oskar"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Scan the whole file and verify every CRC32C trailer",
		Flags: append(fileFlag(), loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyLoggingConfig(c, LoadConfig())
			log := newLogger()

			sc, err := oskar.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open: %v", err), 1)
			}
			defer func() { _ = sc.Close() }()

			records := 0
			checked := 0
			for sc.Next() {
				records++
				if sc.Record().Tag.UsesCRC32C() {
					checked++
				}
			}
			if err := sc.Err(); err != nil {
				log.Error("verification failed", "file", filePath, "records", records, "err", err)
				return cli.Exit(fmt.Sprintf("FAIL %s: %v", filePath, err), 1)
			}

			log.Debug("verification complete", "file", filePath, "records", records, "checked", checked)
			fmt.Printf("OK %s: %d records, %d checksummed\n", filePath, records, checked)
			return nil
		},
	}
}
