package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/awhisler/wdioTest/internal/logger"
	m "github.com/awhisler/wdioTest/internal/model"
)

// saveHistory copies the trend files present in <reports>/history into
// <results>/history so the next report continues the trend lines.
func (c *coordinator) saveHistory(ctx context.Context) error {
	source := c.layout.ReportsHistory()
	target := c.layout.ResultsHistory()

	ok, err := c.ReportFSAdapter.Exists(source)
	if err != nil {
		return err
	}

	if !ok {
		c.log.Debug("No report history to carry over", logger.Fields{"path": source})
		return nil
	}

	if err := c.ReportFSAdapter.MkdirAll(target); err != nil {
		return err
	}

	// A failed copy cancels gctx so the remaining files are skipped.
	group, gctx := errgroup.WithContext(ctx)

	for _, name := range m.HistoryFiles {
		group.Go(func() error {
			if gctx.Err() != nil {
				return context.Cause(gctx)
			}

			from := source.Join(name)

			present, err := c.ReportFSAdapter.Exists(from)
			if err != nil || !present {
				return err
			}

			if err := c.ReportFSAdapter.CopyFile(from, target.Join(name)); err != nil {
				return err
			}

			c.log.Debug("Copied history file", logger.Fields{"file": name})

			return nil
		})
	}

	return group.Wait()
}
