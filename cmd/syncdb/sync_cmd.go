package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edusitepro_backend/internals/configs"
	database "edusitepro_backend/internals/databases"
	syncService "edusitepro_backend/internals/features/sync/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type syncOptions struct {
	Direction string
	Timeout   time.Duration
}

func newSyncCmd() *cobra.Command {
	var opts syncOptions

	cmd := &cobra.Command{
		Use:   "sync-databases --direction <a-to-b|b-to-a|both>",
		Short: "Sync organizations and classes between the two platforms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := syncService.ParseDirection(opts.Direction)
			if err != nil {
				return err
			}

			configs.LoadEnv()
			database.ConnectDB()
			siblingDB, err := database.ConnectSiblingDB()
			if err != nil {
				return fmt.Errorf("sibling DB: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			client := syncService.NewClient(database.DB, siblingDB)

			orgIDs, err := targetOrgIDs(ctx, client)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"direction": dir,
				"targets":   len(orgIDs),
			}).Info("starting sync run")

			failed := client.SyncAll(ctx, orgIDs, dir)
			if failed > 0 {
				return fmt.Errorf("%d record(s) failed to sync", failed)
			}
			logrus.Info("sync run completed cleanly")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Direction, "direction", string(syncService.DirectionBoth),
		"sync direction: a-to-b, b-to-a or both")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Minute,
		"overall deadline for the sync run")
	return cmd
}

// targetOrgIDs resolves SYNC_ORG_IDS, falling back to every organization on
// the primary side.
func targetOrgIDs(ctx context.Context, client *syncService.Client) ([]uuid.UUID, error) {
	raw := configs.SyncTargetOrgIDs()
	if len(raw) == 0 {
		return client.ListAllOrganizationIDs(ctx)
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("SYNC_ORG_IDS contains an invalid uuid: " + s)
		}
		out = append(out, id)
	}
	return out, nil
}
