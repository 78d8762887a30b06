package cmd

import (
	"context"

	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/db"
	"github.com/jsphweid/chordshift/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	storeBackend string
	storeDBPath  string
)

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&storeBackend, "backend", constants.GetBackend(), "song store: sqlite or dynamodb")
	cmd.Flags().StringVar(&storeDBPath, "db", constants.GetDBPath(), "sqlite database path")
}

func openStore(ctx context.Context) (db.Store, error) {
	switch storeBackend {
	case constants.BackendSQLite:
		logging.GetLogger().Debug("opening sqlite store", "path", storeDBPath)
		store, err := db.OpenSQLite(storeDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case constants.BackendDynamo:
		logging.GetLogger().Debug("opening dynamodb store",
			"endpoint", constants.GetDynamoEndpoint(),
			"table", constants.GetDynamoTable())
		store, err := db.OpenDynamo(ctx, constants.GetDynamoEndpoint(), constants.GetDynamoRegion(), constants.GetDynamoTable())
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.Errorf("unknown backend %q", storeBackend)
	}
}
