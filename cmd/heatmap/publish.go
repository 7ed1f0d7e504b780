package main

import (
	"errors"
	"fmt"

	kafkaadapter "github.com/couchcryptid/svi-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/spf13/cobra"
)

func newPublishCommand(a *app) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the filtered, scored rows to the Kafka export topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.KafkaEnabled() {
				return errors.New("KAFKA_BROKERS is not set")
			}
			dash, err := a.dashboard()
			if err != nil {
				return err
			}

			publisher := kafkaadapter.NewPublisher(a.cfg, a.logger)
			defer func() {
				if err := publisher.Close(); err != nil {
					a.logger.Error("kafka publisher close error", "error", err)
				}
			}()

			n, err := dash.Publish(cmd.Context(), state, publisher)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d rows to %s\n", n, a.cfg.KafkaTopic)
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", domain.AllStates, "state selection")
	return cmd
}
