package main

import (
	"context"
	"io"
	"strings"
	"time"

	"haul/cmd"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/order"

	"github.com/olekukonko/tablewriter"
)

func renderTransitions(out io.Writer) error {
	table := tablewriter.NewWriter(out)
	table.Header("From", "To", "Terminal")
	for _, s := range order.Statuses() {
		next := make([]string, 0, len(s.AllowedTransitions()))
		for _, to := range s.AllowedTransitions() {
			next = append(next, to.String())
		}
		terminal := "no"
		if s.IsTerminal() {
			terminal = "yes"
		}
		if err := table.Append(s.String(), strings.Join(next, ", "), terminal); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderHistory(out io.Writer, events []queries.OrderEventView) error {
	table := tablewriter.NewWriter(out)
	table.Header("ID", "Type", "Time", "Published", "Payload")
	for _, ev := range events {
		published := "-"
		if ev.PublishedAt != nil {
			published = ev.PublishedAt.Format(time.RFC3339)
		}
		if err := table.Append(
			ev.ID,
			ev.EventType,
			ev.EventTime.Format(time.RFC3339),
			published,
			ev.Payload,
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func printHistory(ctx context.Context, app *cmd.CompositionRoot, orderID string, out io.Writer) error {
	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return err
	}
	handler := app.CreateGetOrderHistoryQueryHandler()
	events, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}
	return renderHistory(out, events)
}
