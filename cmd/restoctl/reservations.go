package main

import (
	"context"

	"github.com/spf13/cobra"

	reservations "restoBotClient/internal/modules/reservations/domain"
)

func registerReservations(rootCmd *cobra.Command, a *app) {
	reservationsCmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"res"},
		Short:   "Reservations and public booking",
	}
	rootCmd.AddCommand(reservationsCmd)

	var filter reservations.ReservationFilter
	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = reservations.NormalizeReservationStatus(status)
			page, err := a.tables.ListReservations(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	pageFlags(listCmd, &filter.Params)
	listCmd.Flags().StringVar(&filter.Date, "date", "", "YYYY-MM-DD")
	listCmd.Flags().StringVar(&status, "status", "", "pending, confirmed, cancelled, completed or no_show")
	listCmd.Flags().StringVar(&filter.CustomerPhone, "phone", "", "customer phone")
	reservationsCmd.AddCommand(listCmd)

	reservationsCmd.AddCommand(&cobra.Command{
		Use:   "get id",
		Short: "Show one reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			reservation, err := a.tables.GetReservation(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reservation)
		},
	})

	transitions := []struct {
		use   string
		short string
		run   func(context.Context, int) (*reservations.Reservation, error)
	}{
		{use: "cancel id", short: "Cancel a reservation", run: func(ctx context.Context, id int) (*reservations.Reservation, error) {
			return a.tables.CancelReservation(ctx, id)
		}},
		{use: "confirm id", short: "Confirm a reservation", run: func(ctx context.Context, id int) (*reservations.Reservation, error) {
			return a.tables.ConfirmReservation(ctx, id)
		}},
	}
	for _, transition := range transitions {
		reservationsCmd.AddCommand(&cobra.Command{
			Use:   transition.use,
			Short: transition.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				reservation, err := transition.run(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), reservation)
			},
		})
	}

	reservationsCmd.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "List today's reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.tables.TodayReservations(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	})

	var days int
	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List reservations from today through the next days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.tables.UpcomingReservations(cmd.Context(), days)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	}
	upcomingCmd.Flags().IntVar(&days, "days", 7, "number of days ahead")
	reservationsCmd.AddCommand(upcomingCmd)

	var input reservations.ReservationCreate
	var tableID int
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table as a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("table") {
				input.TableID = &tableID
			}
			reservation, err := a.tables.BookTable(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), reservation)
		},
	}
	bookCmd.Flags().StringVar(&input.CustomerName, "name", "", "customer name")
	bookCmd.Flags().StringVar(&input.CustomerPhone, "phone", "", "customer phone")
	bookCmd.Flags().StringVar(&input.CustomerEmail, "email", "", "customer email")
	bookCmd.Flags().IntVar(&input.PartySize, "guests", 0, "party size")
	bookCmd.Flags().StringVar(&input.ReservationDate, "date", "", "YYYY-MM-DD")
	bookCmd.Flags().StringVar(&input.ReservationTime, "time", "", "HH:MM")
	bookCmd.Flags().IntVar(&tableID, "table", 0, "preferred table id")
	bookCmd.Flags().StringVar(&input.SpecialRequests, "requests", "", "special requests")
	for _, name := range []string{"name", "phone", "guests", "date", "time"} {
		_ = bookCmd.MarkFlagRequired(name)
	}
	reservationsCmd.AddCommand(bookCmd)
}
