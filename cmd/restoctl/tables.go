package main

import (
	"github.com/spf13/cobra"

	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
)

func registerTables(rootCmd *cobra.Command, a *app) {
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Tables, availability and their status",
	}
	rootCmd.AddCommand(tablesCmd)

	var filter tables.TableFilter
	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = tables.NormalizeTableStatus(status)
			page, err := a.tables.ListTables(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	pageFlags(listCmd, &filter.Params)
	listCmd.Flags().StringVar(&status, "status", "", "available, occupied, reserved or cleaning")
	listCmd.Flags().IntVar(&filter.Capacity, "capacity", 0, "minimum capacity")
	tablesCmd.AddCommand(listCmd)

	tablesCmd.AddCommand(&cobra.Command{
		Use:   "get id",
		Short: "Show one table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			table, err := a.tables.GetTable(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), table)
		},
	})

	var input tables.TableCreate
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a table (always starts available)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.tables.CreateTable(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), table)
		},
	}
	createCmd.Flags().StringVar(&input.TableNumber, "number", "", "table number")
	createCmd.Flags().IntVar(&input.Capacity, "capacity", 0, "seats")
	createCmd.Flags().StringVar(&input.Location, "location", "", "location, e.g. Tầng 1")
	createCmd.Flags().BoolVar(&input.IsActive, "active", true, "whether the table can be booked")
	_ = createCmd.MarkFlagRequired("number")
	_ = createCmd.MarkFlagRequired("capacity")
	tablesCmd.AddCommand(createCmd)

	tablesCmd.AddCommand(&cobra.Command{
		Use:   "delete id",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.tables.DeleteTable(cmd.Context(), id); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]int{"deleted": id})
		},
	})

	tablesCmd.AddCommand(&cobra.Command{
		Use:   "status id status",
		Short: "Set a table's current status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			table, err := a.tables.UpdateTableStatus(cmd.Context(), id, tables.NormalizeTableStatus(args[1]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), table)
		},
	})

	var available tables.AvailableTablesFilter
	availableCmd := &cobra.Command{
		Use:   "available",
		Short: "List available tables, optionally for a date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.tables.AvailableTables(cmd.Context(), available)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	}
	availableCmd.Flags().StringVar(&available.Date, "date", "", "YYYY-MM-DD")
	availableCmd.Flags().StringVar(&available.Time, "time", "", "HH:MM")
	availableCmd.Flags().IntVar(&available.Capacity, "capacity", 0, "minimum capacity")
	tablesCmd.AddCommand(availableCmd)

	var query reservations.AvailabilityQuery
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a party can be seated at a date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.tables.CheckAvailability(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	checkCmd.Flags().StringVar(&query.Date, "date", "", "YYYY-MM-DD")
	checkCmd.Flags().StringVar(&query.Time, "time", "", "HH:MM")
	checkCmd.Flags().IntVar(&query.Guests, "guests", 0, "party size")
	_ = checkCmd.MarkFlagRequired("date")
	_ = checkCmd.MarkFlagRequired("time")
	_ = checkCmd.MarkFlagRequired("guests")
	tablesCmd.AddCommand(checkCmd)
}
