package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	menu "restoBotClient/internal/modules/menu/domain"
	"restoBotClient/internal/modules/menu/infrastructure"
	"restoBotClient/internal/shared/pagination"
)

func registerMenu(rootCmd *cobra.Command, a *app) {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Dishes, categories and the public menu",
	}
	rootCmd.AddCommand(menuCmd)

	registerDishes(menuCmd, a)
	registerCategories(menuCmd, a)

	menuCmd.AddCommand(&cobra.Command{
		Use:   "public",
		Short: "Show the public menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.menu.PublicMenu(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	})

	var limit int
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List popular dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dishes, err := a.menu.PopularDishes(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dishes)
		},
	}
	popularCmd.Flags().IntVar(&limit, "limit", 10, "number of dishes")
	menuCmd.AddCommand(popularCmd)

	menuCmd.AddCommand(&cobra.Command{
		Use:   "featured",
		Short: "List featured dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dishes, err := a.menu.FeaturedDishes(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dishes)
		},
	})

	menuCmd.AddCommand(&cobra.Command{
		Use:   "search query ...",
		Short: "Search dishes by name or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dishes, err := a.menu.SearchDishes(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dishes)
		},
	})

	var sheet string
	var dryRun bool
	importCmd := &cobra.Command{
		Use:   "import file.xlsx",
		Short: "Create dishes from a spreadsheet (category_id, price, name, description, preparation_time, image_url)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			dishes, issues, err := infrastructure.ReadDishSheet(file, sheet)
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", issue)
			}
			if err != nil {
				return err
			}
			if dryRun {
				return printJSON(cmd.OutOrStdout(), dishes)
			}
			created, err := a.menu.ImportDishes(cmd.Context(), dishes)
			if len(created) > 0 {
				if printErr := printJSON(cmd.OutOrStdout(), created); printErr != nil {
					return printErr
				}
			}
			return err
		},
	}
	importCmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without creating")
	menuCmd.AddCommand(importCmd)
}

func registerDishes(menuCmd *cobra.Command, a *app) {
	dishesCmd := &cobra.Command{
		Use:   "dishes",
		Short: "Manage dishes",
	}
	menuCmd.AddCommand(dishesCmd)

	var filter menu.DishFilter
	var available bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.IsAvailable = optionalBool(cmd, "available", available)
			page, err := a.menu.ListDishes(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	pageFlags(listCmd, &filter.Params)
	listCmd.Flags().IntVar(&filter.CategoryID, "category", 0, "category id")
	listCmd.Flags().StringVar(&filter.Search, "search", "", "text search")
	listCmd.Flags().BoolVar(&available, "available", true, "only (un)available dishes")
	dishesCmd.AddCommand(listCmd)

	dishesCmd.AddCommand(&cobra.Command{
		Use:   "get id",
		Short: "Show one dish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			dish, err := a.menu.GetDish(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dish)
		},
	})

	var input menu.DishCreate
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a dish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dish, err := a.menu.CreateDish(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dish)
		},
	}
	createCmd.Flags().StringVar(&input.Name, "name", "", "dish name")
	createCmd.Flags().Float64Var(&input.Price, "price", 0, "price")
	createCmd.Flags().IntVar(&input.CategoryID, "category", 0, "category id")
	createCmd.Flags().StringVar(&input.Description, "description", "", "description")
	createCmd.Flags().StringVar(&input.ImageURL, "image", "", "image URL")
	createCmd.Flags().IntVar(&input.PreparationTime, "prep-time", 0, "preparation time in minutes")
	createCmd.Flags().BoolVar(&input.IsAvailable, "available", true, "whether the dish can be ordered")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("price")
	_ = createCmd.MarkFlagRequired("category")
	dishesCmd.AddCommand(createCmd)

	var (
		newName     string
		newPrice    float64
		newCategory int
		newDesc     string
		newAvail    bool
	)
	updateCmd := &cobra.Command{
		Use:   "update id",
		Short: "Change the given fields of a dish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var update menu.DishUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = &newName
			}
			if flags.Changed("price") {
				update.Price = &newPrice
			}
			if flags.Changed("category") {
				update.CategoryID = &newCategory
			}
			if flags.Changed("description") {
				update.Description = &newDesc
			}
			update.IsAvailable = optionalBool(cmd, "available", newAvail)
			dish, err := a.menu.UpdateDish(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dish)
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "dish name")
	updateCmd.Flags().Float64Var(&newPrice, "price", 0, "price")
	updateCmd.Flags().IntVar(&newCategory, "category", 0, "category id")
	updateCmd.Flags().StringVar(&newDesc, "description", "", "description")
	updateCmd.Flags().BoolVar(&newAvail, "available", true, "whether the dish can be ordered")
	dishesCmd.AddCommand(updateCmd)

	dishesCmd.AddCommand(&cobra.Command{
		Use:   "delete id",
		Short: "Delete a dish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.menu.DeleteDish(cmd.Context(), id); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]int{"deleted": id})
		},
	})

	dishesCmd.AddCommand(&cobra.Command{
		Use:   "toggle id",
		Short: "Flip a dish's availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			dish, err := a.menu.ToggleDishAvailability(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dish)
		},
	})
}

func registerCategories(menuCmd *cobra.Command, a *app) {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage menu categories",
	}
	menuCmd.AddCommand(categoriesCmd)

	var filter menu.CategoryFilter
	var active bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.IsActive = optionalBool(cmd, "active", active)
			page, err := a.menu.ListCategories(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	pageFlags(listCmd, &filter.Params)
	listCmd.Flags().BoolVar(&active, "active", true, "only (in)active categories")
	categoriesCmd.AddCommand(listCmd)

	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "get id",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, err := a.menu.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), category)
		},
	})

	var input menu.CategoryCreate
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := a.menu.CreateCategory(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), category)
		},
	}
	createCmd.Flags().StringVar(&input.Name, "name", "", "category name")
	createCmd.Flags().StringVar(&input.Description, "description", "", "description")
	createCmd.Flags().IntVar(&input.DisplayOrder, "order", 0, "display order")
	createCmd.Flags().BoolVar(&input.IsActive, "active", true, "whether the category is shown")
	_ = createCmd.MarkFlagRequired("name")
	categoriesCmd.AddCommand(createCmd)

	categoriesCmd.AddCommand(&cobra.Command{
		Use:   "delete id",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.menu.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]int{"deleted": id})
		},
	})
}

func pageFlags(cmd *cobra.Command, params *pagination.Params) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number (server default when unset)")
	cmd.Flags().IntVar(&params.Size, "size", 0, "page size (server default when unset)")
}
