package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "hearthctl",
		Short: "CLI client for the hearthkeep REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "hearthkeep service base URL")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Open the shared-password gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				return fmt.Errorf("--password required")
			}
			return runLogin(apiFlag, password, os.Stdout)
		},
	}
	loginCmd.Flags().StringP("password", "p", "", "Shared family password")
	rootCmd.AddCommand(loginCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List records of one kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			if kind == "" {
				return fmt.Errorf("--kind required (memory, event, family_member, story, profile, photo)")
			}
			return runList(apiFlag, kind, os.Stdout)
		},
	}
	listCmd.Flags().StringP("kind", "k", "", "Record kind")
	rootCmd.AddCommand(listCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search records by text or tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, _ := cmd.Flags().GetString("query")
			tag, _ := cmd.Flags().GetString("tag")
			if q == "" && tag == "" {
				return fmt.Errorf("--query or --tag required")
			}
			return runSearch(apiFlag, q, tag, os.Stdout)
		},
	}
	searchCmd.Flags().StringP("query", "q", "", "Free-text query")
	searchCmd.Flags().StringP("tag", "t", "", "Exact tag")
	rootCmd.AddCommand(searchCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a record by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			id, _ := cmd.Flags().GetString("id")
			if kind == "" || id == "" {
				return fmt.Errorf("--kind and --id required")
			}
			return runDelete(apiFlag, kind, id, os.Stdout)
		},
	}
	deleteCmd.Flags().StringP("kind", "k", "", "Record kind")
	deleteCmd.Flags().StringP("id", "i", "", "Record id")
	rootCmd.AddCommand(deleteCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download the full JSON archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
