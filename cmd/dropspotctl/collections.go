package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	collectionsCmd := &cobra.Command{Use: "collections", Short: "Collection operations"}

	var collectionID, userID, name string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if collectionID == "" || userID == "" {
				return fmt.Errorf("--collectionId and --userId required")
			}
			payload := map[string]interface{}{
				"collectionId":   collectionID,
				"userId":         userID,
				"collectionName": name,
			}
			data, err := doPostJSON("/api/collections", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&collectionID, "collectionId", "c", "", "Collection ID (required)")
	createCmd.Flags().StringVarP(&userID, "userId", "u", "", "Owner user ID (required)")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Collection name")
	_ = createCmd.MarkFlagRequired("collectionId")
	_ = createCmd.MarkFlagRequired("userId")
	collectionsCmd.AddCommand(createCmd)

	listCmd := &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's collections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/collections/user/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	collectionsCmd.AddCommand(listCmd)

	pinsCmd := &cobra.Command{
		Use:   "pins COLLECTION_ID",
		Short: "List the pins in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/collections/" + args[0] + "/pins")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	collectionsCmd.AddCommand(pinsCmd)

	rootCmd.AddCommand(collectionsCmd)
}
