package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	pinsCmd := &cobra.Command{Use: "pins", Short: "Pin operations"}

	var postID, userID, caption, location string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if postID == "" || userID == "" {
				return fmt.Errorf("--postId and --userId required")
			}
			payload := map[string]interface{}{"postId": postID, "userId": userID}
			if caption != "" {
				payload["caption"] = caption
			}
			if location != "" {
				payload["location"] = location
			}
			data, err := doPostJSON("/api/pins", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&postID, "postId", "p", "", "Post ID (required)")
	createCmd.Flags().StringVarP(&userID, "userId", "u", "", "Owner user ID (required)")
	createCmd.Flags().StringVarP(&caption, "caption", "c", "", "Caption")
	createCmd.Flags().StringVarP(&location, "location", "l", "", "Location")
	_ = createCmd.MarkFlagRequired("postId")
	_ = createCmd.MarkFlagRequired("userId")
	pinsCmd.AddCommand(createCmd)

	getCmd := &cobra.Command{
		Use:   "get POST_ID",
		Short: "Get pin by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/pins/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	pinsCmd.AddCommand(getCmd)

	var likeUser string
	likeCmd := &cobra.Command{
		Use:   "like POST_ID",
		Short: "Like a pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if likeUser == "" {
				return fmt.Errorf("--userId required")
			}
			data, err := doPostJSON("/api/users/"+likeUser+"/likes/"+args[0], nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	likeCmd.Flags().StringVarP(&likeUser, "userId", "u", "", "Acting user ID (required)")
	_ = likeCmd.MarkFlagRequired("userId")
	pinsCmd.AddCommand(likeCmd)

	var delUser string
	deleteCmd := &cobra.Command{
		Use:   "delete POST_ID",
		Short: "Delete a pin and retract all references to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if delUser == "" {
				return fmt.Errorf("--userId required")
			}
			return doDelete("/api/users/" + delUser + "/pins/" + args[0])
		},
	}
	deleteCmd.Flags().StringVarP(&delUser, "userId", "u", "", "Owner user ID (required)")
	_ = deleteCmd.MarkFlagRequired("userId")
	pinsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(pinsCmd)
}
