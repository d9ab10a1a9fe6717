package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/users"
)

// errNoDatabase is returned by user commands when DATABASE_URL is unset.
var errNoDatabase = errors.New("DATABASE_URL is not set")

var (
	userEmail    string
	userFullName string
	userPassword string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersCreate,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts as JSON, newest first",
	Args:  cobra.NoArgs,
	RunE:  runUsersList,
}

func init() {
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "Password (required)")
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "Email address")
	usersCreateCmd.Flags().StringVar(&userFullName, "full-name", "", "Full name")
	usersCreateCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersListCmd)
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	if !cfg.AccountsEnabled() {
		return errNoDatabase
	}

	store, closeDB, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	req := users.CreateRequest{Username: args[0], Password: userPassword}
	if userEmail != "" {
		req.Email = &userEmail
	}
	if userFullName != "" {
		req.FullName = &userFullName
	}

	user, err := users.NewService(store, 0).Create(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return json.NewEncoder(cmd.OutOrStdout()).Encode(user)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	if !cfg.AccountsEnabled() {
		return errNoDatabase
	}

	store, closeDB, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	list, err := users.NewService(store, 0).List(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
